// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaincfg

import (
	"time"
)

const (
	// testNetGenesisHash is the hash of the test network genesis block.
	testNetGenesisHash = "0000ee75aaafc0cbee4e871da0a41520875baa98867a0a301150f7a0d5ed9b06"

	// testNetGenesisMerkleRoot is the hash of the test network genesis
	// coinbase, which pays nothing to nobody.
	testNetGenesisMerkleRoot = "fc991737b8be7be3122c5582f32e9d72389cbdf007d1bafff4da9d644b783da3"
)

// testNetNewProtocolStartTime is Monday, September 24, 2018 11:09:12 PM UTC.
var testNetNewProtocolStartTime = time.Unix(1537830552, 0)

// testNetLayer turns the main network baseline into the public test network.
// The genesis coinbase output is emptied and the block is re-mined at a later
// timestamp.
var testNetLayer = layer{
	name: "testnet",
	overrides: []override{
		set("messageStart", func(p *Params) {
			p.messageStart = [4]byte{0x44, 0x18, 0x61, 0x33}
		}),
		set("defaultPort", func(p *Params) { p.defaultPort = "18002" }),
		set("dnsSeeds", func(p *Params) { p.dnsSeeds = nil }),
		set("fixedSeeds", func(p *Params) { p.fixedSeeds = nil }),

		set("genesis", func(p *Params) {
			p.genesisSpec.PayeeScript = nil
			p.genesisSpec.Subsidy = 0
			p.genesisSpec.Time = time.Unix(1525283445, 0) // 2018-05-02 17:50:45 +0000 UTC
			p.genesisSpec.Nonce = 154479
			p.genesisHashHex = testNetGenesisHash
			p.genesisMerkleHex = testNetGenesisMerkleRoot
		}),
		set("checkpoints", func(p *Params) {
			p.checkpointData = CheckpointData{
				Checkpoints: []Checkpoint{
					{0, newHashFromStr(testNetGenesisHash)},
				},
				LastCheckpointTime:          time.Unix(1512932225, 0),
				EstimatedTransactionsPerDay: 450,
			}
		}),
		set("upgrades", func(p *Params) {
			p.upgradeEntries[UpgradePoS].ActivationHeight = 451
			p.upgradeEntries[UpgradePoSV2].ActivationHeight = 750
			p.upgradeEntries[UpgradeZC].ActivationHeight = 750
		}),

		set("consensus.blockUpgradeMajority", func(p *Params) {
			p.consensus.EnforceBlockUpgradeMajority = 51
			p.consensus.RejectBlockOutdatedMajority = 75
			p.consensus.ToCheckBlockUpgradeMajority = 100
		}),
		set("consensus.CoinbaseMaturity", func(p *Params) {
			p.consensus.CoinbaseMaturity = 10
		}),
		set("consensus.MasternodeCountDrift", func(p *Params) {
			p.consensus.MasternodeCountDrift = 4
		}),
		set("consensus.newProtocolStart", func(p *Params) {
			p.consensus.NewProtocolStartTime = testNetNewProtocolStartTime
			p.consensus.StartMasternodePayments = testNetNewProtocolStartTime
			p.zerocoin.StartTime = testNetNewProtocolStartTime
		}),
		// Only an 8 block finalization window on testnet.
		set("consensus.BudgetFeeConfirmations", func(p *Params) {
			p.consensus.BudgetFeeConfirmations = 3
		}),
		set("consensus.PoolMaxTransactions", func(p *Params) {
			p.consensus.PoolMaxTransactions = 2
		}),

		set("prefixes", func(p *Params) {
			p.prefixes = AddressPrefixes{
				PubKeyHash:   110, // starts with m
				ScriptHash:   8,   // starts with 4
				Staking:      73,  // starts with W
				SecretKey:    239,
				ExtPublicKey: [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
				ExtSecretKey: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
				ExtCoinType:  1,
			}
		}),
		set("sapling", func(p *Params) {
			p.sapling = SaplingHRPs{
				SaplingPaymentAddress:      "ptestsapling",
				SaplingFullViewingKey:      "pviewtestsapling",
				SaplingIncomingViewingKey:  "pivktestsapling",
				SaplingExtendedSpendingKey: "p-secret-spending-key-test",
			}
		}),

		set("flags", func(p *Params) {
			p.flags.AllowMinDifficultyBlocks = true
			p.flags.MineBlocksOnDemand = true
			p.flags.TestnetToBeDeprecatedFieldRPC = true
		}),
		set("keys", func(p *Params) {
			p.keys = Keys{
				AlertPubKey: mainGenesisPubKey,
				SporkPubKey: "04e175173ea919f973cf4bf00d10e1c29c8ef75568c59056630d5a5cce8f6d8ac" +
					"6edf0bb21baa2a24ecff17ce83b9863a88a54c54ca87c709c8a3f1dfef9d268e6",
				ObfuscationPoolDummyAddress: "mbTYaNZm7TaPt5Du65aPsL8FNTktufYydC",
			}
		}),
	},
}
