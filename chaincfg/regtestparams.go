// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaincfg

import (
	"time"
)

const (
	// regTestGenesisHash is the hash of the regression test network
	// genesis block.
	regTestGenesisHash = "495c37dd20fb869910ca66826a95167e15a629181b6009afd05c1f1b4e393397"

	// regTestGenesisMerkleRoot equals the test network one since the
	// coinbase is unchanged.
	regTestGenesisMerkleRoot = testNetGenesisMerkleRoot
)

// regTestLayer turns the test network into the regression test network with
// a trivial proof of work limit and no standardness rules.  It is applied on
// top of testNetLayer and keeps its upgrade schedule.
var regTestLayer = layer{
	name: "regtest",
	overrides: []override{
		set("messageStart", func(p *Params) {
			p.messageStart = [4]byte{0xff, 0xaf, 0xb7, 0xdf}
		}),
		set("defaultPort", func(p *Params) { p.defaultPort = "18004" }),

		set("consensus.PowLimit", func(p *Params) {
			p.consensus.PowLimit = limitShift(1)
		}),
		set("genesis", func(p *Params) {
			p.genesisSpec.Time = time.Unix(1411111111, 0) // 2014-09-19 07:18:31 +0000 UTC
			p.genesisSpec.Bits = 0x207fffff
			p.genesisSpec.Nonce = 3
			p.genesisHashHex = regTestGenesisHash
			p.genesisMerkleHex = regTestGenesisMerkleRoot
		}),
		set("checkpoints", func(p *Params) {
			p.checkpointData = CheckpointData{
				Checkpoints: []Checkpoint{
					{0, newHashFromStr(regTestGenesisHash)},
				},
				LastCheckpointTime:          time.Unix(1411111111, 0),
				EstimatedTransactionsPerDay: 100,
			}
		}),

		set("consensus.blockUpgradeMajority", func(p *Params) {
			p.consensus.EnforceBlockUpgradeMajority = 750
			p.consensus.RejectBlockOutdatedMajority = 950
			p.consensus.ToCheckBlockUpgradeMajority = 1000
		}),
		set("consensus.MinerThreads", func(p *Params) {
			p.consensus.MinerThreads = 1
		}),

		set("prefixes", func(p *Params) {
			p.prefixes = AddressPrefixes{
				PubKeyHash:   111, // starts with m or n
				ScriptHash:   196, // starts with 2
				Staking:      74,  // starts with X
				SecretKey:    240,
				ExtPublicKey: [4]byte{0x04, 0x5f, 0x1c, 0xf6}, // starts with vpub
				ExtSecretKey: [4]byte{0x04, 0x5f, 0x18, 0xbc}, // starts with vprv
				ExtCoinType:  1,
			}
		}),
		set("sapling", func(p *Params) {
			p.sapling = SaplingHRPs{
				SaplingPaymentAddress:      "pregtestsapling",
				SaplingFullViewingKey:      "pviewregtestsapling",
				SaplingIncomingViewingKey:  "pivkregtestsapling",
				SaplingExtendedSpendingKey: "p-secret-spending-key-regtest",
			}
		}),

		set("flags", func(p *Params) {
			p.flags.MiningRequiresPeers = false
			p.flags.AllowMinDifficultyBlocks = true
			p.flags.DefaultConsistencyChecks = true
			p.flags.RequireStandard = false
			p.flags.MineBlocksOnDemand = true
			p.flags.TestnetToBeDeprecatedFieldRPC = false
		}),
	},
}
