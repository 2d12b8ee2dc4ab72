// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// genesisMessage is embedded in the coinbase of every genesis block.
const genesisMessage = "Buying Bitcoin Is Not Investing, Claims Warren Buffett"

// mainGenesisPubKey receives the main network genesis subsidy.
const mainGenesisPubKey = "0467b402a59fdb190a280fd7bc2234986dae22a28df82dab" +
	"e19b58383c1c1f78b6d82f88fb90054efa6ff0025a8a38b802a2d04b5037f4fc56beb" +
	"445f18d22d403"

const (
	// mainGenesisHash is the hash of the main network genesis block.
	mainGenesisHash = "0000ac78a9d859a58c735701be3d7010bdbb326fba9c1b9d26b4be88583a2d75"

	// mainGenesisMerkleRoot is the hash of the main network genesis
	// coinbase.
	mainGenesisMerkleRoot = "b59691ba9520688ef2df3b756dcbf3c7650a2573f8a020cf317fcb71956346b4"
)

// zerocoinModulus is the RSA-2048 factoring challenge modulus.
const zerocoinModulus = "25195908475657893494027183240048398571429282126204032027777137836043662020707595556264018525880784" +
	"4069182906412495150821892985591491761845028084891200728449926873928072877767359714183472702618963750149718246911" +
	"6507761337985909570009733045974880842840179742910064245869181719511874612151517265463228221686998754918242243363" +
	"7259085141865462043576798423387184774447920739934236584823824281198163815010674810451660377306056201619676256133" +
	"8441436038339044149526344321901146575444541784240209246165157233507787077498171257724679629263863563732899121548" +
	"31438167899885040445364023527381951378636564391212010397122822120720357"

// cent is a hundredth of a coin.
const cent = btcutil.SatoshiPerBitcoin / 100

// mainNewProtocolStartTime is Friday, October 19, 2018 3:35:22 PM UTC.
var mainNewProtocolStartTime = time.Unix(1539963322, 0)

// mainCheckpoints ordered from oldest to newest.  What makes a good
// checkpoint block: surrounded by blocks with reasonable timestamps and
// containing no strange transactions.  Every entry after the genesis
// block is a hash of the live chain, which was mined with a different
// header hash, so they pin heights of that chain rather than descendants of
// mainGenesisHash.
var mainCheckpoints = []Checkpoint{
	{0, newHashFromStr(mainGenesisHash)},
	{14317, newHashFromStr("50929653a7146de37b82b9125e55ea03aa4ae062ce3a2e3098026eea07e5bc81")}, // coin burn confirmation
	{50000, newHashFromStr("b177127054381243141e809bbfb2d568aeae2dd9b3c486e54f0989d4546d0d80")},
	{75000, newHashFromStr("06f162fe22851c400c1532a6d49d7894640ea0aa292fad5f02f348480da6b20d")},
	{100000, newHashFromStr("ed8cccfb51c901af271892966160686177a05f101bd3fd517d5b82274a8f6611")},
	{125000, newHashFromStr("76d5412ec389433de6cd22345209c859b4c18b6d8f8893df479c9f7520d19901")},
	{150000, newHashFromStr("a7e0dfdc9c3197e9e763e858aafa9553c0235c0e328371a5f8c5ba0b6e44919d")},
	{200000, newHashFromStr("385e915b52f0ad669b91005ab7ddb22356b6a220e8b98cbcf2c8aca5c5dd3b03")},
	{250000, newHashFromStr("40ee22bd8b2cc23f83e16d19a53aa8591617772f9722c56b86d16163b2a10416")},
}

// mainNetBaseline returns the main network values every profile starts
// from.  Derived profiles only list what they change.
func mainNetBaseline() *Params {
	return &Params{
		net:          MainNet,
		messageStart: [4]byte{0x14, 0x37, 0x25, 0x61},
		defaultPort:  "18000",
		dnsSeeds: []string{
			"seed1.rpicoin.com",
			"seed2.rpicoin.com",
			"seed3.rpicoin.com",
			"seed4.rpicoin.com",
			"seed5.rpicoin.com",
			"seed6.rpicoin.com",
			"seed7.rpicoin.com",
		},

		genesisSpec: GenesisSpec{
			Message:     []byte(genesisMessage),
			Witnesses:   []int64{0, 42},
			PayeeScript: mustPayToPubKeyScript(mainGenesisPubKey),
			Subsidy:     113713337 * btcutil.SatoshiPerBitcoin,
			Version:     1,
			Time:        time.Unix(1525283223, 0), // 2018-05-02 17:47:03 +0000 UTC
			Bits:        0x1f00ffff,
			Nonce:       19750,
		},
		genesisHashHex:   mainGenesisHash,
		genesisMerkleHex: mainGenesisMerkleRoot,

		checkpointData: CheckpointData{
			Checkpoints:                      mainCheckpoints,
			LastCheckpointTime:               time.Unix(1530243664, 0),
			TransactionsBeforeLastCheckpoint: 514630,
			EstimatedTransactionsPerDay:      2000,
		},

		upgradeEntries: [DefinedUpgrades]UpgradeEntry{
			UpgradeBaseNetwork: {ActivationHeight: AlwaysActive},
			UpgradeTestDummy:   {ActivationHeight: NeverActive},
			UpgradePoS:         {ActivationHeight: 259201},
			UpgradePoSV2:       {ActivationHeight: 450000},
			UpgradeZC:          {ActivationHeight: 450000},
			UpgradeZCV2:        {ActivationHeight: NeverActive},
			UpgradeBIP65:       {ActivationHeight: NeverActive},
			UpgradeZCPublic:    {ActivationHeight: NeverActive},
			UpgradeV3_4:        {ActivationHeight: NeverActive},
			UpgradeV4_0:        {ActivationHeight: NeverActive},
			UpgradeTestFuture:  {ActivationHeight: NeverActive},
		},

		consensus: Consensus{
			PowLimit:                    limitShift(16),
			PoSLimitV1:                  limitShift(48),
			PoSLimitV2:                  limitShift(24),
			TargetTimespanV1:            16 * time.Minute,
			TargetTimespanV2:            time.Minute,
			TargetSpacingV1:             64 * time.Second,
			TargetSpacingV2:             time.Minute,
			CoinbaseMaturity:            100,
			MasternodeCountDrift:        20,
			MaxMoneyOut:                 120000000 * btcutil.SatoshiPerBitcoin,
			SubsidyHalvingInterval:      0,
			MaxReorganizationDepth:      500,
			EnforceBlockUpgradeMajority: 750,
			RejectBlockOutdatedMajority: 950,
			ToCheckBlockUpgradeMajority: 1000,
			MinerThreads:                0,
			NewProtocolStartTime:        mainNewProtocolStartTime,
			StartMasternodePayments:     mainNewProtocolStartTime,
			BudgetFeeConfirmations:      6,
			PoolMaxTransactions:         3,
		},

		zerocoin: Zerocoin{
			Modulus:                   zerocoinModulus,
			StartTime:                 mainNewProtocolStartTime,
			MaxSpendsPerTransaction:   7, // assume about 20kb each
			MinMintFee:                cent,
			MintRequiredConfirmations: 20,
			RequiredAccumulation:      1,
			DefaultSecurityLevel:      100,
			HeaderVersion:             8,
			RequiredStakeDepth:        200,
		},

		prefixes: AddressPrefixes{
			PubKeyHash:   60,  // starts with R
			ScriptHash:   122, // starts with r
			Staking:      63,  // starts with S
			SecretKey:    145,
			ExtPublicKey: [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
			ExtSecretKey: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
			ExtCoinType:  119,
		},

		sapling: SaplingHRPs{
			SaplingPaymentAddress:      "ps",
			SaplingFullViewingKey:      "pviews",
			SaplingIncomingViewingKey:  "pivks",
			SaplingExtendedSpendingKey: "p-secret-spending-key-main",
		},

		flags: Flags{
			MiningRequiresPeers: true,
			RequireStandard:     true,
		},

		keys: Keys{
			AlertPubKey: "04890c0c7f2bf2304af7a7de92f3717d96b5d347e30a179cf975ab5e0152b1131" +
				"03598798599fecb8d735238e6dae110565d230d7ba93a076b98bd5bd5bb5f17fb",
			SporkPubKey: "04ac60266c909c22b95415270278b8ea90bec852922d3b2bd110cfba62fc4da20" +
				"f7d5d6c7f109c9604a421c6e75e47a3c8963dcd1b9b7ca71aaeef3d410e4cc65a",
			ObfuscationPoolDummyAddress: "WYCSnxDBqGkcruCwreLtBfpXtSMgoo5yUJ",
		},
	}
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in
// that it panics on an error since it will only (and must only) be called
// with hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return *hash
}
