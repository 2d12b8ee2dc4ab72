// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaincfg

// unitTestLayer derives the unit test network from the main network.  It
// keeps the main genesis block and checkpoints so tests exercise real
// consensus values, but never talks to peers.
var unitTestLayer = layer{
	name: "unittest",
	overrides: []override{
		set("defaultPort", func(p *Params) { p.defaultPort = "18005" }),
		set("dnsSeeds", func(p *Params) { p.dnsSeeds = nil }),
		set("fixedSeeds", func(p *Params) { p.fixedSeeds = nil }),

		set("prefixes.versions", func(p *Params) {
			p.prefixes.PubKeyHash = 65  // starts with T
			p.prefixes.ScriptHash = 123 // starts with r or s
			p.prefixes.Staking = 64     // starts with S or T
			p.prefixes.SecretKey = 146
			p.prefixes.ExtPublicKey = [4]byte{0x04, 0xb2, 0x47, 0x46} // starts with zpub
			p.prefixes.ExtSecretKey = [4]byte{0x04, 0xb2, 0x43, 0x0c} // starts with zprv
		}),

		set("flags", func(p *Params) {
			p.flags.MiningRequiresPeers = false
			p.flags.DefaultConsistencyChecks = true
			p.flags.AllowMinDifficultyBlocks = false
			p.flags.MineBlocksOnDemand = true
		}),
	},
}
