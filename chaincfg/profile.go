// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaincfg

import (
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
)

// override assigns one field of a profile under construction.
type override struct {
	field string
	apply func(p *Params)
}

// set returns an override of the named field.
func set(field string, apply func(p *Params)) override {
	return override{field: field, apply: apply}
}

// layer is the sparse set of differences between a network and the profile
// it is derived from.
type layer struct {
	name      string
	overrides []override
}

// applyTo applies the overrides in order.  Assigning the same field twice in
// one layer is almost always a copy and paste mistake, so it is recorded on
// the profile and reported when the profile is selected; the last
// assignment wins.
func (l layer) applyTo(p *Params) {
	seen := make(map[string]struct{}, len(l.overrides))
	for _, o := range l.overrides {
		if _, ok := seen[o.field]; ok {
			p.repeatedOverrides = append(p.repeatedOverrides,
				l.name+"."+o.field)
		}
		seen[o.field] = struct{}{}
		o.apply(p)
	}
}

// newProfile builds the profile of net by applying layers on top of the main
// network baseline and then finalizing it.  It panics when the result is not
// a consistent parameter set.
func newProfile(net NetworkID, layers ...layer) *Params {
	p := mainNetBaseline()
	for _, l := range layers {
		l.applyTo(p)
	}
	p.net = net
	p.finalize()
	return p
}

// finalize builds the derived values of p and checks every invariant the
// rest of the node relies on.
func (p *Params) finalize() {
	fatal := func(format string, args ...interface{}) {
		panic(fmt.Sprintf("chaincfg: %v: %s", p.net,
			fmt.Sprintf(format, args...)))
	}

	if bits := blockchain.BigToCompact(p.consensus.PowLimit); bits != p.genesisSpec.Bits {
		fatal("genesis bits %08x do not encode the proof of work limit "+
			"(%08x)", p.genesisSpec.Bits, bits)
	}

	p.genesis = MustBuildGenesis(p.genesisSpec, p.genesisHashHex,
		p.genesisMerkleHex)
	p.genesisHash = p.genesis.BlockHash()
	err := CheckProofOfWork(p.genesisHash, p.genesisSpec.Bits,
		p.consensus.PowLimit)
	if err != nil {
		fatal("genesis proof of work: %v", err)
	}

	checkpoints, err := NewCheckpointTable(p.checkpointData)
	if err != nil {
		fatal("checkpoints: %v", err)
	}
	if hash, _ := checkpoints.Lookup(0); hash != p.genesisHash {
		fatal("checkpoint at height 0 is %v, genesis is %v", hash,
			p.genesisHash)
	}
	p.checkpoints = checkpoints

	upgrades, err := NewUpgradeTable(p.upgradeEntries)
	if err != nil {
		fatal("upgrades: %v", err)
	}
	p.upgrades = upgrades
}

// validateDistinctPrefixes ensures no two profiles share a version byte for
// the same address or key kind, so an address of one network can never be
// mistaken for one of another.
func validateDistinctPrefixes(profiles []*Params) error {
	type kind struct {
		name string
		get  func(AddressPrefixes) interface{}
	}
	kinds := []kind{
		{"public key hash", func(a AddressPrefixes) interface{} { return a.PubKeyHash }},
		{"script hash", func(a AddressPrefixes) interface{} { return a.ScriptHash }},
		{"staking", func(a AddressPrefixes) interface{} { return a.Staking }},
		{"secret key", func(a AddressPrefixes) interface{} { return a.SecretKey }},
		{"extended public key", func(a AddressPrefixes) interface{} { return a.ExtPublicKey }},
		{"extended secret key", func(a AddressPrefixes) interface{} { return a.ExtSecretKey }},
	}

	for _, k := range kinds {
		owner := make(map[interface{}]NetworkID, len(profiles))
		for _, p := range profiles {
			v := k.get(p.prefixes)
			if other, ok := owner[v]; ok {
				return fmt.Errorf("%s version %x is used by both %v "+
					"and %v", k.name, v, other, p.net)
			}
			owner[v] = p.net
		}
	}
	return nil
}
