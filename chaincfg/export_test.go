// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaincfg

import (
	"testing"
)

// ModifiableParams is a private, mutable copy of the RegTest or UnitTest
// profile.  It only exists in the test binary of this package.  The static
// profiles are never affected.
//
// Setters must be called before the params are shared with other goroutines.
type ModifiableParams struct {
	tb testing.TB
	p  *Params
}

// NewModifiableParams returns a mutable copy of the profile of id.  Only the
// RegTest and UnitTest networks can be modified; any other id fails tb.
func NewModifiableParams(tb testing.TB, id NetworkID) *ModifiableParams {
	tb.Helper()

	if id != RegTest && id != UnitTest {
		tb.Fatalf("chaincfg: %v parameters cannot be modified", id)
		return nil
	}
	return &ModifiableParams{tb: tb, p: ProfileFor(id).clone()}
}

// Params returns the modified profile.
func (m *ModifiableParams) Params() *Params {
	return m.p
}

// Select makes the modified profile the selected network of r.  It fails tb
// when r already holds other parameters.
func (m *ModifiableParams) Select(r *Registry) *Params {
	m.tb.Helper()

	p, err := r.install(m.p)
	if err != nil {
		m.tb.Fatalf("chaincfg: %v", err)
		return nil
	}
	return p
}

// unitTestOnly fails tb unless the params are a copy of the UnitTest
// profile.
func (m *ModifiableParams) unitTestOnly(setting string) bool {
	m.tb.Helper()

	if m.p.net != UnitTest {
		m.tb.Fatalf("chaincfg: %v cannot change %s", m.p.net, setting)
		return false
	}
	return true
}

func (m *ModifiableParams) SetSubsidyHalvingInterval(interval int32) {
	m.tb.Helper()
	if m.unitTestOnly("the subsidy halving interval") {
		m.p.consensus.SubsidyHalvingInterval = interval
	}
}

func (m *ModifiableParams) SetEnforceBlockUpgradeMajority(majority int32) {
	m.tb.Helper()
	if m.unitTestOnly("the block upgrade majority") {
		m.p.consensus.EnforceBlockUpgradeMajority = majority
	}
}

func (m *ModifiableParams) SetRejectBlockOutdatedMajority(majority int32) {
	m.tb.Helper()
	if m.unitTestOnly("the outdated block majority") {
		m.p.consensus.RejectBlockOutdatedMajority = majority
	}
}

func (m *ModifiableParams) SetToCheckBlockUpgradeMajority(majority int32) {
	m.tb.Helper()
	if m.unitTestOnly("the upgrade check window") {
		m.p.consensus.ToCheckBlockUpgradeMajority = majority
	}
}

func (m *ModifiableParams) SetDefaultConsistencyChecks(enabled bool) {
	m.tb.Helper()
	if m.unitTestOnly("consistency checks") {
		m.p.flags.DefaultConsistencyChecks = enabled
	}
}

func (m *ModifiableParams) SetAllowMinDifficultyBlocks(allow bool) {
	m.tb.Helper()
	if m.unitTestOnly("minimum difficulty blocks") {
		m.p.flags.AllowMinDifficultyBlocks = allow
	}
}

func (m *ModifiableParams) SetSkipProofOfWorkCheck(skip bool) {
	m.tb.Helper()
	if m.unitTestOnly("the proof of work check") {
		m.p.flags.SkipProofOfWorkCheck = skip
	}
}

// SetActivationHeight reschedules upgrade u.  It is only available on the
// RegTest network and fails tb when the new schedule activates an upgrade
// before one it depends on.
func (m *ModifiableParams) SetActivationHeight(u UpgradeID, height int32) {
	m.tb.Helper()

	if m.p.net != RegTest {
		m.tb.Fatalf("chaincfg: %v activation heights cannot be changed",
			m.p.net)
		return
	}
	if u >= DefinedUpgrades {
		m.tb.Fatalf("chaincfg: unknown upgrade %v", u)
		return
	}

	entries := m.p.upgrades.Entries()
	entries[u].ActivationHeight = height
	upgrades, err := NewUpgradeTable(entries)
	if err != nil {
		m.tb.Fatalf("chaincfg: %v: %v", m.p.net, err)
		return
	}
	m.p.upgradeEntries = upgrades.Entries()
	m.p.upgrades = upgrades
}

// clone returns a deep copy of p.
func (p *Params) clone() *Params {
	c := *p
	c.dnsSeeds = p.DNSSeeds()
	c.fixedSeeds = p.FixedSeeds()
	c.genesisSpec = p.GenesisSpec()
	c.genesis = p.GenesisBlock()
	c.checkpointData.Checkpoints = append([]Checkpoint(nil),
		p.checkpointData.Checkpoints...)
	c.upgradeEntries = p.upgrades.Entries()
	c.upgrades = &UpgradeTable{entries: p.upgrades.Entries()}
	c.consensus = p.consensus.copy()
	c.repeatedOverrides = append([]string(nil), p.repeatedOverrides...)
	return &c
}
