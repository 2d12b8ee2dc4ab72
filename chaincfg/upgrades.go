// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaincfg

import (
	"fmt"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// AlwaysActive is the activation height of upgrades that are active
	// from the genesis block on.
	AlwaysActive int32 = 0

	// NeverActive is the activation height of upgrades that are not
	// scheduled on a network.
	NeverActive int32 = math.MaxInt32
)

// UpgradeID identifies a network upgrade.  Upgrades are listed in the order
// they were deployed.
type UpgradeID uint8

const (
	// UpgradeBaseNetwork is the consensus of the genesis block.
	UpgradeBaseNetwork UpgradeID = iota

	// UpgradeTestDummy is a placeholder used by tests.  It is never
	// scheduled on a public network.
	UpgradeTestDummy

	// UpgradePoS ends proof of work and starts proof of stake.
	UpgradePoS

	// UpgradePoSV2 switches to the second stake modifier, difficulty
	// limit and target spacing.
	UpgradePoSV2

	// UpgradeZC enables the zerocoin protocol.
	UpgradeZC

	// UpgradeZCV2 enables version 2 zerocoin mints and spends.
	UpgradeZCV2

	// UpgradeBIP65 enables OP_CHECKLOCKTIMEVERIFY.
	UpgradeBIP65

	// UpgradeZCPublic enables public zerocoin spends.
	UpgradeZCPublic

	// UpgradeV3_4 is the v3.4 protocol revision.
	UpgradeV3_4

	// UpgradeV4_0 is the v4.0 protocol revision.
	UpgradeV4_0

	// UpgradeTestFuture is a placeholder for tests of upgrades that are
	// not yet scheduled.
	UpgradeTestFuture

	// DefinedUpgrades is the number of defined upgrades.  It must be the
	// last entry.
	DefinedUpgrades
)

// upgradeInfo describes an upgrade independent of any network.
type upgradeInfo struct {
	name string

	// requires is the upgrade this one builds on.  It must activate no
	// later than this one.
	requires UpgradeID
	hasDep   bool
}

var upgradeInfos = [DefinedUpgrades]upgradeInfo{
	UpgradeBaseNetwork: {name: "Base"},
	UpgradeTestDummy:   {name: "Test dummy"},
	UpgradePoS:         {name: "PoS"},
	UpgradePoSV2:       {name: "PoS v2", requires: UpgradePoS, hasDep: true},
	UpgradeZC:          {name: "Zerocoin v1", requires: UpgradePoS, hasDep: true},
	UpgradeZCV2:        {name: "Zerocoin v2", requires: UpgradeZC, hasDep: true},
	UpgradeBIP65:       {name: "BIP65"},
	UpgradeZCPublic:    {name: "Zerocoin Public", requires: UpgradeZCV2, hasDep: true},
	UpgradeV3_4:        {name: "v3.4.0", requires: UpgradePoSV2, hasDep: true},
	UpgradeV4_0:        {name: "v4.0", requires: UpgradeV3_4, hasDep: true},
	UpgradeTestFuture:  {name: "Test future"},
}

// String returns the human readable name of the upgrade.
func (u UpgradeID) String() string {
	if u < DefinedUpgrades {
		return upgradeInfos[u].name
	}
	return fmt.Sprintf("Unknown UpgradeID (%d)", uint8(u))
}

// Requires returns the upgrade u depends on, if any.
func (u UpgradeID) Requires() (UpgradeID, bool) {
	if u >= DefinedUpgrades {
		return 0, false
	}
	info := upgradeInfos[u]
	return info.requires, info.hasDep
}

// UpgradeEntry schedules an upgrade on one network.
type UpgradeEntry struct {
	// ActivationHeight is the first height at which the upgrade rules
	// apply, AlwaysActive or NeverActive.
	ActivationHeight int32

	// ActivationHash optionally pins the hash of the block at
	// ActivationHeight.
	ActivationHash *chainhash.Hash
}

// UpgradeTable holds the activation schedule of every defined upgrade on one
// network.
type UpgradeTable struct {
	entries [DefinedUpgrades]UpgradeEntry
}

// NewUpgradeTable validates entries and returns a table built from a copy of
// them.  An upgrade may not activate before the upgrade it requires.
func NewUpgradeTable(entries [DefinedUpgrades]UpgradeEntry) (*UpgradeTable, error) {
	t := &UpgradeTable{}
	for u, entry := range entries {
		if entry.ActivationHeight < 0 {
			return nil, fmt.Errorf("upgrade %v: negative activation "+
				"height %d", UpgradeID(u), entry.ActivationHeight)
		}
		t.entries[u] = entry
		if entry.ActivationHash != nil {
			hash := *entry.ActivationHash
			t.entries[u].ActivationHash = &hash
		}
	}
	if err := t.validateOrder(); err != nil {
		return nil, err
	}
	return t, nil
}

// validateOrder ensures no upgrade activates before its dependency.
func (t *UpgradeTable) validateOrder() error {
	for u := UpgradeID(0); u < DefinedUpgrades; u++ {
		dep, ok := u.Requires()
		if !ok {
			continue
		}
		height := t.entries[u].ActivationHeight
		depHeight := t.entries[dep].ActivationHeight
		if height < depHeight {
			return fmt.Errorf("upgrade %v activates at %d before its "+
				"dependency %v at %d", u, height, dep, depHeight)
		}
	}
	return nil
}

// IsActive reports whether the rules of u apply to the block at height.
func (t *UpgradeTable) IsActive(u UpgradeID, height int32) bool {
	activation := t.ActivationHeight(u)
	if activation == NeverActive || height < 0 {
		return false
	}
	return height >= activation
}

// ActivationHeight returns the first height at which u is active.  Unknown
// upgrades are never active.
func (t *UpgradeTable) ActivationHeight(u UpgradeID) int32 {
	if u >= DefinedUpgrades {
		return NeverActive
	}
	return t.entries[u].ActivationHeight
}

// ActivationHash returns the pinned hash of the block activating u, if one
// is configured.
func (t *UpgradeTable) ActivationHash(u UpgradeID) (chainhash.Hash, bool) {
	if u >= DefinedUpgrades || t.entries[u].ActivationHash == nil {
		return chainhash.Hash{}, false
	}
	return *t.entries[u].ActivationHash, true
}

// VerifyActivationHash checks the hash of the block at the activation height
// of u against the pinned hash.  Upgrades without a pin accept any hash.  It
// is meant for replaying a stored chain, not for live validation.
func (t *UpgradeTable) VerifyActivationHash(u UpgradeID, blockHash chainhash.Hash) bool {
	pinned, ok := t.ActivationHash(u)
	return !ok || pinned == blockHash
}

// Entries returns a copy of the schedule indexed by UpgradeID.
func (t *UpgradeTable) Entries() [DefinedUpgrades]UpgradeEntry {
	var entries [DefinedUpgrades]UpgradeEntry
	for u, entry := range t.entries {
		entries[u] = entry
		if entry.ActivationHash != nil {
			hash := *entry.ActivationHash
			entries[u].ActivationHash = &hash
		}
	}
	return entries
}
