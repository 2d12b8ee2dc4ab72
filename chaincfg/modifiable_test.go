// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaincfg

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// fatalRecorder records Fatalf calls instead of stopping the test.
type fatalRecorder struct {
	testing.TB
	failures []string
}

func (f *fatalRecorder) Helper() {}

func (f *fatalRecorder) Fatalf(format string, args ...interface{}) {
	f.failures = append(f.failures, fmt.Sprintf(format, args...))
}

func TestModifiableUnitTestParams(t *testing.T) {
	m := NewModifiableParams(t, UnitTest)

	m.SetSubsidyHalvingInterval(150)
	m.SetEnforceBlockUpgradeMajority(51)
	m.SetRejectBlockOutdatedMajority(75)
	m.SetToCheckBlockUpgradeMajority(100)
	m.SetDefaultConsistencyChecks(false)
	m.SetAllowMinDifficultyBlocks(true)
	m.SetSkipProofOfWorkCheck(true)

	p := m.Params()
	consensus := p.Consensus()
	require.Equal(t, int32(150), consensus.SubsidyHalvingInterval)
	require.Equal(t, int32(51), consensus.EnforceBlockUpgradeMajority)
	require.Equal(t, int32(75), consensus.RejectBlockOutdatedMajority)
	require.Equal(t, int32(100), consensus.ToCheckBlockUpgradeMajority)
	require.False(t, p.Flags().DefaultConsistencyChecks)
	require.True(t, p.Flags().AllowMinDifficultyBlocks)
	require.True(t, p.Flags().SkipProofOfWorkCheck)

	static := ProfileFor(UnitTest)
	require.Equal(t, int32(0), static.Consensus().SubsidyHalvingInterval)
	require.Equal(t, int32(750), static.Consensus().EnforceBlockUpgradeMajority)
	require.True(t, static.Flags().DefaultConsistencyChecks)
	require.False(t, static.Flags().SkipProofOfWorkCheck)
}

func TestModifiableRegTestActivation(t *testing.T) {
	m := NewModifiableParams(t, RegTest)
	p := m.Params()

	require.False(t, p.IsActive(UpgradeZCV2, 5000))
	m.SetActivationHeight(UpgradeZCV2, 1000)
	require.False(t, p.IsActive(UpgradeZCV2, 999))
	require.True(t, p.IsActive(UpgradeZCV2, 1000))
	require.Equal(t, int32(1000), p.Upgrades().ActivationHeight(UpgradeZCV2))

	require.Equal(t, NeverActive, ProfileFor(RegTest).Upgrades().ActivationHeight(UpgradeZCV2))
}

func TestModifiableRejectsMisuse(t *testing.T) {
	rec := &fatalRecorder{TB: t}
	require.Nil(t, NewModifiableParams(rec, MainNet))
	require.Nil(t, NewModifiableParams(rec, TestNet))
	require.Len(t, rec.failures, 2)

	rec = &fatalRecorder{TB: t}
	regtest := NewModifiableParams(rec, RegTest)
	regtest.SetSkipProofOfWorkCheck(true)
	regtest.SetSubsidyHalvingInterval(150)
	regtest.SetEnforceBlockUpgradeMajority(51)
	regtest.SetRejectBlockOutdatedMajority(75)
	regtest.SetToCheckBlockUpgradeMajority(100)
	regtest.SetDefaultConsistencyChecks(false)
	regtest.SetAllowMinDifficultyBlocks(false)
	require.Len(t, rec.failures, 7)
	require.Equal(t, ProfileFor(RegTest).Consensus(), regtest.Params().Consensus())
	require.Equal(t, ProfileFor(RegTest).Flags(), regtest.Params().Flags())

	// v4.0 builds on v3.4, which is not scheduled.
	regtest.SetActivationHeight(UpgradeV4_0, 100)
	require.Equal(t, NeverActive, regtest.Params().Upgrades().ActivationHeight(UpgradeV4_0))
	regtest.SetActivationHeight(DefinedUpgrades, 100)
	require.Len(t, rec.failures, 9)

	rec = &fatalRecorder{TB: t}
	unittest := NewModifiableParams(rec, UnitTest)
	unittest.SetActivationHeight(UpgradePoS, 10)
	require.Len(t, rec.failures, 1)
	require.Equal(t, int32(259201), unittest.Params().Upgrades().ActivationHeight(UpgradePoS))
}

func TestModifiableSelect(t *testing.T) {
	m := NewModifiableParams(t, RegTest)
	m.SetActivationHeight(UpgradeBIP65, 10)

	r := NewRegistry()
	p := m.Select(r)
	require.Same(t, m.Params(), p)
	require.Same(t, p, r.Current())
	require.True(t, r.Current().IsActive(UpgradeBIP65, 10))
	require.Same(t, p, m.Select(r))

	// The static profile of the same network no longer fits.
	require.Panics(t, func() { r.Select(RegTest) })
}

func TestModifiableSelectAfterStaticProfile(t *testing.T) {
	r := NewRegistry()
	static := r.Select(RegTest)

	rec := &fatalRecorder{TB: t}
	m := NewModifiableParams(rec, RegTest)
	m.SetActivationHeight(UpgradeBIP65, 500)

	require.Nil(t, m.Select(r))
	require.Len(t, rec.failures, 1)
	require.Contains(t, rec.failures[0], "cannot select other regtest parameters")
	require.Same(t, static, r.Current())
	require.False(t, r.Current().IsActive(UpgradeBIP65, 600))
}
