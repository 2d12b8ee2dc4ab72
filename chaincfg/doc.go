// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package chaincfg defines the consensus parameters of the main, test,
regression test and unit test networks.

Every profile is built once when the package is initialized.  Building a
profile rebuilds its genesis block from a GenesisSpec and compares the result
against hard-coded hash and merkle root literals, validates the checkpoint
table and the ordering of network upgrade activations.  Any mismatch panics:
a node must never start with a parameter table that does not describe the
chain it claims to follow.

Profiles are read-only.  A daemon selects one at startup through a Registry
and passes the returned *Params to whatever needs consensus rules:

	reg := chaincfg.NewRegistry()
	params := reg.Select(chaincfg.TestNet)

	if params.IsActive(chaincfg.UpgradePoS, height) {
		// proof of stake rules
	}

The package's own tests tweak profiles through NewModifiableParams, which
hands out a private copy of the regression test or unit test profile and is
only compiled into the test binary.
*/
package chaincfg
