// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaincfg

import (
	"fmt"
	"strings"
)

// NetworkID identifies one of the networks this package has parameters for.
type NetworkID uint8

const (
	// MainNet is the production network.
	MainNet NetworkID = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the local regression test network.
	RegTest

	// UnitTest is a main network clone used by unit test harnesses.
	UnitTest

	// numNetworks is the number of defined networks.  It must be the last
	// entry.
	numNetworks
)

// networkNames maps each network to the short name used on the command line
// and in data directory names.
var networkNames = [numNetworks]string{
	MainNet:  "main",
	TestNet:  "test",
	RegTest:  "regtest",
	UnitTest: "unittest",
}

// Networks returns every defined network in declaration order.
func Networks() []NetworkID {
	ids := make([]NetworkID, 0, numNetworks)
	for id := NetworkID(0); id < numNetworks; id++ {
		ids = append(ids, id)
	}
	return ids
}

// String returns the short name of the network.
func (n NetworkID) String() string {
	if n < numNetworks {
		return networkNames[n]
	}
	return fmt.Sprintf("Unknown NetworkID (%d)", uint8(n))
}

// IsValid reports whether n names a defined network.
func (n NetworkID) IsValid() bool {
	return n < numNetworks
}

// ParseNetworkID converts a network name into its NetworkID.  The long forms
// "mainnet" and "testnet" are accepted as well.
func ParseNetworkID(name string) (NetworkID, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "main", "mainnet":
		return MainNet, nil
	case "test", "testnet":
		return TestNet, nil
	case "regtest":
		return RegTest, nil
	case "unittest":
		return UnitTest, nil
	}
	return 0, fmt.Errorf("unknown network %q", name)
}
