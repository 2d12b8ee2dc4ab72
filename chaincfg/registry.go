// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaincfg

import (
	"fmt"
	"sync/atomic"

	"github.com/btcsuite/btcd/chaincfg"
)

// profiles holds the static profile of every network, indexed by NetworkID.
var profiles [numNetworks]*Params

func init() {
	profiles[MainNet] = newProfile(MainNet)
	profiles[TestNet] = newProfile(TestNet, testNetLayer)
	profiles[RegTest] = newProfile(RegTest, testNetLayer, regTestLayer)
	profiles[UnitTest] = newProfile(UnitTest, unitTestLayer)

	if err := validateDistinctPrefixes(profiles[:]); err != nil {
		panic(fmt.Sprintf("chaincfg: %v", err))
	}

	// hdkeychain looks up the public version of an extended private key
	// when neutering it.
	for _, p := range profiles {
		err := chaincfg.RegisterHDKeyID(p.prefixes.ExtPublicKey[:], p.prefixes.ExtSecretKey[:])
		if err != nil {
			panic(fmt.Sprintf("chaincfg: %v extended key versions: %v", p.net, err))
		}
	}
}

// ProfileFor returns the static profile of network id.  Repeated calls
// return the same profile.  It panics when id is not a defined network.
func ProfileFor(id NetworkID) *Params {
	if !id.IsValid() {
		panic(fmt.Sprintf("chaincfg: unknown network %v", id))
	}
	return profiles[id]
}

// Registry holds the network selected at startup.  A process creates one
// Registry, selects a network once and hands the Registry (or the selected
// *Params) to whatever needs consensus parameters.  It is safe for
// concurrent use.
type Registry struct {
	current atomic.Pointer[Params]
}

// NewRegistry returns a Registry with no network selected.
func NewRegistry() *Registry {
	return &Registry{}
}

// Select makes id the selected network and returns its profile.  Selecting
// the already selected network again is a no-op.  It panics when id is not
// a defined network or different parameters were selected before.
func (r *Registry) Select(id NetworkID) *Params {
	p, err := r.install(ProfileFor(id))
	if err != nil {
		panic(fmt.Sprintf("chaincfg: %v", err))
	}
	return p
}

// install selects p.  Installing the selected *Params again returns it,
// installing any other *Params after a selection fails.
func (r *Registry) install(p *Params) (*Params, error) {
	if !r.current.CompareAndSwap(nil, p) {
		prev := r.current.Load()
		switch {
		case prev == p:
			return prev, nil
		case prev.net == p.net:
			return nil, fmt.Errorf("cannot select other %v "+
				"parameters, %v is already selected", p.net, prev.net)
		default:
			return nil, fmt.Errorf("cannot select %v, %v is "+
				"already selected", p.net, prev.net)
		}
	}

	log.Infof("Selected %v network (magic %x, port %s)", p.net,
		p.messageStart, p.defaultPort)
	for _, field := range p.repeatedOverrides {
		log.Warnf("Network %v: %s assigned more than once, the last "+
			"assignment is used", p.net, field)
	}
	return p, nil
}

// Current returns the selected profile.  It panics when no network has been
// selected yet.
func (r *Registry) Current() *Params {
	p := r.current.Load()
	if p == nil {
		panic("chaincfg: no network selected")
	}
	return p
}

// Selected reports whether a network has been selected.
func (r *Registry) Selected() bool {
	return r.current.Load() != nil
}
