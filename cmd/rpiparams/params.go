// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/MetalBlockchain/rpiparams/chaincfg"
	"github.com/MetalBlockchain/rpiparams/internal/metrics"
	"github.com/btcsuite/btcd/blockchain"
	hex "github.com/tmthrgd/go-hex"
)

// netParams groups the chain parameters of a network with the port its
// parameter server listens on by default.
type netParams struct {
	*chaincfg.Params
	apiPort string
}

var (
	mainNetParams = netParams{
		Params:  chaincfg.ProfileFor(chaincfg.MainNet),
		apiPort: "18001",
	}

	testNetParams = netParams{
		Params:  chaincfg.ProfileFor(chaincfg.TestNet),
		apiPort: "18003",
	}

	regTestParams = netParams{
		Params:  chaincfg.ProfileFor(chaincfg.RegTest),
		apiPort: "18006",
	}

	unitTestParams = netParams{
		Params:  chaincfg.ProfileFor(chaincfg.UnitTest),
		apiPort: "18007",
	}
)

// paramsFor returns the netParams of id.
func paramsFor(id chaincfg.NetworkID) *netParams {
	switch id {
	case chaincfg.TestNet:
		return &testNetParams
	case chaincfg.RegTest:
		return &regTestParams
	case chaincfg.UnitTest:
		return &unitTestParams
	default:
		return &mainNetParams
	}
}

// netName returns the name used when referring to a network.  At the time
// of writing, the test network keeps its data in a directory named
// "testnet4" so that it does not collide with data of retired test
// networks.
func netName(chainParams *netParams) string {
	switch chainParams.Net() {
	case chaincfg.TestNet:
		return "testnet4"
	default:
		return chainParams.Name()
	}
}

var saplingKinds = []chaincfg.SaplingKind{
	chaincfg.SaplingPaymentAddress,
	chaincfg.SaplingFullViewingKey,
	chaincfg.SaplingIncomingViewingKey,
	chaincfg.SaplingExtendedSpendingKey,
}

// paramsView is the JSON form of a profile.
type paramsView struct {
	Network      string            `json:"network"`
	Magic        string            `json:"magic"`
	DefaultPort  string            `json:"defaultPort"`
	APIPort      string            `json:"apiPort"`
	DNSSeeds     []string          `json:"dnsSeeds"`
	FixedSeeds   int               `json:"fixedSeeds"`
	GenesisHash  string            `json:"genesisHash"`
	LastPoWBlock int32             `json:"lastPowBlock"`
	MaxMoney     float64           `json:"maxMoney"`
	Consensus    consensusView     `json:"consensus"`
	Prefixes     prefixesView      `json:"prefixes"`
	SaplingHRPs  map[string]string `json:"saplingHrps"`
	Flags        chaincfg.Flags    `json:"flags"`
	SporkPubKey  string            `json:"sporkPubKey"`
}

type consensusView struct {
	PowLimitBits                uint32 `json:"powLimitBits"`
	CoinbaseMaturity            int32  `json:"coinbaseMaturity"`
	TargetSpacingV1             string `json:"targetSpacingV1"`
	TargetTimespanV1            string `json:"targetTimespanV1"`
	TargetSpacingV2             string `json:"targetSpacingV2"`
	TargetTimespanV2            string `json:"targetTimespanV2"`
	TimeProtocolV2Height        int32  `json:"timeProtocolV2Height"`
	SubsidyHalvingInterval      int32  `json:"subsidyHalvingInterval"`
	MaxReorganizationDepth      int32  `json:"maxReorganizationDepth"`
	EnforceBlockUpgradeMajority int32  `json:"enforceBlockUpgradeMajority"`
	RejectBlockOutdatedMajority int32  `json:"rejectBlockOutdatedMajority"`
	ToCheckBlockUpgradeMajority int32  `json:"toCheckBlockUpgradeMajority"`
	NewProtocolStartTime        int64  `json:"newProtocolStartTime"`
}

type prefixesView struct {
	PubKeyHash   uint8  `json:"pubKeyHash"`
	ScriptHash   uint8  `json:"scriptHash"`
	Staking      uint8  `json:"staking"`
	SecretKey    uint8  `json:"secretKey"`
	ExtPublicKey string `json:"extPublicKey"`
	ExtSecretKey string `json:"extSecretKey"`
	ExtCoinType  uint32 `json:"extCoinType"`
}

type genesisView struct {
	Hash       string `json:"hash"`
	MerkleRoot string `json:"merkleRoot"`
	Version    int32  `json:"version"`
	Time       int64  `json:"time"`
	Bits       uint32 `json:"bits"`
	Nonce      uint32 `json:"nonce"`
	Coinbase   string `json:"coinbase"`
	Payee      string `json:"payee,omitempty"`
	Subsidy    int64  `json:"subsidy"`
}

type checkpointView struct {
	Height int32  `json:"height"`
	Hash   string `json:"hash"`
}

type checkpointsView struct {
	Checkpoints                      []checkpointView `json:"checkpoints"`
	LastCheckpointTime               int64            `json:"lastCheckpointTime"`
	TransactionsBeforeLastCheckpoint uint64           `json:"transactionsBeforeLastCheckpoint"`
	EstimatedTransactionsPerDay      uint64           `json:"estimatedTransactionsPerDay"`
}

type upgradeView struct {
	Name             string `json:"name"`
	ActivationHeight int32  `json:"activationHeight"`
	ActivationHash   string `json:"activationHash,omitempty"`
	Active           *bool  `json:"active,omitempty"`
}

func newParamsView(p *netParams) paramsView {
	magic := p.MessageStart()
	genesis := p.GenesisHash()
	c := p.Consensus()
	prefixes := p.AddressPrefixes()
	flags := p.Flags()

	// The second timing protocol starts with PoS v2.
	timeProtocolV2Height := p.Upgrades().ActivationHeight(chaincfg.UpgradePoSV2)
	if timeProtocolV2Height == chaincfg.NeverActive {
		timeProtocolV2Height = -1
	}

	hrps := make(map[string]string, len(saplingKinds))
	for _, kind := range saplingKinds {
		hrps[kind.String()] = p.SaplingHRP(kind)
	}

	return paramsView{
		Network:      p.Name(),
		Magic:        hex.EncodeToString(magic[:]),
		DefaultPort:  p.DefaultPort(),
		APIPort:      p.apiPort,
		DNSSeeds:     p.DNSSeeds(),
		FixedSeeds:   len(p.FixedSeeds()),
		GenesisHash:  genesis.String(),
		LastPoWBlock: p.LastPoWBlock(),
		MaxMoney:     p.MaxMoney().ToBTC(),
		Consensus: consensusView{
			PowLimitBits:                blockchain.BigToCompact(p.ProofOfWorkLimit()),
			CoinbaseMaturity:            c.CoinbaseMaturity,
			TargetSpacingV1:             c.TargetSpacingV1.String(),
			TargetTimespanV1:            c.TargetTimespanV1.String(),
			TargetSpacingV2:             c.TargetSpacingV2.String(),
			TargetTimespanV2:            c.TargetTimespanV2.String(),
			TimeProtocolV2Height:        timeProtocolV2Height,
			SubsidyHalvingInterval:      c.SubsidyHalvingInterval,
			MaxReorganizationDepth:      c.MaxReorganizationDepth,
			EnforceBlockUpgradeMajority: c.EnforceBlockUpgradeMajority,
			RejectBlockOutdatedMajority: c.RejectBlockOutdatedMajority,
			ToCheckBlockUpgradeMajority: c.ToCheckBlockUpgradeMajority,
			NewProtocolStartTime:        c.NewProtocolStartTime.Unix(),
		},
		Prefixes: prefixesView{
			PubKeyHash:   prefixes.PubKeyHash,
			ScriptHash:   prefixes.ScriptHash,
			Staking:      prefixes.Staking,
			SecretKey:    prefixes.SecretKey,
			ExtPublicKey: hex.EncodeToString(prefixes.ExtPublicKey[:]),
			ExtSecretKey: hex.EncodeToString(prefixes.ExtSecretKey[:]),
			ExtCoinType:  prefixes.ExtCoinType,
		},
		SaplingHRPs: hrps,
		Flags:       flags,
		SporkPubKey: p.Keys().SporkPubKey,
	}
}

func newGenesisView(p *chaincfg.Params) genesisView {
	block := p.GenesisBlock()
	spec := p.GenesisSpec()
	hash := block.BlockHash()

	view := genesisView{
		Hash:       hash.String(),
		MerkleRoot: block.Header.MerkleRoot.String(),
		Version:    block.Header.Version,
		Time:       block.Header.Timestamp.Unix(),
		Bits:       block.Header.Bits,
		Nonce:      block.Header.Nonce,
		Coinbase:   hex.EncodeToString(block.Transactions[0].TxIn[0].SignatureScript),
		Subsidy:    int64(spec.Subsidy),
	}
	if len(spec.PayeeScript) > 0 {
		view.Payee = hex.EncodeToString(spec.PayeeScript)
	}
	return view
}

func newCheckpointsView(p *chaincfg.Params) checkpointsView {
	table := p.Checkpoints()
	points := table.Checkpoints()

	view := checkpointsView{
		Checkpoints:                      make([]checkpointView, 0, len(points)),
		LastCheckpointTime:               table.LastCheckpointTime().Unix(),
		TransactionsBeforeLastCheckpoint: table.TransactionsBeforeLastCheckpoint(),
		EstimatedTransactionsPerDay:      table.EstimatedTransactionsPerDay(),
	}
	for _, cp := range points {
		view.Checkpoints = append(view.Checkpoints, checkpointView{
			Height: cp.Height,
			Hash:   cp.Hash.String(),
		})
	}
	return view
}

// newUpgradeView describes upgrade u.  The active state is only reported
// when height is not nil.
func newUpgradeView(p *chaincfg.Params, u chaincfg.UpgradeID, height *int32) upgradeView {
	upgrades := p.Upgrades()
	view := upgradeView{
		Name:             u.String(),
		ActivationHeight: upgrades.ActivationHeight(u),
	}
	if view.ActivationHeight == chaincfg.NeverActive {
		view.ActivationHeight = -1
	}
	if hash, ok := upgrades.ActivationHash(u); ok {
		view.ActivationHash = hash.String()
	}
	if height != nil {
		active := p.IsActive(u, *height)
		view.Active = &active
	}
	return view
}

func newUpgradesView(p *chaincfg.Params, height *int32) []upgradeView {
	views := make([]upgradeView, 0, chaincfg.DefinedUpgrades)
	for u := chaincfg.UpgradeID(0); u < chaincfg.DefinedUpgrades; u++ {
		views = append(views, newUpgradeView(p, u, height))
	}
	return views
}

// parseUpgrade finds an upgrade by its metric label ("pos_v2") or by its
// name ("PoS v2").
func parseUpgrade(name string) (chaincfg.UpgradeID, bool) {
	for u := chaincfg.UpgradeID(0); u < chaincfg.DefinedUpgrades; u++ {
		if name == u.String() || name == metrics.UpgradeLabel(u) {
			return u, true
		}
	}
	return 0, false
}
