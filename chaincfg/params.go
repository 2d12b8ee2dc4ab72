// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaincfg

import (
	"fmt"
	"math/big"
	"math/rand"
	"net"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// maxUint256 is ~uint256(0).
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)
)

// limitShift returns ~uint256(0) >> n, the form every difficulty limit of
// this chain takes.
func limitShift(n uint) *big.Int {
	return new(big.Int).Rsh(maxUint256, n)
}

// Consensus groups the scalar consensus constants of a network.
type Consensus struct {
	// PowLimit is the highest proof of work target a block can have.
	PowLimit *big.Int

	// PoSLimitV1 and PoSLimitV2 are the highest proof of stake targets
	// before and after UpgradePoSV2.
	PoSLimitV1 *big.Int
	PoSLimitV2 *big.Int

	// Retarget window and block spacing before and after UpgradePoSV2.
	TargetTimespanV1 time.Duration
	TargetTimespanV2 time.Duration
	TargetSpacingV1  time.Duration
	TargetSpacingV2  time.Duration

	// CoinbaseMaturity is the number of blocks required before newly
	// minted coins can be spent.
	CoinbaseMaturity int32

	// MasternodeCountDrift is how far the masternode count may drift
	// from the expected count before payments are rejected.
	MasternodeCountDrift int32

	// MaxMoneyOut caps the total money supply.
	MaxMoneyOut btcutil.Amount

	SubsidyHalvingInterval int32
	MaxReorganizationDepth int32

	// Block version majority thresholds out of ToCheckBlockUpgradeMajority
	// recent blocks.
	EnforceBlockUpgradeMajority int32
	RejectBlockOutdatedMajority int32
	ToCheckBlockUpgradeMajority int32

	MinerThreads int32

	// NewProtocolStartTime is when the time based rules of the second
	// protocol start.
	NewProtocolStartTime time.Time

	// Masternode and budget system.
	StartMasternodePayments time.Time
	BudgetFeeConfirmations  int32
	PoolMaxTransactions     int32
}

// copy returns c with private copies of its big integers.
func (c Consensus) copy() Consensus {
	c.PowLimit = new(big.Int).Set(c.PowLimit)
	c.PoSLimitV1 = new(big.Int).Set(c.PoSLimitV1)
	c.PoSLimitV2 = new(big.Int).Set(c.PoSLimitV2)
	return c
}

// Zerocoin groups the constants of the legacy zerocoin accumulator.
type Zerocoin struct {
	// Modulus is the RSA-2048 challenge modulus the accumulator is built
	// on, written in decimal.
	Modulus string

	StartTime                 time.Time
	MaxSpendsPerTransaction   int32
	MinMintFee                btcutil.Amount
	MintRequiredConfirmations int32
	RequiredAccumulation      int32
	DefaultSecurityLevel      int32
	HeaderVersion             int32
	RequiredStakeDepth        int32
}

// AddressPrefixes are the version bytes of every base58 encoded address and
// key kind.
type AddressPrefixes struct {
	PubKeyHash   byte
	ScriptHash   byte
	Staking      byte
	SecretKey    byte
	ExtPublicKey [4]byte
	ExtSecretKey [4]byte

	// ExtCoinType is the BIP44 coin type, without the hardened bit.
	ExtCoinType uint32
}

// SaplingKind identifies a bech32 encoded shielded key or address kind.
type SaplingKind uint8

const (
	SaplingPaymentAddress SaplingKind = iota
	SaplingFullViewingKey
	SaplingIncomingViewingKey
	SaplingExtendedSpendingKey

	numSaplingKinds
)

// String returns the name of the kind.
func (k SaplingKind) String() string {
	switch k {
	case SaplingPaymentAddress:
		return "payment address"
	case SaplingFullViewingKey:
		return "full viewing key"
	case SaplingIncomingViewingKey:
		return "incoming viewing key"
	case SaplingExtendedSpendingKey:
		return "extended spending key"
	}
	return fmt.Sprintf("Unknown SaplingKind (%d)", uint8(k))
}

// SaplingHRPs are the bech32 human-readable parts of shielded encodings,
// indexed by SaplingKind.
type SaplingHRPs [numSaplingKinds]string

// Flags are the boolean capabilities of a network.
type Flags struct {
	MiningRequiresPeers           bool
	AllowMinDifficultyBlocks      bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	SkipProofOfWorkCheck          bool
	TestnetToBeDeprecatedFieldRPC bool
	HeadersFirstSyncingActive     bool
}

// Keys are the well known keys of a network.
type Keys struct {
	// AlertPubKey verifies network alerts, hex encoded.
	AlertPubKey string

	// SporkPubKey verifies spork messages, hex encoded.
	SporkPubKey string

	// ObfuscationPoolDummyAddress is the placeholder address of the
	// obfuscation pool.
	ObfuscationPoolDummyAddress string
}

// SeedSpec6 is a fixed seed node: an IPv6 or IPv4-mapped address and port.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// Params defines a network by its parameters.  A *Params is read-only:
// every accessor returns a copy of the underlying value.
type Params struct {
	net          NetworkID
	messageStart [4]byte
	defaultPort  string
	dnsSeeds     []string
	fixedSeeds   []SeedSpec6

	genesisSpec       GenesisSpec
	genesisHashHex    string
	genesisMerkleHex  string
	genesis           *wire.MsgBlock
	genesisHash       chainhash.Hash
	checkpointData    CheckpointData
	checkpoints       *CheckpointTable
	upgradeEntries    [DefinedUpgrades]UpgradeEntry
	upgrades          *UpgradeTable
	consensus         Consensus
	zerocoin          Zerocoin
	prefixes          AddressPrefixes
	sapling           SaplingHRPs
	flags             Flags
	keys              Keys
	repeatedOverrides []string
}

// Net returns the network identity.
func (p *Params) Net() NetworkID {
	return p.net
}

// Name returns the short network name.
func (p *Params) Name() string {
	return p.net.String()
}

// MessageStart returns the magic bytes that start every wire message.
func (p *Params) MessageStart() [4]byte {
	return p.messageStart
}

// WireNet returns the message start bytes as a wire.BitcoinNet, the way
// btcd's wire package reads them off the network.
func (p *Params) WireNet() wire.BitcoinNet {
	m := p.messageStart
	return wire.BitcoinNet(uint32(m[0]) | uint32(m[1])<<8 |
		uint32(m[2])<<16 | uint32(m[3])<<24)
}

// DefaultPort returns the default peer-to-peer port.
func (p *Params) DefaultPort() string {
	return p.defaultPort
}

// DNSSeeds returns the seed host names.
func (p *Params) DNSSeeds() []string {
	return append([]string(nil), p.dnsSeeds...)
}

// FixedSeeds returns the hard-coded seed nodes.
func (p *Params) FixedSeeds() []SeedSpec6 {
	return append([]SeedSpec6(nil), p.fixedSeeds...)
}

// FixedSeedAddresses converts the fixed seeds into network addresses.  Each
// gets a random last-seen time between one and two weeks before now so that
// addresses learned from live peers are preferred.
func (p *Params) FixedSeedAddresses(now time.Time, rng *rand.Rand) []*wire.NetAddress {
	const oneWeek = 7 * 24 * time.Hour

	addrs := make([]*wire.NetAddress, 0, len(p.fixedSeeds))
	for _, seed := range p.fixedSeeds {
		ip := make(net.IP, net.IPv6len)
		copy(ip, seed.Addr[:])
		age := oneWeek + time.Duration(rng.Int63n(int64(oneWeek/time.Second)))*time.Second
		addrs = append(addrs, wire.NewNetAddressTimestamp(
			now.Add(-age), wire.SFNodeNetwork, ip, seed.Port,
		))
	}
	return addrs
}

// GenesisSpec returns the inputs the genesis block is built from.
func (p *Params) GenesisSpec() GenesisSpec {
	spec := p.genesisSpec
	spec.Message = append([]byte(nil), spec.Message...)
	spec.Witnesses = append([]int64(nil), spec.Witnesses...)
	spec.PayeeScript = append([]byte(nil), spec.PayeeScript...)
	return spec
}

// GenesisBlock returns a copy of the genesis block.
func (p *Params) GenesisBlock() *wire.MsgBlock {
	block := &wire.MsgBlock{
		Header:       p.genesis.Header,
		Transactions: make([]*wire.MsgTx, 0, len(p.genesis.Transactions)),
	}
	for _, tx := range p.genesis.Transactions {
		block.Transactions = append(block.Transactions, tx.Copy())
	}
	return block
}

// GenesisHash returns the hash of the genesis block.
func (p *Params) GenesisHash() chainhash.Hash {
	return p.genesisHash
}

// GenesisHashHex returns the hard-coded genesis hash literal the genesis
// block was verified against when the profile was built.
func (p *Params) GenesisHashHex() string {
	return p.genesisHashHex
}

// GenesisMerkleRootHex returns the hard-coded genesis merkle root literal.
func (p *Params) GenesisMerkleRootHex() string {
	return p.genesisMerkleHex
}

// Checkpoints returns the checkpoint table.
func (p *Params) Checkpoints() *CheckpointTable {
	return p.checkpoints
}

// Upgrades returns the network upgrade schedule.
func (p *Params) Upgrades() *UpgradeTable {
	return p.upgrades
}

// IsActive reports whether upgrade u is active at height.
func (p *Params) IsActive(u UpgradeID, height int32) bool {
	return p.upgrades.IsActive(u, height)
}

// Consensus returns the scalar consensus constants.
func (p *Params) Consensus() Consensus {
	return p.consensus.copy()
}

// Zerocoin returns the zerocoin constants.
func (p *Params) Zerocoin() Zerocoin {
	return p.zerocoin
}

// AddressPrefixes returns the base58 version bytes.
func (p *Params) AddressPrefixes() AddressPrefixes {
	return p.prefixes
}

// SaplingHRP returns the bech32 human-readable part for kind.
func (p *Params) SaplingHRP(kind SaplingKind) string {
	if kind >= numSaplingKinds {
		return ""
	}
	return p.sapling[kind]
}

// EncodeSapling bech32 encodes a serialized shielded address or key of the
// given kind.
func (p *Params) EncodeSapling(kind SaplingKind, data []byte) (string, error) {
	hrp := p.SaplingHRP(kind)
	if hrp == "" {
		return "", fmt.Errorf("no human-readable part for %v", kind)
	}
	converted, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(hrp, converted)
}

// Flags returns the boolean capabilities.
func (p *Params) Flags() Flags {
	return p.flags
}

// Keys returns the alert and spork keys.
func (p *Params) Keys() Keys {
	return p.keys
}

// ProofOfWorkLimit returns the highest proof of work target.
func (p *Params) ProofOfWorkLimit() *big.Int {
	return new(big.Int).Set(p.consensus.PowLimit)
}

// ProofOfStakeLimit returns the highest proof of stake target at height.
func (p *Params) ProofOfStakeLimit(height int32) *big.Int {
	if p.IsActive(UpgradePoSV2, height) {
		return new(big.Int).Set(p.consensus.PoSLimitV2)
	}
	return new(big.Int).Set(p.consensus.PoSLimitV1)
}

// TargetTimespan returns the difficulty retarget window at height.
func (p *Params) TargetTimespan(height int32) time.Duration {
	if p.IsTimeProtocolV2(height) {
		return p.consensus.TargetTimespanV2
	}
	return p.consensus.TargetTimespanV1
}

// TargetSpacing returns the desired time between blocks at height.
func (p *Params) TargetSpacing(height int32) time.Duration {
	if p.IsTimeProtocolV2(height) {
		return p.consensus.TargetSpacingV2
	}
	return p.consensus.TargetSpacingV1
}

// IsTimeProtocolV2 reports whether the second timing protocol applies at
// height.
func (p *Params) IsTimeProtocolV2(height int32) bool {
	return p.IsActive(UpgradePoSV2, height)
}

// LastPoWBlock returns the height of the last proof of work block.
func (p *Params) LastPoWBlock() int32 {
	h := p.upgrades.ActivationHeight(UpgradePoS)
	if h == NeverActive || h == AlwaysActive {
		return h
	}
	return h - 1
}

// MaxMoney returns the cap on the money supply.
func (p *Params) MaxMoney() btcutil.Amount {
	return p.consensus.MaxMoneyOut
}

// MoneyRange reports whether amount is a valid money value.
func (p *Params) MoneyRange(amount btcutil.Amount) bool {
	return amount >= 0 && amount <= p.consensus.MaxMoneyOut
}

// ZerocoinModulus returns the accumulator modulus.  The first zerocoin
// version parsed the modulus string as hexadecimal, which is kept so old
// accumulators still verify; later versions read it as decimal.
func (p *Params) ZerocoinModulus(useV1 bool) *big.Int {
	base := 10
	if useV1 {
		base = 16
	}
	modulus, ok := new(big.Int).SetString(p.zerocoin.Modulus, base)
	if !ok {
		panic(fmt.Sprintf("chaincfg: %v: invalid zerocoin modulus", p.net))
	}
	return modulus
}

// ChainParams returns a btcd chaincfg.Params carrying this network's magic,
// genesis, limits and address prefixes, so btcutil and hdkeychain encode
// addresses and keys for this network.  Every call returns a new value.
func (p *Params) ChainParams() *chaincfg.Params {
	genesisHash := p.genesisHash
	checkpoints := make([]chaincfg.Checkpoint, 0, len(p.checkpointData.Checkpoints))
	for _, cp := range p.checkpoints.Checkpoints() {
		hash := cp.Hash
		checkpoints = append(checkpoints, chaincfg.Checkpoint{
			Height: cp.Height,
			Hash:   &hash,
		})
	}
	dnsSeeds := make([]chaincfg.DNSSeed, 0, len(p.dnsSeeds))
	for _, host := range p.dnsSeeds {
		dnsSeeds = append(dnsSeeds, chaincfg.DNSSeed{Host: host})
	}

	return &chaincfg.Params{
		Name:        p.Name(),
		Net:         p.WireNet(),
		DefaultPort: p.defaultPort,
		DNSSeeds:    dnsSeeds,

		GenesisBlock:        p.GenesisBlock(),
		GenesisHash:         &genesisHash,
		PowLimit:            p.ProofOfWorkLimit(),
		PowLimitBits:        p.genesisSpec.Bits,
		CoinbaseMaturity:    uint16(p.consensus.CoinbaseMaturity),
		TargetTimespan:      p.consensus.TargetTimespanV2,
		TargetTimePerBlock:  p.consensus.TargetSpacingV2,
		ReduceMinDifficulty: p.flags.AllowMinDifficultyBlocks,
		GenerateSupported:   p.flags.MineBlocksOnDemand,
		Checkpoints:         checkpoints,
		RelayNonStdTxs:      !p.flags.RequireStandard,

		PubKeyHashAddrID: p.prefixes.PubKeyHash,
		ScriptHashAddrID: p.prefixes.ScriptHash,
		PrivateKeyID:     p.prefixes.SecretKey,
		HDPrivateKeyID:   p.prefixes.ExtSecretKey,
		HDPublicKeyID:    p.prefixes.ExtPublicKey,
		HDCoinType:       p.prefixes.ExtCoinType,
	}
}

// StakingAddress encodes a 20-byte key hash as a cold staking address.
func (p *Params) StakingAddress(pubKeyHash []byte) (string, error) {
	netParams := p.ChainParams()
	netParams.PubKeyHashAddrID = p.prefixes.Staking
	addr, err := btcutil.NewAddressPubKeyHash(pubKeyHash, netParams)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}
