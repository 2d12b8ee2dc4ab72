// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaincfg

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

var (
	// ErrGenesisHashMismatch is returned by VerifyGenesis when the block hash
	// differs from the expected literal.
	ErrGenesisHashMismatch = errors.New("genesis hash mismatch")

	// ErrGenesisMerkleMismatch is returned by VerifyGenesis when the merkle
	// root differs from the expected literal.
	ErrGenesisMerkleMismatch = errors.New("genesis merkle root mismatch")

	// ErrHighHash is returned when a block hash is above its target.
	ErrHighHash = errors.New("block hash is higher than its target")
)

// GenesisSpec holds everything needed to rebuild a genesis block.
type GenesisSpec struct {
	// Message is the human-readable tag embedded in the coinbase input.
	Message []byte

	// Witnesses are small integers pushed ahead of Message in the coinbase
	// signature script.
	Witnesses []int64

	// PayeeScript is the public key script of the single coinbase output.
	// An empty script leaves the output unspendable by anyone.
	PayeeScript []byte

	// Subsidy is the value of the single coinbase output.
	Subsidy btcutil.Amount

	Version int32
	Time    time.Time
	Bits    uint32
	Nonce   uint32
}

// coinbaseScript builds the signature script of the genesis coinbase input.
func (s *GenesisSpec) coinbaseScript() ([]byte, error) {
	builder := txscript.NewScriptBuilder()
	for _, w := range s.Witnesses {
		builder.AddInt64(w)
	}
	builder.AddData(s.Message)
	return builder.Script()
}

// BuildGenesis deterministically constructs the genesis block described by
// spec.  The block has a zero previous block hash and a single coinbase
// transaction spending the null outpoint, so its merkle root is the hash of
// that transaction.
func BuildGenesis(spec GenesisSpec) (*wire.MsgBlock, error) {
	sigScript, err := spec.coinbaseScript()
	if err != nil {
		return nil, fmt.Errorf("failed to build coinbase script: %w", err)
	}

	coinbase := wire.NewMsgTx(1)
	coinbase.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: wire.MaxPrevOutIndex,
		},
		SignatureScript: sigScript,
		Sequence:        wire.MaxTxInSequenceNum,
	})
	coinbase.AddTxOut(wire.NewTxOut(int64(spec.Subsidy), spec.PayeeScript))

	merkleRoot := blockchain.CalcMerkleRoot(
		[]*btcutil.Tx{btcutil.NewTx(coinbase)}, false,
	)

	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    spec.Version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: merkleRoot,
			Timestamp:  time.Unix(spec.Time.Unix(), 0),
			Bits:       spec.Bits,
			Nonce:      spec.Nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}, nil
}

// VerifyGenesis compares the hash and merkle root of block against the
// expected values, given as byte-reversed hex strings the way block explorers
// print them.
func VerifyGenesis(block *wire.MsgBlock, wantHash, wantMerkleRoot string) error {
	hash, err := chainhash.NewHashFromStr(wantHash)
	if err != nil {
		return fmt.Errorf("invalid expected genesis hash %q: %w", wantHash, err)
	}
	merkle, err := chainhash.NewHashFromStr(wantMerkleRoot)
	if err != nil {
		return fmt.Errorf("invalid expected merkle root %q: %w", wantMerkleRoot, err)
	}

	if got := block.Header.MerkleRoot; !got.IsEqual(merkle) {
		return fmt.Errorf("%w: got %v, want %v", ErrGenesisMerkleMismatch,
			got, merkle)
	}
	if got := block.BlockHash(); !got.IsEqual(hash) {
		return fmt.Errorf("%w: got %v, want %v", ErrGenesisHashMismatch,
			got, hash)
	}
	return nil
}

// MustBuildGenesis builds the genesis block for spec and panics unless its
// hash and merkle root equal the expected literals.  A wrong genesis silently
// forks the node off its network, so there is nothing to recover from.
func MustBuildGenesis(spec GenesisSpec, wantHash, wantMerkleRoot string) *wire.MsgBlock {
	block, err := BuildGenesis(spec)
	if err != nil {
		panic(fmt.Sprintf("chaincfg: genesis: %v", err))
	}
	if err := VerifyGenesis(block, wantHash, wantMerkleRoot); err != nil {
		panic(fmt.Sprintf("chaincfg: genesis: %v", err))
	}
	return block
}

// CheckProofOfWork ensures hash does not exceed the target encoded in bits
// and that the target itself is within powLimit.
func CheckProofOfWork(hash chainhash.Hash, bits uint32, powLimit *big.Int) error {
	target := blockchain.CompactToBig(bits)
	if target.Sign() <= 0 {
		return fmt.Errorf("target difficulty of %064x is too low", target)
	}
	if target.Cmp(powLimit) > 0 {
		return fmt.Errorf("target difficulty of %064x is higher than max of %064x",
			target, powLimit)
	}
	if blockchain.HashToBig(&hash).Cmp(target) > 0 {
		return fmt.Errorf("%w: hash %v, target %064x", ErrHighHash, hash, target)
	}
	return nil
}

// SolveGenesis builds the genesis block for spec and searches for the first
// nonce, starting at spec.Nonce, whose block hash meets spec.Bits.
func SolveGenesis(ctx context.Context, spec GenesisSpec) (*wire.MsgBlock, error) {
	block, err := BuildGenesis(spec)
	if err != nil {
		return nil, err
	}

	target := blockchain.CompactToBig(spec.Bits)
	for nonce := uint64(spec.Nonce); nonce <= math.MaxUint32; nonce++ {
		if nonce%65536 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		block.Header.Nonce = uint32(nonce)
		hash := block.Header.BlockHash()
		if blockchain.HashToBig(&hash).Cmp(target) <= 0 {
			return block, nil
		}
	}
	return nil, fmt.Errorf("no nonce satisfies bits %08x at time %d",
		spec.Bits, spec.Time.Unix())
}

// PayToPubKeyScript returns the script <pubkey> OP_CHECKSIG for a hex
// encoded public key, rejecting keys that are not on the curve.
func PayToPubKeyScript(pubKeyHex string) ([]byte, error) {
	serialized, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid public key hex: %w", err)
	}
	if _, err := btcec.ParsePubKey(serialized); err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}
	return txscript.NewScriptBuilder().
		AddData(serialized).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// mustPayToPubKeyScript is PayToPubKeyScript for literals.
func mustPayToPubKeyScript(pubKeyHex string) []byte {
	script, err := PayToPubKeyScript(pubKeyHex)
	if err != nil {
		panic(fmt.Sprintf("chaincfg: payee script: %v", err))
	}
	return script
}
