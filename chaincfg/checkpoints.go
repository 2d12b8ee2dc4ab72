// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaincfg

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// sigcheckVerificationFactor is how much more expensive it is to verify a
// transaction past the last checkpoint, where signatures are checked, than
// before it.
const sigcheckVerificationFactor = 5.0

var (
	errNoCheckpoints       = errors.New("checkpoint table is empty")
	errMissingGenesisPoint = errors.New("checkpoint table has no entry at height 0")
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial
// download and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   chainhash.Hash
}

// CheckpointData is the raw material of a CheckpointTable.
type CheckpointData struct {
	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// LastCheckpointTime is the timestamp of the last checkpoint block.
	LastCheckpointTime time.Time

	// TransactionsBeforeLastCheckpoint is the total number of transactions
	// between genesis and the last checkpoint.
	TransactionsBeforeLastCheckpoint uint64

	// EstimatedTransactionsPerDay is the expected number of transactions
	// per day after the last checkpoint.
	EstimatedTransactionsPerDay uint64
}

// CheckpointTable is an immutable, height ordered set of checkpoints.
type CheckpointTable struct {
	points   []Checkpoint
	byHeight map[int32]chainhash.Hash

	lastTime  time.Time
	txsBefore uint64
	txsPerDay uint64
}

// NewCheckpointTable validates data and returns a table built from a private
// copy of it.  Heights must be strictly increasing and include height 0.
func NewCheckpointTable(data CheckpointData) (*CheckpointTable, error) {
	if len(data.Checkpoints) == 0 {
		return nil, errNoCheckpoints
	}
	if data.Checkpoints[0].Height != 0 {
		return nil, errMissingGenesisPoint
	}

	t := &CheckpointTable{
		points:    make([]Checkpoint, len(data.Checkpoints)),
		byHeight:  make(map[int32]chainhash.Hash, len(data.Checkpoints)),
		lastTime:  data.LastCheckpointTime,
		txsBefore: data.TransactionsBeforeLastCheckpoint,
		txsPerDay: data.EstimatedTransactionsPerDay,
	}
	copy(t.points, data.Checkpoints)

	for i, cp := range t.points {
		if i > 0 && cp.Height <= t.points[i-1].Height {
			return nil, fmt.Errorf("checkpoint at height %d is not above "+
				"previous checkpoint at height %d", cp.Height,
				t.points[i-1].Height)
		}
		t.byHeight[cp.Height] = cp.Hash
	}
	return t, nil
}

// Lookup returns the checkpointed hash at height.  The second return value
// is false when height is not a checkpoint, which says nothing about the
// validity of a block there.
func (t *CheckpointTable) Lookup(height int32) (chainhash.Hash, bool) {
	hash, ok := t.byHeight[height]
	return hash, ok
}

// CheckBlock reports whether hash is acceptable at height, which is the case
// when height is not checkpointed or the checkpoint matches.
func (t *CheckpointTable) CheckBlock(height int32, hash chainhash.Hash) bool {
	want, ok := t.byHeight[height]
	return !ok || want == hash
}

// Checkpoints returns a copy of all checkpoints ordered by height.
func (t *CheckpointTable) Checkpoints() []Checkpoint {
	points := make([]Checkpoint, len(t.points))
	copy(points, t.points)
	return points
}

// LastCheckpoint returns the newest checkpoint.
func (t *CheckpointTable) LastCheckpoint() Checkpoint {
	return t.points[len(t.points)-1]
}

// LastCheckpointHeight returns the height of the newest checkpoint.  It is
// also the minimum number of blocks a synced chain is known to have.
func (t *CheckpointTable) LastCheckpointHeight() int32 {
	return t.LastCheckpoint().Height
}

// LastCheckpointTime returns the timestamp of the newest checkpoint block.
func (t *CheckpointTable) LastCheckpointTime() time.Time {
	return t.lastTime
}

// TransactionsBeforeLastCheckpoint returns the number of transactions
// between genesis and the newest checkpoint.
func (t *CheckpointTable) TransactionsBeforeLastCheckpoint() uint64 {
	return t.txsBefore
}

// EstimatedTransactionsPerDay returns the expected transaction rate after
// the newest checkpoint.
func (t *CheckpointTable) EstimatedTransactionsPerDay() uint64 {
	return t.txsPerDay
}

// LastKnownCheckpoint returns the newest checkpoint whose block the caller
// already has, as reported by known.  The second return value is false when
// none of them are known.
func (t *CheckpointTable) LastKnownCheckpoint(known func(chainhash.Hash) bool) (Checkpoint, bool) {
	for i := len(t.points) - 1; i >= 0; i-- {
		if known(t.points[i].Hash) {
			return t.points[i], true
		}
	}
	return Checkpoint{}, false
}

// EstimateRemainingTransactions estimates how many transactions a node at
// currentHeight still has to process.  Below the last checkpoint the
// estimate is zero since those blocks are cheap to verify.
func (t *CheckpointTable) EstimateRemainingTransactions(currentHeight int32, now time.Time) uint64 {
	if currentHeight <= t.LastCheckpointHeight() || !now.After(t.lastTime) {
		return 0
	}
	days := now.Sub(t.lastTime).Hours() / 24
	return uint64(days * float64(t.txsPerDay))
}

// GuessVerificationProgress returns a value in [0, 1] estimating how much of
// the chain a node has verified when its tip has chainTx transactions in
// total and was mined at blockTime.  Transactions past the last checkpoint
// are weighted by the signature check factor when sigchecks is set.
func (t *CheckpointTable) GuessVerificationProgress(chainTx uint64, blockTime, now time.Time, sigchecks bool) float64 {
	factor := 1.0
	if sigchecks {
		factor = sigcheckVerificationFactor
	}
	perDay := float64(t.txsPerDay)

	var workBefore, workAfter float64
	if chainTx <= t.txsBefore {
		cheapBefore := float64(chainTx)
		cheapAfter := float64(t.txsBefore - chainTx)
		expensiveAfter := daysSince(t.lastTime, now) * perDay
		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*factor
	} else {
		cheapBefore := float64(t.txsBefore)
		expensiveBefore := float64(chainTx - t.txsBefore)
		expensiveAfter := daysSince(blockTime, now) * perDay
		workBefore = cheapBefore + expensiveBefore*factor
		workAfter = expensiveAfter * factor
	}

	if workBefore+workAfter == 0 {
		return 1
	}
	return workBefore / (workBefore + workAfter)
}

// daysSince returns the non-negative number of days from then to now.
func daysSince(then, now time.Time) float64 {
	if !now.After(then) {
		return 0
	}
	return now.Sub(then).Hours() / 24
}
