// Package checkpoint holds the compiled-in trusted checkpoints and the checks built on them.
package checkpoint

import (
	"errors"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Checkpoint is a trusted (height, hash) pair on the main chain.
type Checkpoint struct {
	Height int32
	Hash   chainhash.Hash
}

// Set is an immutable, height-ordered collection of checkpoints for one network together with
// statistics about the chain at the last checkpoint.
type Set struct {
	entries       []Checkpoint
	lastTimestamp int64
	lastTxCount   uint64
	txPerDay      float64
}

// NewSet validates entries and builds a Set. Entries must start at the genesis height and be
// strictly increasing. lastTimestamp and lastTxCount describe the block at the highest entry.
func NewSet(entries []Checkpoint, lastTimestamp int64, lastTxCount uint64, txPerDay float64) (*Set, error) {
	if len(entries) == 0 {
		return nil, errors.New("checkpoint set is empty")
	}
	if entries[0].Height != 0 {
		return nil, fmt.Errorf("first checkpoint must be genesis, got height %d", entries[0].Height)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Height <= entries[i-1].Height {
			return nil, fmt.Errorf("checkpoint heights not increasing: %d after %d", entries[i].Height, entries[i-1].Height)
		}
	}
	if txPerDay < 0 {
		return nil, fmt.Errorf("negative tx rate %v", txPerDay)
	}

	copied := make([]Checkpoint, len(entries))
	copy(copied, entries)

	return &Set{
		entries:       copied,
		lastTimestamp: lastTimestamp,
		lastTxCount:   lastTxCount,
		txPerDay:      txPerDay,
	}, nil
}

// MustNewSet is NewSet for package-level literals; it panics on invalid input.
func MustNewSet(entries []Checkpoint, lastTimestamp int64, lastTxCount uint64, txPerDay float64) *Set {
	s, err := NewSet(entries, lastTimestamp, lastTxCount, txPerDay)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the checkpoint hash registered at height.
func (s *Set) Lookup(height int32) (chainhash.Hash, bool) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].Height >= height
	})
	if i < len(s.entries) && s.entries[i].Height == height {
		return s.entries[i].Hash, true
	}
	return chainhash.Hash{}, false
}

// Len returns the number of checkpoints including genesis.
func (s *Set) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the checkpoints in ascending height order.
func (s *Set) Entries() []Checkpoint {
	out := make([]Checkpoint, len(s.entries))
	copy(out, s.entries)
	return out
}

// Last returns the highest checkpoint.
func (s *Set) Last() Checkpoint {
	return s.entries[len(s.entries)-1]
}

// LastHeight returns the height of the highest checkpoint.
func (s *Set) LastHeight() int32 {
	return s.Last().Height
}

// LastTimestamp is the unix time of the block at the highest checkpoint.
func (s *Set) LastTimestamp() int64 {
	return s.lastTimestamp
}

// LastTxCount is the cumulative transaction count up to and including the highest checkpoint.
func (s *Set) LastTxCount() uint64 {
	return s.lastTxCount
}

// TxPerDay is the expected transaction throughput after the highest checkpoint.
func (s *Set) TxPerDay() float64 {
	return s.txPerDay
}
