package checkpoint

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"
)

const (
	// SigcheckVerificationFactor is how many times slower transactions after the last checkpoint
	// are expected to verify. It cannot be accurate for every system: reindexing from a fast disk
	// on a slow CPU can reach 20, a slow network with a fast multicore CPU stays close to 1.
	SigcheckVerificationFactor = 5.0

	secondsPerDay = 86400.0
)

// Check results reported to Metrics.
const (
	ResultMatch         = "match"
	ResultMismatch      = "mismatch"
	ResultUnconstrained = "unconstrained"
	ResultDisabled      = "disabled"
)

// ErrCheckpointMismatch marks a block that conflicts with a trusted checkpoint. The chain
// containing it must be rejected as a whole.
var ErrCheckpointMismatch = errors.New("block conflicts with checkpoint")

// Checker validates blocks against a checkpoint Set and estimates sync progress.
type Checker struct {
	set     *Set
	toggle  *Toggle
	logger  *zap.Logger
	metrics Metrics
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger used for mismatch reports.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the collector notified about every check.
func WithMetrics(metrics Metrics) Option {
	return func(c *Checker) {
		c.metrics = metrics
	}
}

// NewChecker builds a Checker over set. A nil toggle means checkpoints are always enabled.
func NewChecker(set *Set, toggle *Toggle, opts ...Option) *Checker {
	c := &Checker{
		set:    set,
		toggle: toggle,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set returns the active checkpoint set.
func (c *Checker) Set() *Set {
	return c.set
}

// Enabled reports whether checkpoints are enforced.
func (c *Checker) Enabled() bool {
	return c.toggle.Enabled()
}

// CheckBlock reports whether hash is acceptable at height. Heights without a checkpoint are
// always acceptable; it only vetoes, it never confirms a block as valid.
func (c *Checker) CheckBlock(height int32, hash chainhash.Hash) bool {
	if !c.Enabled() {
		c.observe(ResultDisabled)
		return true
	}

	want, ok := c.set.Lookup(height)
	if !ok {
		c.observe(ResultUnconstrained)
		return true
	}
	if hash != want {
		c.observe(ResultMismatch)
		c.logger.Warn("block conflicts with checkpoint",
			zap.Int32("height", height),
			zap.Stringer("expected", want),
			zap.Stringer("got", hash),
		)
		return false
	}
	c.observe(ResultMatch)
	return true
}

// Verify is CheckBlock returning an error wrapping ErrCheckpointMismatch on conflict.
func (c *Checker) Verify(height int32, hash chainhash.Hash) error {
	if c.CheckBlock(height, hash) {
		return nil
	}
	want, _ := c.set.Lookup(height)
	return fmt.Errorf("block %s at height %d, checkpoint %s: %w", hash, height, want, ErrCheckpointMismatch)
}

// EstimateProgress guesses how far verification has progressed once node is the tip, as a
// fraction in [0,1]. Work is one unit per transaction up to the last checkpoint and
// SigcheckVerificationFactor units per transaction after it; transactions not yet seen are
// extrapolated from the elapsed time and the expected daily rate.
func (c *Checker) EstimateProgress(node ChainNode, now time.Time) float64 {
	if node == nil {
		return 0.0
	}

	var workBefore, workAfter float64

	nowUnix := now.Unix()
	chainTx := node.ChainTxCount()
	lastTx := c.set.LastTxCount()

	if chainTx <= lastTx {
		cheapBefore := float64(chainTx)
		cheapAfter := float64(lastTx - chainTx)
		expensiveAfter := c.extrapolate(nowUnix - c.set.LastTimestamp())
		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*SigcheckVerificationFactor
	} else {
		cheapBefore := float64(lastTx)
		expensiveBefore := float64(chainTx - lastTx)
		expensiveAfter := c.extrapolate(nowUnix - node.Timestamp().Unix())
		workBefore = cheapBefore + expensiveBefore*SigcheckVerificationFactor
		workAfter = expensiveAfter * SigcheckVerificationFactor
	}

	total := workBefore + workAfter
	if total <= 0 {
		return 0.0
	}
	return workBefore / total
}

// extrapolate estimates how many transactions were produced in elapsed seconds. Negative elapsed
// time (clock skew) counts as none.
func (c *Checker) extrapolate(elapsed int64) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / secondsPerDay * c.set.TxPerDay()
}

// TotalBlocksEstimate returns the height of the last checkpoint, a lower bound on the chain
// length, or 0 when checkpoints are disabled.
func (c *Checker) TotalBlocksEstimate() int32 {
	if !c.Enabled() {
		return 0
	}
	return c.set.LastHeight()
}

// LastCheckpoint returns the index node of the highest checkpoint already present in index, or
// nil when checkpoints are disabled or none is known yet.
func (c *Checker) LastCheckpoint(index BlockIndex) ChainNode {
	_, node, ok := c.lastCheckpoint(index)
	if !ok {
		return nil
	}
	return node
}

// LastCheckpointHeight is LastCheckpoint reporting the checkpoint height instead of the node.
func (c *Checker) LastCheckpointHeight(index BlockIndex) (int32, bool) {
	cp, _, ok := c.lastCheckpoint(index)
	return cp.Height, ok
}

// lastCheckpoint walks the set from the top; the highest match is the strongest anchor.
func (c *Checker) lastCheckpoint(index BlockIndex) (Checkpoint, ChainNode, bool) {
	if !c.Enabled() || index == nil {
		return Checkpoint{}, nil, false
	}

	entries := c.set.entries
	for i := len(entries) - 1; i >= 0; i-- {
		if node, ok := index.LookupNode(entries[i].Hash); ok {
			return entries[i], node, true
		}
	}
	return Checkpoint{}, nil, false
}

func (c *Checker) observe(result string) {
	if c.metrics != nil {
		c.metrics.ObserveCheck(result)
	}
}
