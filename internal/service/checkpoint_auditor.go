// Package service contains the long-running processes built on the checkpoint subsystem.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/koharjidan/bdsmcoin/internal/blockindex"
	"github.com/koharjidan/bdsmcoin/internal/checkpoint"
	"github.com/koharjidan/bdsmcoin/internal/clock"
	"github.com/koharjidan/bdsmcoin/internal/model"
	"github.com/koharjidan/bdsmcoin/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	defaultAuditInterval = time.Minute
	defaultBackoff       = 5 * time.Second
	defaultWorkerCount   = 4
)

// ErrNodeNotFound is returned when the chain source has no node for a hash it reported.
var ErrNodeNotFound = errors.New("chain node not found")

// AuditorConfig tunes the audit loop. Zero values use defaults.
type AuditorConfig struct {
	Interval    time.Duration
	Backoff     time.Duration
	WorkerCount int
}

// Report is the outcome of one audit.
type Report struct {
	TipHeight int32
	// Verified is the number of checkpoints at or below the tip that matched.
	Verified int
	// LastCheckpointHeight is the validation floor, -1 when no checkpoint is known.
	LastCheckpointHeight int32
	// LastCheckpointTxCount is the cumulative transaction count at the last checkpoint.
	LastCheckpointTxCount uint64
	CheckpointedHeight    int32
	Progress              float64
}

// BelowCheckpoints reports whether the node has not yet reached the last checkpoint.
func (r Report) BelowCheckpoints() bool {
	return r.TipHeight < r.CheckpointedHeight
}

// CheckpointAuditor periodically compares a node's best chain with the checkpoint table and
// reports how far the node is through initial synchronization.
type CheckpointAuditor struct {
	logger      *zap.Logger
	network     model.Network
	source      ChainSource
	checker     *checkpoint.Checker
	metrics     AuditorMetrics
	clock       clock.Clock
	interval    time.Duration
	backoff     time.Duration
	workerCount int
}

// NewCheckpointAuditor builds a CheckpointAuditor with dependencies.
func NewCheckpointAuditor(
	source ChainSource,
	checker *checkpoint.Checker,
	metrics AuditorMetrics,
	network model.Network,
	logger *zap.Logger,
	cfg AuditorConfig,
) (*CheckpointAuditor, error) {
	if source == nil {
		return nil, errors.New("chain source is required")
	}
	if checker == nil {
		return nil, errors.New("checkpoint checker is required")
	}
	if metrics == nil {
		return nil, errors.New("auditor metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultAuditInterval
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = defaultWorkerCount
	}

	return &CheckpointAuditor{
		logger:      logger.With(zap.String("network", string(network))),
		network:     network,
		source:      source,
		checker:     checker,
		metrics:     metrics,
		clock:       clock.System{},
		interval:    cfg.Interval,
		backoff:     cfg.Backoff,
		workerCount: cfg.WorkerCount,
	}, nil
}

// Run audits until the context is canceled.
func (s *CheckpointAuditor) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if _, err := s.Audit(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, checkpoint.ErrCheckpointMismatch) {
				s.logger.Error("node follows a chain that conflicts with a checkpoint", zap.Error(err))
			} else {
				s.logger.Warn("audit failed, backing off", zap.Error(err), zap.Duration("sleep", s.backoff))
			}
			if sleepErr := s.clock.Sleep(ctx, s.backoff); sleepErr != nil {
				return sleepErr
			}
			continue
		}

		if err := s.clock.Sleep(ctx, s.interval); err != nil {
			return err
		}
	}
}

// Audit runs a single audit and records its outcome.
func (s *CheckpointAuditor) Audit(ctx context.Context) (Report, error) {
	started := s.clock.Now()
	report, err := s.audit(ctx)
	s.metrics.ObserveAudit(err, s.clock.Now().Sub(started))
	if err != nil {
		return Report{}, err
	}

	s.metrics.SetProgress(report.TipHeight, report.LastCheckpointHeight, report.Progress)
	s.logger.Info("checkpoint audit",
		zap.Int32("tip", report.TipHeight),
		zap.Int("verified", report.Verified),
		zap.Int32("last_checkpoint", report.LastCheckpointHeight),
		zap.Uint64("last_checkpoint_tx", report.LastCheckpointTxCount),
		zap.Int32("checkpointed_height", report.CheckpointedHeight),
		zap.Bool("below_checkpoints", report.BelowCheckpoints()),
		zap.Float64("progress", report.Progress),
	)
	return report, nil
}

func (s *CheckpointAuditor) audit(ctx context.Context) (Report, error) {
	tip, err := s.source.TipHeight(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("fetch tip height: %w", err)
	}

	index := blockindex.New()
	verified, err := s.verifyCheckpoints(ctx, tip, index)
	if err != nil {
		return Report{}, err
	}

	tipHash, err := s.source.BlockHashAt(ctx, tip)
	if err != nil {
		return Report{}, fmt.Errorf("fetch tip hash: %w", err)
	}
	tipNode, err := s.nodeAt(ctx, tipHash)
	if err != nil {
		return Report{}, fmt.Errorf("fetch tip node: %w", err)
	}
	index.Add(tipNode)

	report := Report{
		TipHeight:            tip,
		Verified:             verified,
		LastCheckpointHeight: -1,
		CheckpointedHeight:   s.checker.TotalBlocksEstimate(),
		Progress:             s.checker.EstimateProgress(tipNode, s.clock.Now()),
	}
	if height, ok := s.checker.LastCheckpointHeight(index); ok {
		report.LastCheckpointHeight = height
		report.LastCheckpointTxCount = s.checker.LastCheckpoint(index).ChainTxCount()
	}
	return report, nil
}

func (s *CheckpointAuditor) nodeAt(ctx context.Context, hash chainhash.Hash) (*blockindex.Node, error) {
	node, err := s.source.NodeAt(ctx, hash)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("%s: %w", hash, ErrNodeNotFound)
	}
	return node, nil
}

// verifyCheckpoints fetches the node's hash at every checkpoint height up to tip, checks each
// against the table and adds the matching ones to index. Only the highest match is loaded with
// its cumulative metadata; lower checkpoints carry height and hash only.
func (s *CheckpointAuditor) verifyCheckpoints(ctx context.Context, tip int32, index *blockindex.Index) (int, error) {
	if !s.checker.Enabled() {
		return 0, nil
	}

	var heights []int32
	for _, cp := range s.checker.Set().Entries() {
		if cp.Height > tip {
			break
		}
		// Zero hash marks a placeholder with nothing to compare against.
		if cp.Hash == (chainhash.Hash{}) {
			continue
		}
		heights = append(heights, cp.Height)
	}
	if len(heights) == 0 {
		return 0, nil
	}

	hashes, err := workerpool.Map(ctx, s.workerCount, heights, s.source.BlockHashAt)
	if err != nil {
		return 0, fmt.Errorf("fetch checkpoint hashes: %w", err)
	}

	for i, height := range heights {
		if err := s.checker.Verify(height, hashes[i]); err != nil {
			s.metrics.ObserveMismatch()
			return 0, err
		}
		index.Add(&blockindex.Node{Height: height, Hash: hashes[i]})
	}

	anchor, err := s.nodeAt(ctx, hashes[len(hashes)-1])
	if err != nil {
		return 0, fmt.Errorf("fetch checkpoint node: %w", err)
	}
	index.Add(anchor)
	return len(heights), nil
}
