package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/koharjidan/bdsmcoin/internal/blockindex"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainSource interface {
		TipHeight(ctx context.Context) (int32, error)
		BlockHashAt(ctx context.Context, height int32) (chainhash.Hash, error)
		NodeAt(ctx context.Context, hash chainhash.Hash) (*blockindex.Node, error)
	}
	AuditorMetrics interface {
		ObserveAudit(err error, elapsed time.Duration)
		ObserveMismatch()
		SetProgress(tip int32, lastCheckpoint int32, progress float64)
	}
)
