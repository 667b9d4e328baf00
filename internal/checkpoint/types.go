package checkpoint

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainNode is a block-index entry owned by the caller.
	ChainNode interface {
		ChainTxCount() uint64
		Timestamp() time.Time
	}
	// BlockIndex resolves block hashes to chain nodes. Callers hold whatever locks are needed
	// for a consistent view during a call.
	BlockIndex interface {
		LookupNode(hash chainhash.Hash) (ChainNode, bool)
	}
	Metrics interface {
		ObserveCheck(result string)
	}
)
