package bitcoin

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/koharjidan/bdsmcoin/internal/blockindex"
)

// chainTxStats is the subset of the getchaintxstats reply we read.
type chainTxStats struct {
	Time    int64  `json:"time"`
	TxCount uint64 `json:"txcount"`
}

// NodeSource reads chain state from a node for the checkpoint auditor.
type NodeSource struct {
	rpc NodeRPC
}

// NewNodeSource creates a NodeSource.
func NewNodeSource(rpc NodeRPC) *NodeSource {
	return &NodeSource{rpc: rpc}
}

// TipHeight returns the height of the node's best chain.
func (s *NodeSource) TipHeight(ctx context.Context) (int32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	if count < 0 || count > math.MaxInt32 {
		return 0, fmt.Errorf("block count %d out of range", count)
	}
	return int32(count), nil
}

// BlockHashAt returns the best-chain block hash at height.
func (s *NodeSource) BlockHashAt(ctx context.Context, height int32) (chainhash.Hash, error) {
	if err := ctx.Err(); err != nil {
		return chainhash.Hash{}, err
	}
	hash, err := s.rpc.GetBlockHash(int64(height))
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return *hash, nil
}

// NodeAt builds the index node of a block: its header time and cumulative transaction count.
func (s *NodeSource) NodeAt(ctx context.Context, hash chainhash.Hash) (*blockindex.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	header, err := s.rpc.GetBlockHeaderVerbose(&hash)
	if err != nil {
		return nil, fmt.Errorf("get block header %s: %w", hash, err)
	}

	params := []json.RawMessage{
		json.RawMessage("0"),
		json.RawMessage(fmt.Sprintf("%q", hash.String())),
	}
	raw, err := s.rpc.RawRequest("getchaintxstats", params)
	if err != nil {
		return nil, fmt.Errorf("get chain tx stats %s: %w", hash, err)
	}
	var stats chainTxStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("decode chain tx stats %s: %w", hash, err)
	}

	return &blockindex.Node{
		Height:  header.Height,
		Hash:    hash,
		ChainTx: stats.TxCount,
		Time:    time.Unix(header.Time, 0).UTC(),
	}, nil
}
