// Package bitcoin talks to a bitcoind-compatible node over JSON-RPC.
package bitcoin

import (
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/ratelimit"
)

// RPCClient wraps a node RPC connection with metrics and a request rate limit.
type RPCClient struct {
	client     NodeRPC
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewRPCClient constructs an instrumented RPC client issuing at most rps requests per second.
// A non-positive rps disables throttling.
func NewRPCClient(client NodeRPC, rpcMetrics RPCMetrics, rps int) *RPCClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps, ratelimit.WithoutSlack)
	}
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

// GetBlockCount returns the height of the best chain.
func (r *RPCClient) GetBlockCount() (count int64, err error) {
	started := r.take()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

// GetBlockHash returns the hash of the best-chain block at height.
func (r *RPCClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := r.take()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

// GetBlockHeaderVerbose returns the decoded header of a block.
func (r *RPCClient) GetBlockHeaderVerbose(blockHash *chainhash.Hash) (res *btcjson.GetBlockHeaderVerboseResult, err error) {
	started := r.take()
	defer func() {
		r.rpcMetrics.Observe("get_block_header", err, started)
	}()
	return r.client.GetBlockHeaderVerbose(blockHash)
}

// RawRequest issues a call the typed client has no method for.
func (r *RPCClient) RawRequest(method string, params []json.RawMessage) (res json.RawMessage, err error) {
	started := r.take()
	defer func() {
		r.rpcMetrics.Observe(method, err, started)
	}()
	return r.client.RawRequest(method, params)
}

func (r *RPCClient) take() time.Time {
	r.limiter.Take()
	return time.Now()
}

var _ NodeRPC = (*RPCClient)(nil)
