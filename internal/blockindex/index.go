// Package blockindex keeps a hash-indexed table of chain nodes known to the auditor.
package blockindex

import (
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/koharjidan/bdsmcoin/internal/checkpoint"
)

// Node is one block's position and cumulative metadata in the chain.
type Node struct {
	Height  int32
	Hash    chainhash.Hash
	ChainTx uint64
	Time    time.Time
}

// ChainTxCount implements checkpoint.ChainNode. A nil node has no transactions.
func (n *Node) ChainTxCount() uint64 {
	if n == nil {
		return 0
	}
	return n.ChainTx
}

// Timestamp implements checkpoint.ChainNode. A nil node reports the zero time.
func (n *Node) Timestamp() time.Time {
	if n == nil {
		return time.Time{}
	}
	return n.Time
}

// Index maps block hashes to nodes. It is safe for concurrent use.
type Index struct {
	mu    sync.RWMutex
	nodes map[chainhash.Hash]*Node
}

// New returns an empty Index.
func New() *Index {
	return &Index{nodes: make(map[chainhash.Hash]*Node)}
}

// Add stores node, replacing any node with the same hash.
func (i *Index) Add(node *Node) {
	if node == nil {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.nodes[node.Hash] = node
}

// Node returns the node stored under hash.
func (i *Index) Node(hash chainhash.Hash) (*Node, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	n, ok := i.nodes[hash]
	return n, ok
}

// LookupNode implements checkpoint.BlockIndex.
func (i *Index) LookupNode(hash chainhash.Hash) (checkpoint.ChainNode, bool) {
	n, ok := i.Node(hash)
	if !ok {
		return nil, false
	}
	return n, true
}

// Len returns the number of stored nodes.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.nodes)
}

var (
	_ checkpoint.ChainNode  = (*Node)(nil)
	_ checkpoint.BlockIndex = (*Index)(nil)
)
