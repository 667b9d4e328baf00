package bitcoin

import (
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeRPC is the subset of *rpcclient.Client used to talk to the node.
	NodeRPC interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlockHeaderVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockHeaderVerboseResult, error)
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
