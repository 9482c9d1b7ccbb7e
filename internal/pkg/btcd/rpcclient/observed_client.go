package rpcclient

import (
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
)

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	rawClient interface {
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
		GetBlockCount() (int64, error)
	}
)

// ObservedClient records the duration and outcome of every node call.
type ObservedClient struct {
	client     rawClient
	rpcMetrics RPCMetrics
}

func NewObservedClient(client *rpcclient.Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

// RawRequest forwards a custom JSON-RPC method; the method name is the metric operation.
func (r *ObservedClient) RawRequest(method string, params []json.RawMessage) (res json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe(method, err, started)
	}()
	return r.client.RawRequest(method, params)
}
