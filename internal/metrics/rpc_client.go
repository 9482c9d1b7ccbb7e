package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of calls to remote backends.",
	}, []string{"backend", "operation", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of calls to remote backends.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend", "operation", "status"})
)

// RPCClient tracks calls to one remote backend: the chain node, the settlement
// gateway or a confidential-compute service.
type RPCClient struct {
	backend string
}

// NewRPCClient constructs a metrics collector for calls to backend.
func NewRPCClient(backend string) *RPCClient {
	return &RPCClient{backend: orUnknown(backend)}
}

// Observe records a single call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	rpcRequestsTotal.WithLabelValues(m.backend, operation, s).Inc()
	rpcRequestDuration.WithLabelValues(m.backend, operation, s).Observe(time.Since(started).Seconds())
}
