package metrics

import (
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	engineOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "operations_total",
		Help:      "Count of pool lifecycle operations.",
	}, []string{"operation", "status"})
	engineOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "operation_duration_seconds",
		Help:      "Duration of pool lifecycle operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
	engineTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "transitions_total",
		Help:      "Count of pool status transitions by privacy mode.",
	}, []string{"privacy_mode", "status"})
)

// Engine tracks metrics for the pool lifecycle engine.
type Engine struct{}

// NewEngine constructs an Engine metrics collector.
func NewEngine() *Engine {
	return &Engine{}
}

// Observe records the outcome and duration of one engine operation.
func (Engine) Observe(operation string, err error, started time.Time) {
	s := status(err)
	engineOperationsTotal.WithLabelValues(operation, s).Inc()
	engineOperationDuration.WithLabelValues(operation, s).Observe(time.Since(started).Seconds())
}

// ObserveTransition counts a pool entering status.
func (Engine) ObserveTransition(mode model.PrivacyMode, st model.Status) {
	engineTransitionsTotal.WithLabelValues(orUnknown(string(mode)), string(st)).Inc()
}
