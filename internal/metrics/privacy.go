package metrics

import (
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	privacyOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "privacy",
		Name:      "operations_total",
		Help:      "Count of privacy strategy calls.",
	}, []string{"operation", "privacy_mode", "status"})
	privacyOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "privacy",
		Name:      "operation_duration_seconds",
		Help:      "Duration of privacy strategy calls.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"operation", "privacy_mode", "status"})
)

// Privacy tracks metrics for protect, aggregate and resolve calls.
type Privacy struct{}

// NewPrivacy constructs a Privacy metrics collector.
func NewPrivacy() *Privacy {
	return &Privacy{}
}

func (Privacy) Observe(operation string, mode model.PrivacyMode, err error, started time.Time) {
	s := status(err)
	privacyOperationsTotal.WithLabelValues(operation, orUnknown(string(mode)), s).Inc()
	privacyOperationDuration.WithLabelValues(operation, orUnknown(string(mode)), s).Observe(time.Since(started).Seconds())
}
