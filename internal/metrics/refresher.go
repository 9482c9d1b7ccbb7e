package metrics

import (
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	refresherFetchPendingTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "fetch_pending_total",
		Help:      "Count of attempts to list pools with pending aggregates.",
	}, []string{"status"})

	refresherFetchPendingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "fetch_pending_duration_seconds",
		Help:      "Duration of listing pending aggregates.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	refresherPendingPools = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "pending_pools",
		Help:      "Number of finalized pools whose total was pending at the last pass.",
	})

	refresherRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "refresh_total",
		Help:      "Count of aggregate refreshes by resulting state.",
	}, []string{"status", "aggregate_state"})

	refresherRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "refresher",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of a single aggregate refresh.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Refresher tracks metrics for the aggregate refresher loop.
type Refresher struct{}

// NewRefresher constructs a Refresher metrics collector.
func NewRefresher() *Refresher {
	return &Refresher{}
}

// ObserveFetchPending records a listing attempt and the number of pending pools found.
func (Refresher) ObserveFetchPending(err error, pending int, started time.Time) {
	s := status(err)
	refresherFetchPendingTotal.WithLabelValues(s).Inc()
	refresherFetchPendingDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
	if err == nil {
		refresherPendingPools.Set(float64(pending))
	}
}

// ObserveRefresh records one refresh and the aggregate state it left behind.
func (Refresher) ObserveRefresh(err error, state model.AggregateState, started time.Time) {
	s := status(err)
	aggregateState := string(state)
	if aggregateState == "" {
		aggregateState = "none"
	}
	refresherRefreshTotal.WithLabelValues(s, aggregateState).Inc()
	refresherRefreshDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
}
