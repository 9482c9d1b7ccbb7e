package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	journalDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "dropped_events_total",
		Help:      "Count of lifecycle events dropped before reaching the journal.",
	}, []string{"reason"})
	journalBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "batches_total",
		Help:      "Count of event batches written to the journal.",
	}, []string{"status"})
	journalBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "batch_size",
		Help:      "Number of events per journal batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
)

// Journal tracks the event journal pipeline.
type Journal struct{}

// NewJournal constructs a Journal metrics collector.
func NewJournal() *Journal {
	return &Journal{}
}

func (Journal) ObserveDropped(reason string) {
	journalDroppedTotal.WithLabelValues(reason).Inc()
}

func (Journal) ObserveBatch(size int, err error) {
	journalBatchesTotal.WithLabelValues(status(err)).Inc()
	journalBatchSize.Observe(float64(size))
}
