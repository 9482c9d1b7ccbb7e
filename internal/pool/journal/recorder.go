// Package journal buffers pool lifecycle events and writes them in batches.
package journal

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/giftpool-backend/pkg/batcher"
	"go.uber.org/zap"
)

// Recorder accepts events without blocking the caller. Events that do not fit
// the buffer are dropped and counted; the pool ledger stays authoritative.
type Recorder struct {
	store   Store
	batcher *batcher.Batcher[model.Event]
	metrics Metrics
	logger  *zap.Logger
}

// NewRecorder builds a recorder flushing into store.
func NewRecorder(store Store, cfg batcher.Config, metrics Metrics, logger *zap.Logger) *Recorder {
	r := &Recorder{
		store:   store,
		metrics: metrics,
		logger:  logger.Named("journal"),
	}
	r.batcher = batcher.New(r.logger, r.flush, cfg)
	return r
}

// Start runs the flush loop until ctx is done or Stop is called.
func (r *Recorder) Start(ctx context.Context) {
	r.batcher.Start(ctx)
}

// Stop flushes buffered events and waits for the loop to exit.
func (r *Recorder) Stop() {
	r.batcher.Stop()
}

func (r *Recorder) Record(e model.Event) {
	err := r.batcher.TryAdd(e)
	if err == nil {
		return
	}
	reason := "full"
	if errors.Is(err, batcher.ErrStopped) {
		reason = "stopped"
	}
	r.metrics.ObserveDropped(reason)
	r.logger.Warn("event dropped",
		zap.String("pool_id", e.PoolID),
		zap.String("kind", string(e.Kind)),
		zap.String("reason", reason))
}

func (r *Recorder) PoolEvents(ctx context.Context, poolID string, limit uint32) ([]model.Event, error) {
	return r.store.PoolEvents(ctx, poolID, limit)
}

func (r *Recorder) flush(ctx context.Context, events []model.Event) error {
	// the batcher reuses its buffer after the callback returns
	batch := append([]model.Event(nil), events...)
	err := r.store.InsertEvents(ctx, batch)
	r.metrics.ObserveBatch(len(batch), err)
	return err
}
