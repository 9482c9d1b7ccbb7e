package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
)

const insertEventsQuery = `
INSERT INTO pool_events (
	pool_id,
	kind,
	status,
	privacy_mode,
	actor,
	contributor_count,
	total,
	tx_hash,
	occurred_at
) VALUES`

// InsertEvents appends lifecycle events to the journal.
func (j *Journal) InsertEvents(ctx context.Context, events []model.Event) (err error) {
	start := time.Now()
	defer func() {
		j.metrics.Observe("insert_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := j.conn.PrepareBatch(ctx, insertEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, e := range events {
		if err = batch.Append(
			e.PoolID,
			string(e.Kind),
			string(e.Status),
			string(e.PrivacyMode),
			e.Actor,
			e.ContributorCount,
			e.Total,
			e.TxHash,
			e.OccurredAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}
