package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
)

const poolEventsQuery = `
SELECT
	pool_id,
	kind,
	status,
	privacy_mode,
	actor,
	contributor_count,
	total,
	tx_hash,
	occurred_at
FROM pool_events
WHERE pool_id = ?
ORDER BY occurred_at, inserted_at
LIMIT ?`

// PoolEvents returns up to limit journal entries of a pool, oldest first.
func (j *Journal) PoolEvents(ctx context.Context, poolID string, limit uint32) (events []model.Event, err error) {
	start := time.Now()
	defer func() {
		j.metrics.Observe("pool_events", err, start)
	}()

	rows, err := j.conn.Query(ctx, poolEventsQuery, poolID, limit)
	if err != nil {
		return nil, fmt.Errorf("query pool events: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	events = make([]model.Event, 0)
	for rows.Next() {
		var e model.Event
		var kind, status, privacyMode string
		if err = rows.Scan(
			&e.PoolID,
			&kind,
			&status,
			&privacyMode,
			&e.Actor,
			&e.ContributorCount,
			&e.Total,
			&e.TxHash,
			&e.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("scan pool event: %w", err)
		}
		e.Kind = model.EventKind(kind)
		e.Status = model.Status(status)
		e.PrivacyMode = model.PrivacyMode(privacyMode)
		e.OccurredAt = e.OccurredAt.UTC()
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pool events: %w", err)
	}
	return events, nil
}
