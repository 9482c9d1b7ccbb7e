// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NowUTC returns the current wall time in UTC truncated to milliseconds, the
// precision pool timestamps are persisted with.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
