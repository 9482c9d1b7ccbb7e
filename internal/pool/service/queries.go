package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"go.uber.org/zap"
)

const defaultEventsLimit = 100

// GetPool returns a single pool. With RefreshOnRead a pending aggregate is
// re-polled first; a failed refresh still returns the stored pool.
func (e *Engine) GetPool(ctx context.Context, poolID string) (p model.Pool, err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe("get_pool", err, started)
	}()

	p, err = e.loadPool(ctx, poolID)
	if err != nil {
		return model.Pool{}, err
	}
	if !e.cfg.RefreshOnRead || p.Status != model.StatusFinalized || p.AggregateState != model.AggregatePending {
		return p, nil
	}

	refreshed, rerr := e.RefreshAggregate(ctx, poolID)
	if rerr != nil {
		e.logger.Debug("refresh on read failed", zap.String("pool_id", poolID), zap.Error(rerr))
		if errors.Is(rerr, ErrAggregationExpired) {
			return e.loadPool(ctx, poolID)
		}
		return p, nil
	}
	return refreshed, nil
}

// ListPools returns every pool in creation order.
func (e *Engine) ListPools(ctx context.Context) (pools []model.Pool, err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe("list_pools", err, started)
	}()

	pools, err = e.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}
	return pools, nil
}

// ContributorPools returns the pools addr contributed to, in creation order.
func (e *Engine) ContributorPools(ctx context.Context, addr string) (pools []model.Pool, err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe("contributor_pools", err, started)
	}()

	if !model.ValidAddress(addr) {
		return nil, ErrInvalidAddress
	}
	all, err := e.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}
	pools = make([]model.Pool, 0)
	for _, p := range all {
		if p.HasContributor(addr) {
			pools = append(pools, p)
		}
	}
	return pools, nil
}

// PendingAggregates returns finalized pools whose total is still pending.
func (e *Engine) PendingAggregates(ctx context.Context) ([]model.Pool, error) {
	all, err := e.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}
	var pending []model.Pool
	for _, p := range all {
		if p.Status == model.StatusFinalized && p.AggregateState == model.AggregatePending {
			pending = append(pending, p)
		}
	}
	return pending, nil
}

// PoolEvents returns the journal of a pool, oldest first. A zero limit selects the default.
func (e *Engine) PoolEvents(ctx context.Context, poolID string, limit uint32) (events []model.Event, err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe("pool_events", err, started)
	}()

	if e.journal == nil {
		return nil, ErrJournalDisabled
	}
	if _, err = e.loadPool(ctx, poolID); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = defaultEventsLimit
	}
	events, err = e.journal.PoolEvents(ctx, poolID, limit)
	if err != nil {
		return nil, fmt.Errorf("read pool events: %w", err)
	}
	return events, nil
}
