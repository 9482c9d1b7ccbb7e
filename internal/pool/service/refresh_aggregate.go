package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/privacy"
	"go.uber.org/zap"
)

// notDecrypted is what the settlement backend reports before the total is decrypted.
const notDecrypted = "0"

// RefreshAggregate re-polls the total of a finalized pool whose aggregate is pending.
// A resolved pool is returned as is. Past the aggregate deadline the pool is marked
// expired and ErrAggregationExpired is returned.
func (e *Engine) RefreshAggregate(ctx context.Context, poolID string) (p model.Pool, err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe("refresh_aggregate", err, started)
	}()

	unlock, err := e.lockPool(ctx, poolID)
	if err != nil {
		return model.Pool{}, err
	}
	defer unlock()

	p, err = e.loadPool(ctx, poolID)
	if err != nil {
		return model.Pool{}, err
	}
	if p.Status != model.StatusFinalized {
		return model.Pool{}, ErrNotFinalized
	}
	switch {
	case p.TotalAmount != nil:
		return p, nil
	case p.AggregateState == model.AggregateExpired:
		return model.Pool{}, ErrAggregationExpired
	}

	logger := e.logger.With(zap.String("pool_id", p.ID))

	if p.FinalizedAt != nil && e.now().After(p.FinalizedAt.Add(e.cfg.AggregateDeadline)) {
		p.AggregateState = model.AggregateExpired
		p.AggregateTicket = ""
		if err = e.store.Upsert(ctx, p); err != nil {
			return model.Pool{}, fmt.Errorf("persist pool: %w", err)
		}
		logger.Warn("aggregate expired", zap.Int("polls", p.AggregatePolls))
		e.record(&p, model.EventAggregateExpired, "", "")
		return model.Pool{}, ErrAggregationExpired
	}

	strategy, err := e.strategy(p.PrivacyMode)
	if err != nil {
		return model.Pool{}, err
	}

	p.AggregatePolls++
	res, pollErr := e.poll(ctx, strategy, &p)
	if pollErr == nil {
		applyResult(&p, res)
	}
	if err = e.store.Upsert(ctx, p); err != nil {
		return model.Pool{}, fmt.Errorf("persist pool: %w", err)
	}
	if pollErr != nil {
		logger.Warn("aggregate refresh failed", zap.Int("polls", p.AggregatePolls), zap.Error(pollErr))
		return model.Pool{}, pollErr
	}

	if p.AggregateState == model.AggregateResolved {
		logger.Info("aggregate resolved", zap.Int("polls", p.AggregatePolls))
		e.record(&p, model.EventAggregateResolved, "", "")
	}
	return p, nil
}

// poll asks the chain first for on-chain pools, then the strategy: by ticket when a
// decryption is outstanding, otherwise by re-running the aggregation.
func (e *Engine) poll(ctx context.Context, s privacy.Strategy, p *model.Pool) (privacy.Result, error) {
	if p.OnChain && e.gateway != nil {
		bctx, cancel := context.WithTimeout(ctx, e.cfg.BackendTimeout)
		view, err := e.gateway.ReadOnChain(bctx, p.ID)
		cancel()
		switch {
		case err != nil:
			e.logger.Debug("chain read failed, falling back to strategy", zap.String("pool_id", p.ID), zap.Error(err))
		case view.Finalized && view.Total != "" && view.Total != notDecrypted:
			return privacy.Result{Total: view.Total, Skipped: p.AggregateSkipped}, nil
		}
	}

	if p.AggregateTicket == "" {
		return e.aggregate(ctx, s, p)
	}

	bctx, cancel := context.WithTimeout(ctx, e.cfg.BackendTimeout)
	defer cancel()
	res, err := s.Resolve(bctx, p.ID, p.AggregateTicket)
	if err != nil {
		if errors.Is(err, ErrAggregationFailed) && !errors.Is(err, ErrBackendUnavailable) {
			// The ticket is unusable; the next refresh starts a new aggregation.
			p.AggregateTicket = ""
		}
		return privacy.Result{}, privacyError("resolve aggregate", err)
	}
	res.Skipped = p.AggregateSkipped
	return res, nil
}
