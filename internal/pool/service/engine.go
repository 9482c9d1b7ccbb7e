// Package service implements the gift pool lifecycle.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/clock"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/privacy"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultBackendTimeout    = 30 * time.Second
	defaultAggregateDeadline = 24 * time.Hour
)

// Config tunes the engine.
type Config struct {
	// BackendTimeout bounds every call into a privacy strategy or the chain gateway.
	BackendTimeout time.Duration
	// AggregateDeadline is how long after finalization a pending total may still be resolved.
	AggregateDeadline time.Duration
	// RefreshOnRead re-polls pending totals when a single pool is read.
	RefreshOnRead bool
}

// Engine drives pools through their lifecycle. Mutations of one pool are serialized;
// different pools never contend.
type Engine struct {
	store      Store
	strategies Strategies
	gateway    Gateway
	journal    Journal
	metrics    Metrics
	cfg        Config
	locks      *keyedMutex
	now        func() time.Time
	logger     *zap.Logger
}

// NewEngine builds an engine. A nil gateway keeps every new pool off-chain;
// a nil journal disables event recording.
func NewEngine(
	store Store,
	strategies Strategies,
	gateway Gateway,
	journal Journal,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) (*Engine, error) {
	if store == nil {
		return nil, errors.New("pool store is required")
	}
	if strategies == nil {
		return nil, errors.New("privacy strategies are required")
	}
	if metrics == nil {
		return nil, errors.New("engine metrics is required")
	}
	if cfg.BackendTimeout <= 0 {
		cfg.BackendTimeout = defaultBackendTimeout
	}
	if cfg.AggregateDeadline <= 0 {
		cfg.AggregateDeadline = defaultAggregateDeadline
	}
	return &Engine{
		store:      store,
		strategies: strategies,
		gateway:    gateway,
		journal:    journal,
		metrics:    metrics,
		cfg:        cfg,
		locks:      newKeyedMutex(),
		now:        clock.NowUTC,
		logger:     logger.Named("engine").With(zap.Bool("on_chain", gateway != nil)),
	}, nil
}

func (e *Engine) strategy(mode model.PrivacyMode) (privacy.Strategy, error) {
	s, ok := e.strategies.Get(mode)
	if !ok {
		return nil, ErrUnsupportedPrivacyMode
	}
	return s, nil
}

func (e *Engine) lockPool(ctx context.Context, id string) (func(), error) {
	unlock, err := e.locks.Lock(ctx, id)
	if err != nil {
		return nil, privacyError("wait for pool lock", err)
	}
	return unlock, nil
}

func (e *Engine) loadPool(ctx context.Context, id string) (model.Pool, error) {
	p, found, err := e.store.Get(ctx, id)
	if err != nil {
		return model.Pool{}, err
	}
	if !found {
		return model.Pool{}, ErrPoolNotFound
	}
	return p, nil
}

func (e *Engine) protect(ctx context.Context, s privacy.Strategy, poolID, addr string, amount decimal.Decimal, suggestion string) (model.Contributor, error) {
	bctx, cancel := context.WithTimeout(ctx, e.cfg.BackendTimeout)
	defer cancel()

	protection, err := s.Protect(bctx, poolID, addr, amount)
	if err != nil {
		return model.Contributor{}, privacyError("protect contribution", err)
	}
	return model.Contributor{
		Address:          addr,
		Amount:           protection.Amount,
		CiphertextHandle: protection.Handle,
		JoinedAt:         e.now(),
		GiftSuggestion:   suggestion,
	}, nil
}

func (e *Engine) aggregate(ctx context.Context, s privacy.Strategy, p *model.Pool) (privacy.Result, error) {
	bctx, cancel := context.WithTimeout(ctx, e.cfg.BackendTimeout)
	defer cancel()

	res, err := s.Aggregate(bctx, p.ID, p.Handles())
	if err != nil {
		return privacy.Result{}, privacyError("aggregate contributions", err)
	}
	return res, nil
}

// finalize moves p to finalized and records the aggregation outcome.
func (e *Engine) finalize(p *model.Pool, res privacy.Result) {
	at := e.now()
	p.Status = model.StatusFinalized
	p.FinalizedAt = &at
	applyResult(p, res)
}

func applyResult(p *model.Pool, res privacy.Result) {
	p.AggregateSkipped = res.Skipped
	if res.Pending {
		p.AggregateState = model.AggregatePending
		if res.Ticket != "" {
			p.AggregateTicket = res.Ticket
		}
		return
	}
	p.SetTotal(res.Total)
}

func (e *Engine) record(p *model.Pool, kind model.EventKind, actor, txHash string) {
	if e.journal == nil {
		return
	}
	e.journal.Record(model.NewEvent(p, kind, actor, txHash, e.now()))
}

func (e *Engine) transitioned(p *model.Pool, actor, txHash string) {
	switch p.Status {
	case model.StatusReadyToFinalize:
		e.record(p, model.EventReadyToFinalize, actor, txHash)
	case model.StatusFinalized:
		e.record(p, model.EventFinalized, actor, txHash)
	case model.StatusCancelled:
		e.record(p, model.EventCancelled, actor, txHash)
	default:
		return
	}
	e.metrics.ObserveTransition(p.PrivacyMode, p.Status)
}
