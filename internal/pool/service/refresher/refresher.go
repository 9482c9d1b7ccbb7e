// Package refresher re-polls pending pool totals in the background.
package refresher

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/clock"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/service"
	"github.com/goodnatureofminers/giftpool-backend/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	defaultWorkerCount  = 4
	defaultSleep        = 5 * time.Second
	defaultIdleSleep    = 30 * time.Second
	defaultRefreshLimit = time.Minute
)

// Config tunes the refresh loop.
type Config struct {
	WorkerCount int
	// Sleep separates passes that found pending pools; IdleSleep follows empty passes.
	Sleep     time.Duration
	IdleSleep time.Duration
	// RefreshTimeout bounds one pool refresh.
	RefreshTimeout time.Duration
}

// Service refreshes every finalized pool whose total is still pending.
type Service struct {
	engine  Engine
	metrics Metrics
	cfg     Config
	sleep   func(context.Context, time.Duration) error
	logger  *zap.Logger
}

// NewService builds a refresher Service.
func NewService(engine Engine, metrics Metrics, cfg Config, logger *zap.Logger) (*Service, error) {
	if engine == nil {
		return nil, errors.New("pool engine is required")
	}
	if metrics == nil {
		return nil, errors.New("refresher metrics is required")
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = defaultWorkerCount
	}
	if cfg.Sleep <= 0 {
		cfg.Sleep = defaultSleep
	}
	if cfg.IdleSleep <= 0 {
		cfg.IdleSleep = defaultIdleSleep
	}
	if cfg.RefreshTimeout <= 0 {
		cfg.RefreshTimeout = defaultRefreshLimit
	}
	return &Service{
		engine:  engine,
		metrics: metrics,
		cfg:     cfg,
		sleep:   clock.SleepWithContext,
		logger:  logger.Named("refresher"),
	}, nil
}

// Run refreshes pending aggregates until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			s.logger.Warn("refresh pass failed, backing off", zap.Error(err), zap.Duration("sleep", s.cfg.Sleep))
			if sleepErr := s.sleep(ctx, s.cfg.Sleep); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	started := time.Now()
	pools, err := s.engine.PendingAggregates(ctx)
	s.metrics.ObserveFetchPending(err, len(pools), started)
	if err != nil {
		return err
	}

	if len(pools) == 0 {
		s.logger.Debug("no pending aggregates; sleeping", zap.Duration("sleep", s.cfg.IdleSleep))
		return s.sleep(ctx, s.cfg.IdleSleep)
	}

	s.logger.Info("refreshing pending aggregates", zap.Int("pools", len(pools)))
	errs := workerpool.Each(ctx, s.cfg.WorkerCount, pools, s.refresh)
	if err := ctx.Err(); err != nil {
		return err
	}
	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed > 0 {
		s.logger.Info("pass finished with pending pools left", zap.Int("failed", failed), zap.Int("pools", len(pools)))
	}

	return s.sleep(ctx, s.cfg.Sleep)
}

func (s *Service) refresh(ctx context.Context, p model.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RefreshTimeout)
	defer cancel()

	started := time.Now()
	refreshed, err := s.engine.RefreshAggregate(ctx, p.ID)
	state := refreshed.AggregateState
	if errors.Is(err, service.ErrAggregationExpired) {
		state = model.AggregateExpired
	}
	s.metrics.ObserveRefresh(err, state, started)

	logger := s.logger.With(zap.String("pool_id", p.ID))
	switch {
	case errors.Is(err, service.ErrAggregationExpired):
		logger.Warn("aggregate expired", zap.Int("polls", p.AggregatePolls))
	case err != nil:
		logger.Debug("refresh failed", zap.Error(err))
	case state == model.AggregateResolved:
		logger.Info("aggregate resolved")
	}
	return err
}
