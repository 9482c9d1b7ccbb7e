package privacy

import (
	"context"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/shopspring/decimal"
)

// Registry maps each enabled privacy mode to its strategy.
type Registry map[model.PrivacyMode]Strategy

// NewRegistry indexes strategies by their mode. Later entries replace earlier ones.
func NewRegistry(strategies ...Strategy) Registry {
	r := make(Registry, len(strategies))
	for _, s := range strategies {
		r[s.Mode()] = s
	}
	return r
}

// Get returns the strategy for mode.
func (r Registry) Get(mode model.PrivacyMode) (Strategy, bool) {
	s, ok := r[mode]
	return s, ok
}

// Observed wraps every strategy with metrics.
func (r Registry) Observed(metrics Metrics) Registry {
	out := make(Registry, len(r))
	for mode, s := range r {
		out[mode] = &ObservedStrategy{strategy: s, metrics: metrics}
	}
	return out
}

// ObservedStrategy records the outcome and duration of every strategy call.
type ObservedStrategy struct {
	strategy Strategy
	metrics  Metrics
}

func (o *ObservedStrategy) Mode() model.PrivacyMode {
	return o.strategy.Mode()
}

func (o *ObservedStrategy) Protect(ctx context.Context, poolID, contributor string, amount decimal.Decimal) (p Protection, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("protect", o.strategy.Mode(), err, started)
	}()
	return o.strategy.Protect(ctx, poolID, contributor, amount)
}

func (o *ObservedStrategy) Aggregate(ctx context.Context, poolID string, handles []string) (res Result, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("aggregate", o.strategy.Mode(), err, started)
	}()
	return o.strategy.Aggregate(ctx, poolID, handles)
}

func (o *ObservedStrategy) Resolve(ctx context.Context, poolID, ticket string) (res Result, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("resolve", o.strategy.Mode(), err, started)
	}()
	return o.strategy.Resolve(ctx, poolID, ticket)
}
