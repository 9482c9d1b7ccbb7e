package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/chain"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/privacy"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the pool ledger. It does no locking of its own.
	Store interface {
		Get(ctx context.Context, id string) (model.Pool, bool, error)
		List(ctx context.Context) ([]model.Pool, error)
		Upsert(ctx context.Context, p model.Pool) error
		NextID(ctx context.Context) (string, error)
	}

	Strategies interface {
		Get(mode model.PrivacyMode) (privacy.Strategy, bool)
	}

	Strategy interface {
		Mode() model.PrivacyMode
		Protect(ctx context.Context, poolID, contributor string, amount decimal.Decimal) (privacy.Protection, error)
		Aggregate(ctx context.Context, poolID string, handles []string) (privacy.Result, error)
		Resolve(ctx context.Context, poolID, ticket string) (privacy.Result, error)
	}

	Gateway interface {
		CreateOnChain(ctx context.Context, req chain.CreateRequest) (chain.Receipt, error)
		ContributeOnChain(ctx context.Context, poolID, contributor, value string) (chain.Receipt, error)
		FinalizeOnChain(ctx context.Context, poolID, caller string) (chain.Receipt, error)
		ReadOnChain(ctx context.Context, poolID string) (chain.PoolView, error)
	}

	// Journal receives lifecycle events. Record must not block.
	Journal interface {
		Record(e model.Event)
		PoolEvents(ctx context.Context, poolID string, limit uint32) ([]model.Event, error)
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveTransition(mode model.PrivacyMode, status model.Status)
	}
)
