package refresher

import (
	"context"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Engine interface {
		PendingAggregates(ctx context.Context) ([]model.Pool, error)
		RefreshAggregate(ctx context.Context, poolID string) (model.Pool, error)
	}

	Metrics interface {
		ObserveFetchPending(err error, pending int, started time.Time)
		ObserveRefresh(err error, state model.AggregateState, started time.Time)
	}
)
