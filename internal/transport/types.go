package transport

import (
	"context"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// PoolService is the lifecycle engine as seen by the HTTP layer.
	PoolService interface {
		CreatePool(ctx context.Context, in service.CreatePoolInput) (model.Pool, error)
		JoinPool(ctx context.Context, in service.JoinPoolInput) (model.Pool, error)
		FinalizePool(ctx context.Context, poolID, requester string) (model.Pool, error)
		RefreshAggregate(ctx context.Context, poolID string) (model.Pool, error)
		CancelPool(ctx context.Context, poolID, requester string) (model.Pool, error)
		GetPool(ctx context.Context, poolID string) (model.Pool, error)
		ListPools(ctx context.Context) ([]model.Pool, error)
		ContributorPools(ctx context.Context, addr string) ([]model.Pool, error)
		PoolEvents(ctx context.Context, poolID string, limit uint32) ([]model.Event, error)
	}
)
