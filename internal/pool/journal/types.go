package journal

import (
	"context"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store persists and reads lifecycle events.
	Store interface {
		InsertEvents(ctx context.Context, events []model.Event) error
		PoolEvents(ctx context.Context, poolID string, limit uint32) ([]model.Event, error)
	}

	Metrics interface {
		ObserveDropped(reason string)
		ObserveBatch(size int, err error)
	}
)
