package service

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"go.uber.org/zap"
)

// CancelPool closes an ongoing off-chain pool on behalf of its creator.
// On-chain pools hold contributions in the settlement contract and cannot be cancelled here.
func (e *Engine) CancelPool(ctx context.Context, poolID, requester string) (p model.Pool, err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe("cancel_pool", err, started)
	}()

	if !model.ValidAddress(requester) {
		return model.Pool{}, ErrInvalidAddress
	}
	requester = model.NormalizeAddress(requester)

	unlock, err := e.lockPool(ctx, poolID)
	if err != nil {
		return model.Pool{}, err
	}
	defer unlock()

	p, err = e.loadPool(ctx, poolID)
	if err != nil {
		return model.Pool{}, err
	}
	if !p.IsCreator(requester) {
		return model.Pool{}, ErrNotAuthorized
	}
	switch {
	case p.Status == model.StatusCancelled:
		return model.Pool{}, ErrPoolCancelled
	case p.Status == model.StatusFinalized:
		return model.Pool{}, ErrAlreadyFinalized
	case p.Status != model.StatusOngoing, p.OnChain:
		return model.Pool{}, ErrNotCancellable
	}

	p.Status = model.StatusCancelled
	if err = e.store.Upsert(ctx, p); err != nil {
		return model.Pool{}, fmt.Errorf("persist pool: %w", err)
	}

	e.logger.Info("pool cancelled", zap.String("pool_id", p.ID), zap.Int("contributors", len(p.Contributors)))
	e.transitioned(&p, requester, "")
	return p, nil
}
