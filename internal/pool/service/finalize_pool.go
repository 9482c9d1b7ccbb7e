package service

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/privacy"
	"go.uber.org/zap"
)

// FinalizePool is the creator's explicit finalization of a pool whose threshold was met.
// The returned pool carries FinalizationTxHash when the transfer was recorded on chain.
//
// Once the on-chain transfer has landed the pool is finalized even if the total
// cannot be revealed yet; it is then left with a pending aggregate for RefreshAggregate.
func (e *Engine) FinalizePool(ctx context.Context, poolID, requester string) (p model.Pool, err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe("finalize_pool", err, started)
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
	switch p.Status {
	case model.StatusFinalized:
		return model.Pool{}, ErrAlreadyFinalized
	case model.StatusCancelled:
		return model.Pool{}, ErrPoolCancelled
	}
	if !p.IsCreator(requester) {
		return model.Pool{}, ErrNotAuthorized
	}
	if p.Status == model.StatusOngoing {
		return model.Pool{}, ErrThresholdNotMet
	}
	strategy, err := e.strategy(p.PrivacyMode)
	if err != nil {
		return model.Pool{}, err
	}
	if p.OnChain && e.gateway == nil {
		return model.Pool{}, ErrChainUnavailable
	}

	logger := e.logger.With(zap.String("pool_id", p.ID))

	if p.OnChain {
		bctx, cancel := context.WithTimeout(ctx, e.cfg.BackendTimeout)
		receipt, err := e.gateway.FinalizeOnChain(bctx, p.ID, requester)
		cancel()
		if err != nil {
			return model.Pool{}, chainError("finalize on chain", err)
		}
		p.FinalizationTxHash = receipt.TxHash
	}

	res, aggErr := e.aggregate(ctx, strategy, &p)
	if aggErr != nil {
		if !p.OnChain {
			return model.Pool{}, aggErr
		}
		// Funds already moved: finalize anyway and leave the total for a later refresh.
		logger.Warn("aggregate unavailable after on-chain finalize", zap.Error(aggErr))
		res = privacy.Result{Pending: true}
	}
	e.finalize(&p, res)

	if err = e.store.Upsert(ctx, p); err != nil {
		logger.Error("pool finalized on chain but not persisted", zap.String("tx_hash", p.FinalizationTxHash), zap.Error(err))
		return model.Pool{}, fmt.Errorf("persist pool: %w", err)
	}

	logger.Info("pool finalized",
		zap.String("tx_hash", p.FinalizationTxHash),
		zap.String("aggregate_state", string(p.AggregateState)))
	e.transitioned(&p, requester, p.FinalizationTxHash)
	if p.AggregateState == model.AggregateResolved {
		e.record(&p, model.EventAggregateResolved, "", "")
	}
	return p, nil
}
