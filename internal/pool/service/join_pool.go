package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// JoinPoolInput is one contribution to an existing pool.
type JoinPoolInput struct {
	PoolID             string
	ContributorAddress string
	Amount             decimal.Decimal
	Suggestion         string
}

// JoinPool appends a contributor and re-evaluates the threshold. Off-chain pools
// finalize as soon as the threshold is met; on-chain pools wait for the creator.
func (e *Engine) JoinPool(ctx context.Context, in JoinPoolInput) (p model.Pool, err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe("join_pool", err, started)
	}()

	if !model.ValidAddress(in.ContributorAddress) {
		return model.Pool{}, ErrInvalidAddress
	}
	if in.Amount.Sign() <= 0 {
		return model.Pool{}, ErrInvalidAmount
	}
	addr := model.NormalizeAddress(in.ContributorAddress)

	unlock, err := e.lockPool(ctx, in.PoolID)
	if err != nil {
		return model.Pool{}, err
	}
	defer unlock()

	p, err = e.loadPool(ctx, in.PoolID)
	if err != nil {
		return model.Pool{}, err
	}
	if p.Status != model.StatusOngoing {
		return model.Pool{}, ErrPoolNotAcceptingContributions
	}
	if p.HasContributor(addr) {
		return model.Pool{}, ErrDuplicateContributor
	}
	strategy, err := e.strategy(p.PrivacyMode)
	if err != nil {
		return model.Pool{}, err
	}
	if p.OnChain && e.gateway == nil {
		return model.Pool{}, ErrChainUnavailable
	}

	suggestion := strings.TrimSpace(in.Suggestion)
	c, err := e.protect(ctx, strategy, p.ID, addr, in.Amount, suggestion)
	if err != nil {
		return model.Pool{}, err
	}

	if p.OnChain {
		bctx, cancel := context.WithTimeout(ctx, e.cfg.BackendTimeout)
		receipt, err := e.gateway.ContributeOnChain(bctx, p.ID, addr, c.Handle())
		cancel()
		if err != nil {
			return model.Pool{}, chainError("contribute on chain", err)
		}
		c.ContributionTxHash = receipt.TxHash
	}

	p.Contributors = append(p.Contributors, c)
	if suggestion != "" {
		p.GiftSuggestions = append(p.GiftSuggestions, suggestion)
	}

	if p.ThresholdMet() {
		if p.OnChain {
			p.Status = model.StatusReadyToFinalize
		} else {
			res, err := e.aggregate(ctx, strategy, &p)
			if err != nil {
				return model.Pool{}, err
			}
			e.finalize(&p, res)
		}
	}

	if err = e.store.Upsert(ctx, p); err != nil {
		if p.OnChain {
			e.logger.Error("contribution recorded on chain but not persisted",
				zap.String("pool_id", p.ID), zap.String("tx_hash", c.ContributionTxHash), zap.Error(err))
		}
		return model.Pool{}, fmt.Errorf("persist pool: %w", err)
	}

	e.logger.Info("contributor joined",
		zap.String("pool_id", p.ID),
		zap.Int("contributors", len(p.Contributors)),
		zap.String("status", string(p.Status)))
	e.record(&p, model.EventJoined, addr, c.ContributionTxHash)
	e.transitioned(&p, addr, "")
	return p, nil
}
