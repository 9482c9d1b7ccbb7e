package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/chain"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreatePoolInput describes a new pool and the creator's own contribution.
type CreatePoolInput struct {
	Name             string
	RecipientAddress string
	Threshold        int
	CreatorAddress   string
	SelfAmount       decimal.Decimal
	Suggestion       string
	PrivacyMode      model.PrivacyMode
}

// CreatePool registers a pool with the creator as its first contributor.
// Nothing is persisted unless every backend call succeeds.
func (e *Engine) CreatePool(ctx context.Context, in CreatePoolInput) (p model.Pool, err error) {
	started := time.Now()
	defer func() {
		e.metrics.Observe("create_pool", err, started)
	}()

	if in.Threshold < 1 {
		return model.Pool{}, ErrInvalidThreshold
	}
	if !model.ValidAddress(in.RecipientAddress) {
		return model.Pool{}, ErrInvalidRecipient
	}
	if !model.ValidAddress(in.CreatorAddress) {
		return model.Pool{}, ErrInvalidAddress
	}
	if in.SelfAmount.Sign() <= 0 {
		return model.Pool{}, ErrInvalidAmount
	}
	strategy, err := e.strategy(in.PrivacyMode)
	if err != nil {
		return model.Pool{}, err
	}

	id, err := e.store.NextID(ctx)
	if err != nil {
		return model.Pool{}, fmt.Errorf("allocate pool id: %w", err)
	}
	logger := e.logger.With(zap.String("pool_id", id), zap.String("privacy_mode", string(in.PrivacyMode)))

	creator := model.NormalizeAddress(in.CreatorAddress)
	suggestion := strings.TrimSpace(in.Suggestion)
	first, err := e.protect(ctx, strategy, id, creator, in.SelfAmount, suggestion)
	if err != nil {
		return model.Pool{}, err
	}

	p = model.Pool{
		ID:                    id,
		Name:                  strings.TrimSpace(in.Name),
		CreatorAddress:        creator,
		RecipientAddress:      model.NormalizeAddress(in.RecipientAddress),
		GiftSuggestions:       []string{},
		FinalizationThreshold: in.Threshold,
		Contributors:          []model.Contributor{first},
		Status:                model.StatusOngoing,
		PrivacyMode:           in.PrivacyMode,
		OnChain:               e.gateway != nil,
		CreatedAt:             e.now(),
	}
	if suggestion != "" {
		p.GiftSuggestions = append(p.GiftSuggestions, suggestion)
	}

	if p.OnChain {
		bctx, cancel := context.WithTimeout(ctx, e.cfg.BackendTimeout)
		receipt, err := e.gateway.CreateOnChain(bctx, chain.CreateRequest{
			PoolID:       p.ID,
			Name:         p.Name,
			Creator:      p.CreatorAddress,
			Recipient:    p.RecipientAddress,
			Threshold:    p.FinalizationThreshold,
			PrivacyMode:  p.PrivacyMode,
			InitialValue: first.Handle(),
		})
		cancel()
		if err != nil {
			return model.Pool{}, chainError("create pool on chain", err)
		}
		p.CreationTxHash = receipt.TxHash
		p.BlockNumber = receipt.BlockNumber
		p.Contributors[0].ContributionTxHash = receipt.TxHash
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
			logger.Error("pool recorded on chain but not persisted", zap.String("tx_hash", p.CreationTxHash), zap.Error(err))
		}
		return model.Pool{}, fmt.Errorf("persist pool: %w", err)
	}

	logger.Info("pool created", zap.String("status", string(p.Status)), zap.Int("threshold", p.FinalizationThreshold))
	e.record(&p, model.EventCreated, creator, p.CreationTxHash)
	e.transitioned(&p, creator, "")
	return p, nil
}
