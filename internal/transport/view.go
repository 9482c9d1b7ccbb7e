package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/alias"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
)

// contributorView omits the per-contributor gift suggestion: suggestions are
// published only as the pool's anonymous list.
type contributorView struct {
	Address            string    `json:"address"`
	DisplayName        string    `json:"displayName"`
	Amount             string    `json:"amount"`
	JoinedAt           time.Time `json:"joinedAt"`
	ContributionTxHash string    `json:"contributionTxHash,omitempty"`
}

type poolView struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	CreatorAddress        string            `json:"creatorAddress"`
	CreatorDisplayName    string            `json:"creatorDisplayName"`
	RecipientAddress      string            `json:"recipientAddress"`
	RecipientDisplayName  string            `json:"recipientDisplayName"`
	GiftSuggestions       []string          `json:"giftSuggestions"`
	FinalizationThreshold int               `json:"finalizationThreshold"`
	Contributors          []contributorView `json:"contributors"`
	Status                model.Status      `json:"status"`
	PrivacyMode           model.PrivacyMode `json:"privacyMode"`
	TotalAmount           *string           `json:"totalAmount,omitempty"`
	AggregateState        string            `json:"aggregateState,omitempty"`
	AggregateSkipped      int               `json:"aggregateSkipped,omitempty"`
	OnChain               bool              `json:"onChain"`
	CreationTxHash        string            `json:"creationTxHash,omitempty"`
	FinalizationTxHash    string            `json:"finalizationTxHash,omitempty"`
	BlockNumber           uint64            `json:"blockNumber,omitempty"`
	CreatedAt             time.Time         `json:"createdAt"`
	FinalizedAt           *time.Time        `json:"finalizedAt,omitempty"`
}

func newPoolView(ctx context.Context, names alias.Resolver, p model.Pool) poolView {
	v := poolView{
		ID:                    p.ID,
		Name:                  p.Name,
		CreatorAddress:        p.CreatorAddress,
		CreatorDisplayName:    alias.Display(ctx, names, p.CreatorAddress),
		RecipientAddress:      p.RecipientAddress,
		RecipientDisplayName:  alias.Display(ctx, names, p.RecipientAddress),
		GiftSuggestions:       append([]string{}, p.GiftSuggestions...),
		FinalizationThreshold: p.FinalizationThreshold,
		Contributors:          make([]contributorView, 0, len(p.Contributors)),
		Status:                p.Status,
		PrivacyMode:           p.PrivacyMode,
		AggregateState:        string(p.AggregateState),
		AggregateSkipped:      p.AggregateSkipped,
		OnChain:               p.OnChain,
		CreationTxHash:        p.CreationTxHash,
		FinalizationTxHash:    p.FinalizationTxHash,
		BlockNumber:           p.BlockNumber,
		CreatedAt:             p.CreatedAt,
		FinalizedAt:           p.FinalizedAt,
	}
	if p.Status == model.StatusFinalized {
		v.TotalAmount = p.TotalAmount
	}
	for _, c := range p.Contributors {
		amount := c.Amount
		if p.PrivacyMode.Confidential() {
			amount = model.RedactedAmount
		}
		v.Contributors = append(v.Contributors, contributorView{
			Address:            c.Address,
			DisplayName:        alias.Display(ctx, names, c.Address),
			Amount:             amount,
			JoinedAt:           c.JoinedAt,
			ContributionTxHash: c.ContributionTxHash,
		})
	}
	return v
}

func newPoolViews(ctx context.Context, names alias.Resolver, pools []model.Pool) []poolView {
	out := make([]poolView, 0, len(pools))
	for _, p := range pools {
		out = append(out, newPoolView(ctx, names, p))
	}
	return out
}
