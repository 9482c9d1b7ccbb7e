package privacy

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/shopspring/decimal"
)

// Plaintext keeps amounts readable and sums them directly.
type Plaintext struct{}

// NewPlaintext returns the strategy for model.PrivacyNone.
func NewPlaintext() *Plaintext {
	return &Plaintext{}
}

func (Plaintext) Mode() model.PrivacyMode {
	return model.PrivacyNone
}

func (Plaintext) Protect(_ context.Context, _, _ string, amount decimal.Decimal) (Protection, error) {
	return Protection{Amount: amount.String()}, nil
}

func (Plaintext) Aggregate(_ context.Context, _ string, handles []string) (Result, error) {
	total := decimal.Zero
	for i, h := range handles {
		v, err := decimal.NewFromString(h)
		if err != nil {
			return Result{}, fmt.Errorf("%w: contribution %d is not a number: %w", ErrAggregationFailed, i, err)
		}
		total = total.Add(v)
	}
	return Result{Total: total.String(), Counted: len(handles)}, nil
}

func (Plaintext) Resolve(context.Context, string, string) (Result, error) {
	return Result{}, fmt.Errorf("%w: plaintext totals are never deferred", ErrAggregationFailed)
}
