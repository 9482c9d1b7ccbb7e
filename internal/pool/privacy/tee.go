package privacy

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/shopspring/decimal"
)

// TEE seals amounts into an enclave and asks it for the sum at finalization.
type TEE struct {
	enclave Enclave
}

// NewTEE builds the strategy for model.PrivacyTEE.
func NewTEE(enclave Enclave) *TEE {
	return &TEE{enclave: enclave}
}

func (*TEE) Mode() model.PrivacyMode {
	return model.PrivacyTEE
}

func (s *TEE) Protect(ctx context.Context, poolID, contributor string, amount decimal.Decimal) (Protection, error) {
	handle, err := s.enclave.Seal(ctx, poolID, contributor, amount)
	if err != nil {
		return Protection{}, backendError(ErrEncryptionFailed, "seal contribution", err)
	}
	return Protection{Amount: model.RedactedAmount, Handle: handle}, nil
}

// Aggregate tolerates unreadable handles: they are skipped and reported in Result.Skipped.
// It fails only when no handle could be read.
func (s *TEE) Aggregate(ctx context.Context, poolID string, handles []string) (Result, error) {
	sum, err := s.enclave.Sum(ctx, poolID, handles)
	if err != nil {
		return Result{}, backendError(ErrAggregationFailed, "enclave sum", err)
	}
	if sum.Counted == 0 && len(handles) > 0 {
		return Result{Skipped: sum.Skipped}, fmt.Errorf("%w: none of %d contributions could be read", ErrAggregationFailed, len(handles))
	}
	return Result{
		Total:   sum.Total.String(),
		Counted: sum.Counted,
		Skipped: sum.Skipped,
	}, nil
}

func (*TEE) Resolve(context.Context, string, string) (Result, error) {
	return Result{}, fmt.Errorf("%w: enclave sums are never deferred", ErrAggregationFailed)
}
