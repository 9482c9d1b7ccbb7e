package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/chain"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/privacy"
)

// Validation errors.
var (
	ErrInvalidThreshold       = errors.New("finalization threshold must be at least 1")
	ErrInvalidRecipient       = errors.New("invalid recipient address")
	ErrInvalidAddress         = errors.New("invalid address")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrUnsupportedPrivacyMode = errors.New("privacy mode not enabled")
)

// State errors.
var (
	ErrPoolNotFound                  = errors.New("pool not found")
	ErrPoolNotAcceptingContributions = errors.New("pool is not accepting contributions")
	ErrDuplicateContributor          = errors.New("address already contributed to this pool")
	ErrAlreadyFinalized              = errors.New("pool already finalized")
	ErrThresholdNotMet               = errors.New("finalization threshold not met")
	ErrNotAuthorized                 = errors.New("only the pool creator can do this")
	ErrNotFinalized                  = errors.New("pool is not finalized")
	ErrPoolCancelled                 = errors.New("pool was cancelled")
	ErrNotCancellable                = errors.New("pool can no longer be cancelled")
	ErrAggregationExpired            = errors.New("aggregate was not revealed before the deadline")
)

// Backend errors. ErrBackendUnavailable is transient; the others are not.
var (
	ErrBackendUnavailable = privacy.ErrBackendUnavailable
	ErrEncryptionFailed   = privacy.ErrEncryptionFailed
	ErrAggregationFailed  = privacy.ErrAggregationFailed
	ErrChainRejected      = errors.New("settlement backend rejected the call")

	// ErrChainUnavailable reports an on-chain pool handled by an engine without a gateway.
	ErrChainUnavailable = errors.New("settlement backend not configured")
	ErrJournalDisabled  = errors.New("pool journal not configured")
)

// IsValidation reports whether err was caused by caller input.
func IsValidation(err error) bool {
	for _, target := range []error{ErrInvalidThreshold, ErrInvalidRecipient, ErrInvalidAddress, ErrInvalidAmount, ErrUnsupportedPrivacyMode} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func privacyError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrBackendUnavailable) {
		return fmt.Errorf("%s: %w: %w", op, ErrBackendUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func chainError(op string, err error) error {
	var rejected *chain.RejectedError
	switch {
	case errors.As(err, &rejected):
		return fmt.Errorf("%s: %w: %w", op, ErrChainRejected, err)
	case errors.Is(err, chain.ErrUnreachable), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, ErrBackendUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
