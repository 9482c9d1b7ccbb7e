// Package privacy implements the confidentiality strategies applied to contribution amounts.
package privacy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

var (
	// ErrEncryptionFailed reports that a backend rejected an amount.
	ErrEncryptionFailed = errors.New("encryption failed")
	// ErrAggregationFailed reports that no total could be computed.
	ErrAggregationFailed = errors.New("aggregation failed")
	// ErrBackendUnavailable reports a transient failure reaching a backend; callers may retry.
	ErrBackendUnavailable = errors.New("confidential backend unavailable")
)

type (
	// Strategy protects and aggregates amounts for one privacy mode.
	Strategy interface {
		Mode() model.PrivacyMode
		// Protect turns an amount into the value stored on the contributor record.
		Protect(ctx context.Context, poolID, contributor string, amount decimal.Decimal) (Protection, error)
		// Aggregate reveals the sum of the given handles, or returns a pending result.
		Aggregate(ctx context.Context, poolID string, handles []string) (Result, error)
		// Resolve re-polls a pending result identified by its ticket.
		Resolve(ctx context.Context, poolID, ticket string) (Result, error)
	}

	// Enclave is a trusted-execution data-protection backend.
	Enclave interface {
		Seal(ctx context.Context, poolID, contributor string, amount decimal.Decimal) (string, error)
		Sum(ctx context.Context, poolID string, handles []string) (EnclaveSum, error)
	}

	// Coprocessor is a homomorphic-encryption backend with an asynchronous decryption oracle.
	Coprocessor interface {
		Encrypt(ctx context.Context, poolID, contributor string, amount decimal.Decimal) (string, error)
		AddAll(ctx context.Context, poolID string, handles []string) (string, error)
		RequestDecryption(ctx context.Context, handle string) (string, error)
		Decryption(ctx context.Context, ticket string) (decimal.Decimal, bool, error)
	}

	// Metrics records strategy call outcomes.
	Metrics interface {
		Observe(operation string, mode model.PrivacyMode, err error, started time.Time)
	}
)

// Protection is the result of protecting one amount.
type Protection struct {
	// Amount is stored on the contributor record: the plain amount, or model.RedactedAmount.
	Amount string
	// Handle references the protected amount in the backend. Empty when Amount
	// itself is the aggregation input.
	Handle string
}

// Result is an aggregation outcome.
type Result struct {
	Total   string
	Pending bool
	// Ticket identifies a pending decryption for Resolve.
	Ticket  string
	Counted int
	Skipped int
}

// EnclaveSum is the enclave's answer to a sum request. Individual values never leave it.
type EnclaveSum struct {
	Total   decimal.Decimal
	Counted int
	Skipped int
}

func backendError(kind error, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrBackendUnavailable) {
		return fmt.Errorf("%s: %w: %w", op, ErrBackendUnavailable, err)
	}
	if errors.Is(err, kind) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
