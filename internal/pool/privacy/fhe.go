package privacy

import (
	"context"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/clock"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FHEOptions controls how long Aggregate waits for the decryption oracle.
type FHEOptions struct {
	// Await blocks Aggregate until the decrypted sum is available or MaxPolls is exhausted.
	Await        bool
	PollInterval time.Duration
	MaxPolls     int
}

// FHE sums ciphertexts homomorphically and decrypts only the total.
type FHE struct {
	coprocessor Coprocessor
	opts        FHEOptions
	sleep       func(context.Context, time.Duration) error
	logger      *zap.Logger
}

// NewFHE builds the strategy for model.PrivacyFHE.
func NewFHE(coprocessor Coprocessor, opts FHEOptions, logger *zap.Logger) *FHE {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 2 * time.Second
	}
	if opts.MaxPolls < 1 {
		opts.MaxPolls = 1
	}
	return &FHE{
		coprocessor: coprocessor,
		opts:        opts,
		sleep:       clock.SleepWithContext,
		logger:      logger.Named("fhe"),
	}
}

func (*FHE) Mode() model.PrivacyMode {
	return model.PrivacyFHE
}

func (s *FHE) Protect(ctx context.Context, poolID, contributor string, amount decimal.Decimal) (Protection, error) {
	handle, err := s.coprocessor.Encrypt(ctx, poolID, contributor, amount)
	if err != nil {
		return Protection{}, backendError(ErrEncryptionFailed, "encrypt contribution", err)
	}
	return Protection{Amount: model.RedactedAmount, Handle: handle}, nil
}

func (s *FHE) Aggregate(ctx context.Context, poolID string, handles []string) (Result, error) {
	sumHandle, err := s.coprocessor.AddAll(ctx, poolID, handles)
	if err != nil {
		return Result{}, backendError(ErrAggregationFailed, "homomorphic sum", err)
	}
	ticket, err := s.coprocessor.RequestDecryption(ctx, sumHandle)
	if err != nil {
		return Result{}, backendError(ErrAggregationFailed, "request decryption", err)
	}

	pending := Result{Pending: true, Ticket: ticket, Counted: len(handles)}
	if !s.opts.Await {
		return pending, nil
	}

	for attempt := 1; attempt <= s.opts.MaxPolls; attempt++ {
		total, ready, err := s.coprocessor.Decryption(ctx, ticket)
		if err != nil {
			// The request is already submitted; keep the ticket so it can be re-polled.
			s.logger.Warn("decryption poll failed", zap.String("pool_id", poolID), zap.Int("attempt", attempt), zap.Error(err))
			return pending, nil
		}
		if ready {
			return Result{Total: total.String(), Counted: len(handles)}, nil
		}
		if attempt == s.opts.MaxPolls {
			break
		}
		if err := s.sleep(ctx, s.opts.PollInterval); err != nil {
			return pending, nil
		}
	}
	s.logger.Info("decryption still pending", zap.String("pool_id", poolID), zap.Int("polls", s.opts.MaxPolls))
	return pending, nil
}

func (s *FHE) Resolve(ctx context.Context, _ string, ticket string) (Result, error) {
	total, ready, err := s.coprocessor.Decryption(ctx, ticket)
	if err != nil {
		return Result{}, backendError(ErrAggregationFailed, "poll decryption", err)
	}
	if !ready {
		return Result{Pending: true, Ticket: ticket}, nil
	}
	return Result{Total: total.String()}, nil
}
