// Package enclave is an in-process stand-in for a trusted-execution data-protection
// service: amounts are sealed with an AEAD key that never leaves the process and
// are only ever opened inside Sum.
package enclave

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/privacy"
	"github.com/goodnatureofminers/giftpool-backend/pkg/workerpool"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/chacha20poly1305"
)

const defaultWorkerCount = 8

var errUnknownHandle = errors.New("unknown protected data handle")

type sealed struct {
	nonce []byte
	box   []byte
}

type payload struct {
	PoolID      string          `json:"poolId"`
	Contributor string          `json:"contributor"`
	Amount      decimal.Decimal `json:"amount"`
}

// Enclave seals contributions and sums them without exposing individual values.
type Enclave struct {
	aead        cipher.AEAD
	workerCount int
	logger      *zap.Logger

	mu    sync.RWMutex
	boxes map[string]sealed
}

// New builds an enclave from a 32-byte key.
func New(key []byte, workerCount int, logger *zap.Logger) (*Enclave, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init enclave cipher: %w", err)
	}
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}
	return &Enclave{
		aead:        aead,
		workerCount: workerCount,
		logger:      logger.Named("enclave"),
		boxes:       make(map[string]sealed),
	}, nil
}

// NewRandom builds an enclave with a freshly generated key.
func NewRandom(workerCount int, logger *zap.Logger) (*Enclave, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate enclave key: %w", err)
	}
	return New(key, workerCount, logger)
}

// Seal protects one contribution and returns its handle.
func (e *Enclave) Seal(ctx context.Context, poolID, contributor string, amount decimal.Decimal) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if amount.Sign() <= 0 {
		return "", fmt.Errorf("amount must be positive")
	}

	plain, err := json.Marshal(payload{PoolID: poolID, Contributor: contributor, Amount: amount})
	if err != nil {
		return "", fmt.Errorf("encode contribution: %w", err)
	}
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	handle := "tee-" + uuid.NewString()
	box := e.aead.Seal(nil, nonce, plain, additionalData(poolID, handle))

	e.mu.Lock()
	e.boxes[handle] = sealed{nonce: nonce, box: box}
	e.mu.Unlock()
	return handle, nil
}

// Sum opens every handle bound to poolID and adds the amounts.
// Handles that cannot be opened are skipped and counted.
func (e *Enclave) Sum(ctx context.Context, poolID string, handles []string) (privacy.EnclaveSum, error) {
	var (
		mu    sync.Mutex
		total = decimal.Zero
	)
	errs := workerpool.Each(ctx, e.workerCount, handles, func(_ context.Context, handle string) error {
		amount, err := e.open(poolID, handle)
		if err != nil {
			return err
		}
		mu.Lock()
		total = total.Add(amount)
		mu.Unlock()
		return nil
	})
	if err := ctx.Err(); err != nil {
		return privacy.EnclaveSum{}, err
	}

	res := privacy.EnclaveSum{Total: total}
	for i, err := range errs {
		if err != nil {
			res.Skipped++
			e.logger.Warn("skipping unreadable contribution", zap.String("pool_id", poolID), zap.Int("index", i), zap.Error(err))
			continue
		}
		res.Counted++
	}
	return res, nil
}

func (e *Enclave) open(poolID, handle string) (decimal.Decimal, error) {
	e.mu.RLock()
	s, ok := e.boxes[handle]
	e.mu.RUnlock()
	if !ok {
		return decimal.Zero, errUnknownHandle
	}

	plain, err := e.aead.Open(nil, s.nonce, s.box, additionalData(poolID, handle))
	if err != nil {
		return decimal.Zero, fmt.Errorf("open sealed contribution: %w", err)
	}
	var p payload
	if err := json.Unmarshal(plain, &p); err != nil {
		return decimal.Zero, fmt.Errorf("decode contribution: %w", err)
	}
	return p.Amount, nil
}

func additionalData(poolID, handle string) []byte {
	return []byte(poolID + "|" + handle)
}
