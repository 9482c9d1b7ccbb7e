// Package paillier is an in-process additively-homomorphic coprocessor.
// Ciphertexts are added without decryption; only the sum is ever decrypted,
// and the decryption result is delivered asynchronously after a number of polls.
package paillier

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/goodnatureofminers/giftpool-backend/pkg/workerpool"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// WeiDecimals is the fixed-point scale of encrypted amounts.
const WeiDecimals = 18

var (
	// ErrUnknownHandle reports a handle the coprocessor never issued.
	ErrUnknownHandle = errors.New("unknown ciphertext handle")
	// ErrUnknownTicket reports a decryption ticket the coprocessor never issued.
	ErrUnknownTicket = errors.New("unknown decryption ticket")
	// ErrOutOfRange reports an amount that is negative, too precise or too large.
	ErrOutOfRange = errors.New("amount out of range")
)

var one = big.NewInt(1)

// Config tunes the coprocessor.
type Config struct {
	// KeyBits is the modulus size. Defaults to 2048.
	KeyBits int
	// DecryptAfterPolls is the number of Decryption calls after which a request is answered.
	DecryptAfterPolls int
	WorkerCount       int
}

type decryptionRequest struct {
	handle string
	polls  int
}

// Coprocessor holds a Paillier key pair and the ciphertexts it issued.
type Coprocessor struct {
	n, n2  *big.Int
	lambda *big.Int
	mu     *big.Int
	cfg    Config
	logger *zap.Logger

	lock        sync.Mutex
	ciphertexts map[string]*big.Int
	requests    map[string]*decryptionRequest
}

// New generates a fresh key pair.
func New(cfg Config, logger *zap.Logger) (*Coprocessor, error) {
	if cfg.KeyBits == 0 {
		cfg.KeyBits = 2048
	}
	if cfg.KeyBits < 128 {
		return nil, fmt.Errorf("key size %d too small", cfg.KeyBits)
	}
	if cfg.DecryptAfterPolls < 1 {
		cfg.DecryptAfterPolls = 1
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = 4
	}

	var p, q *big.Int
	for {
		var err error
		if p, err = rand.Prime(rand.Reader, cfg.KeyBits/2); err != nil {
			return nil, fmt.Errorf("generate prime: %w", err)
		}
		if q, err = rand.Prime(rand.Reader, cfg.KeyBits/2); err != nil {
			return nil, fmt.Errorf("generate prime: %w", err)
		}
		if p.Cmp(q) != 0 {
			break
		}
	}

	n := new(big.Int).Mul(p, q)
	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)
	gcd := new(big.Int).GCD(nil, nil, pm1, qm1)
	lambda := new(big.Int).Div(new(big.Int).Mul(pm1, qm1), gcd)
	mu := new(big.Int).ModInverse(lambda, n)
	if mu == nil {
		return nil, errors.New("derive decryption key: lambda not invertible")
	}

	return &Coprocessor{
		n:           n,
		n2:          new(big.Int).Mul(n, n),
		lambda:      lambda,
		mu:          mu,
		cfg:         cfg,
		logger:      logger.Named("paillier"),
		ciphertexts: make(map[string]*big.Int),
		requests:    make(map[string]*decryptionRequest),
	}, nil
}

// Encrypt stores E(amount in wei) and returns its handle.
func (c *Coprocessor) Encrypt(ctx context.Context, _ string, _ string, amount decimal.Decimal) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m, err := c.toPlaintext(amount)
	if err != nil {
		return "", err
	}
	ct, err := c.encrypt(m)
	if err != nil {
		return "", err
	}
	return c.store(ct), nil
}

// AddAll multiplies the ciphertexts of handles, which adds the underlying amounts,
// and returns the handle of the encrypted sum. Any unknown or malformed handle fails the call.
func (c *Coprocessor) AddAll(ctx context.Context, poolID string, handles []string) (string, error) {
	cts := make([]*big.Int, len(handles))
	idx := make([]int, len(handles))
	for i := range idx {
		idx[i] = i
	}
	err := workerpool.Process(ctx, c.cfg.WorkerCount, idx, func(_ context.Context, i int) error {
		ct, err := c.lookup(handles[i])
		if err != nil {
			return fmt.Errorf("handle %d: %w", i, err)
		}
		cts[i] = ct
		return nil
	}, nil)
	if err != nil {
		return "", err
	}

	// E(0) with r=1 is the multiplicative identity.
	sum := big.NewInt(1)
	for _, ct := range cts {
		sum.Mul(sum, ct).Mod(sum, c.n2)
	}
	c.logger.Debug("homomorphic sum computed", zap.String("pool_id", poolID), zap.Int("inputs", len(handles)))
	return c.store(sum), nil
}

// RequestDecryption queues decryption of a sum handle and returns a ticket.
func (c *Coprocessor) RequestDecryption(ctx context.Context, handle string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, ok := c.ciphertexts[handle]; !ok {
		return "", ErrUnknownHandle
	}
	ticket := uuid.NewString()
	c.requests[ticket] = &decryptionRequest{handle: handle}
	return ticket, nil
}

// Decryption reports the decrypted value of a ticket once it is ready.
func (c *Coprocessor) Decryption(ctx context.Context, ticket string) (decimal.Decimal, bool, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, false, err
	}
	c.lock.Lock()
	req, ok := c.requests[ticket]
	if !ok {
		c.lock.Unlock()
		return decimal.Zero, false, ErrUnknownTicket
	}
	req.polls++
	ready := req.polls >= c.cfg.DecryptAfterPolls
	ct := c.ciphertexts[req.handle]
	c.lock.Unlock()

	if !ready {
		return decimal.Zero, false, nil
	}
	return decimal.NewFromBigInt(c.decrypt(ct), -WeiDecimals), true, nil
}

func (c *Coprocessor) toPlaintext(amount decimal.Decimal) (*big.Int, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: must be positive", ErrOutOfRange)
	}
	wei := amount.Shift(WeiDecimals)
	if !wei.IsInteger() {
		return nil, fmt.Errorf("%w: more than %d decimals", ErrOutOfRange, WeiDecimals)
	}
	m := wei.BigInt()
	if m.Cmp(c.n) >= 0 {
		return nil, fmt.Errorf("%w: exceeds plaintext space", ErrOutOfRange)
	}
	return m, nil
}

// encrypt computes (1 + m*n) * r^n mod n^2, i.e. g^m * r^n with g = n+1.
func (c *Coprocessor) encrypt(m *big.Int) (*big.Int, error) {
	r, err := c.randomUnit()
	if err != nil {
		return nil, err
	}
	gm := new(big.Int).Mul(m, c.n)
	gm.Add(gm, one).Mod(gm, c.n2)
	rn := new(big.Int).Exp(r, c.n, c.n2)
	return gm.Mul(gm, rn).Mod(gm, c.n2), nil
}

// decrypt computes L(c^lambda mod n^2) * mu mod n with L(x) = (x-1)/n.
func (c *Coprocessor) decrypt(ct *big.Int) *big.Int {
	x := new(big.Int).Exp(ct, c.lambda, c.n2)
	x.Sub(x, one).Div(x, c.n)
	return x.Mul(x, c.mu).Mod(x, c.n)
}

func (c *Coprocessor) randomUnit() (*big.Int, error) {
	for {
		r, err := rand.Int(rand.Reader, c.n)
		if err != nil {
			return nil, fmt.Errorf("generate randomness: %w", err)
		}
		if r.Sign() > 0 && new(big.Int).GCD(nil, nil, r, c.n).Cmp(one) == 0 {
			return r, nil
		}
	}
}

func (c *Coprocessor) store(ct *big.Int) string {
	handle := "0x" + uuid.New().String()
	c.lock.Lock()
	c.ciphertexts[handle] = ct
	c.lock.Unlock()
	return handle
}

func (c *Coprocessor) lookup(handle string) (*big.Int, error) {
	c.lock.Lock()
	ct, ok := c.ciphertexts[handle]
	c.lock.Unlock()
	if !ok {
		return nil, ErrUnknownHandle
	}
	if ct.Sign() <= 0 || ct.Cmp(c.n2) >= 0 || new(big.Int).GCD(nil, nil, ct, c.n).Cmp(one) != 0 {
		return nil, fmt.Errorf("malformed ciphertext %s", handle)
	}
	return ct, nil
}
