package remote

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Relayer talks to a homomorphic-encryption relayer and its decryption oracle.
type Relayer struct {
	c *client
}

// NewRelayer builds a privacy.Coprocessor backed by the remote relayer.
func NewRelayer(cfg Config, metrics Metrics, logger *zap.Logger) *Relayer {
	return &Relayer{c: newClient(cfg, metrics, logger.Named("relayer"))}
}

type handleResponse struct {
	Handle string `json:"handle"`
}

type decryptionRequest struct {
	Handle string `json:"handle"`
}

type decryptionTicket struct {
	Ticket string `json:"ticket"`
}

type decryptionStatus struct {
	Ready bool            `json:"ready"`
	Value decimal.Decimal `json:"value"`
}

func (r *Relayer) Encrypt(ctx context.Context, poolID, contributor string, amount decimal.Decimal) (string, error) {
	var resp handleResponse
	err := r.c.call(ctx, "encrypt", http.MethodPost, "/v1/encrypt",
		protectRequest{PoolID: poolID, Contributor: contributor, Amount: amount}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Handle == "" {
		return "", errors.New("encrypt: empty handle")
	}
	return resp.Handle, nil
}

func (r *Relayer) AddAll(ctx context.Context, poolID string, handles []string) (string, error) {
	var resp handleResponse
	if err := r.c.call(ctx, "add", http.MethodPost, "/v1/add", sumRequest{PoolID: poolID, Handles: handles}, &resp); err != nil {
		return "", err
	}
	if resp.Handle == "" {
		return "", errors.New("add: empty handle")
	}
	return resp.Handle, nil
}

func (r *Relayer) RequestDecryption(ctx context.Context, handle string) (string, error) {
	var resp decryptionTicket
	if err := r.c.call(ctx, "request_decryption", http.MethodPost, "/v1/decryptions", decryptionRequest{Handle: handle}, &resp); err != nil {
		return "", err
	}
	if resp.Ticket == "" {
		return "", errors.New("request decryption: empty ticket")
	}
	return resp.Ticket, nil
}

func (r *Relayer) Decryption(ctx context.Context, ticket string) (decimal.Decimal, bool, error) {
	var resp decryptionStatus
	if err := r.c.call(ctx, "decryption", http.MethodGet, "/v1/decryptions/"+url.PathEscape(ticket), nil, &resp); err != nil {
		return decimal.Zero, false, err
	}
	return resp.Value, resp.Ready, nil
}
