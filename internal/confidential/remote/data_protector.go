package remote

import (
	"context"
	"errors"
	"net/http"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/privacy"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DataProtector talks to a trusted-execution data-protection service.
type DataProtector struct {
	c *client
}

// NewDataProtector builds a privacy.Enclave backed by the remote service.
func NewDataProtector(cfg Config, metrics Metrics, logger *zap.Logger) *DataProtector {
	return &DataProtector{c: newClient(cfg, metrics, logger.Named("data_protector"))}
}

type protectRequest struct {
	PoolID      string          `json:"poolId"`
	Contributor string          `json:"contributor"`
	Amount      decimal.Decimal `json:"amount"`
}

type protectResponse struct {
	Handle string `json:"handle"`
}

type sumRequest struct {
	PoolID  string   `json:"poolId"`
	Handles []string `json:"handles"`
}

type sumResponse struct {
	Total   decimal.Decimal `json:"total"`
	Counted int             `json:"counted"`
	Skipped int             `json:"skipped"`
}

func (d *DataProtector) Seal(ctx context.Context, poolID, contributor string, amount decimal.Decimal) (string, error) {
	var resp protectResponse
	err := d.c.call(ctx, "protect", http.MethodPost, "/v1/protect",
		protectRequest{PoolID: poolID, Contributor: contributor, Amount: amount}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Handle == "" {
		return "", errors.New("protect: empty handle")
	}
	return resp.Handle, nil
}

func (d *DataProtector) Sum(ctx context.Context, poolID string, handles []string) (privacy.EnclaveSum, error) {
	var resp sumResponse
	if err := d.c.call(ctx, "sum", http.MethodPost, "/v1/sum", sumRequest{PoolID: poolID, Handles: handles}, &resp); err != nil {
		return privacy.EnclaveSum{}, err
	}
	return privacy.EnclaveSum{Total: resp.Total, Counted: resp.Counted, Skipped: resp.Skipped}, nil
}
