// Package chain records pool lifecycle steps on a settlement backend.
package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ErrUnreachable reports that the settlement backend could not be reached. A write
// that fails this way may or may not have landed.
var ErrUnreachable = errors.New("settlement backend unreachable")

// Rejection codes returned by the settlement node.
const (
	CodeWrongNetwork     = -32010
	CodeUnauthorized     = -32011
	CodeAlreadyFinalized = -32012
	CodeUnknownPool      = -32013
)

// RejectedError reports that the backend refused the call. It is not retryable.
type RejectedError struct {
	Code    int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("settlement backend rejected call (%d): %s", e.Code, e.Message)
}

type (
	// Gateway submits pool transitions to the settlement backend.
	// Writes are single submissions and are never retried by the gateway.
	Gateway interface {
		CreateOnChain(ctx context.Context, req CreateRequest) (Receipt, error)
		ContributeOnChain(ctx context.Context, poolID, contributor, value string) (Receipt, error)
		FinalizeOnChain(ctx context.Context, poolID, caller string) (Receipt, error)
		ReadOnChain(ctx context.Context, poolID string) (PoolView, error)
	}

	// RPCClient is the JSON-RPC transport used by RPCGateway.
	RPCClient interface {
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
		GetBlockCount() (int64, error)
	}
)

// CreateRequest describes a pool to register on chain.
type CreateRequest struct {
	PoolID      string
	Name        string
	Creator     string
	Recipient   string
	Threshold   int
	PrivacyMode model.PrivacyMode
	// InitialValue is the creator's ciphertext handle, or the plain amount when unprotected.
	InitialValue string
}

// Receipt identifies a landed transaction.
type Receipt struct {
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
}

// PoolView is the on-chain state of a pool.
type PoolView struct {
	PoolID           string `json:"poolId"`
	Creator          string `json:"creator"`
	Recipient        string `json:"recipient"`
	Threshold        int    `json:"threshold"`
	ContributorCount int    `json:"contributorCount"`
	Finalized        bool   `json:"finalized"`
	// Total is "0" until the backend has decrypted the sum.
	Total string `json:"total"`
}

// Metrics records gateway outcomes.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}
