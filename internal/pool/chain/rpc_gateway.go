package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/giftpool-backend/internal/clock"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"go.uber.org/zap"
)

const (
	methodCreate     = "giftpool_createPool"
	methodContribute = "giftpool_contribute"
	methodFinalize   = "giftpool_finalize"
	methodGetPool    = "giftpool_getPool"
)

// RPCGatewayConfig tunes read retries.
type RPCGatewayConfig struct {
	ReadAttempts   int
	ReadRetryDelay time.Duration
}

// RPCGateway talks to a settlement node over JSON-RPC. Pools are addressed by
// their 32-byte key.
type RPCGateway struct {
	client  RPCClient
	metrics Metrics
	cfg     RPCGatewayConfig
	sleep   func(context.Context, time.Duration) error
	logger  *zap.Logger
}

func NewRPCGateway(client RPCClient, metrics Metrics, cfg RPCGatewayConfig, logger *zap.Logger) *RPCGateway {
	if cfg.ReadAttempts < 1 {
		cfg.ReadAttempts = 3
	}
	if cfg.ReadRetryDelay <= 0 {
		cfg.ReadRetryDelay = 500 * time.Millisecond
	}
	return &RPCGateway{
		client:  client,
		metrics: metrics,
		cfg:     cfg,
		sleep:   clock.SleepWithContext,
		logger:  logger.Named("chain_gateway"),
	}
}

func (g *RPCGateway) CreateOnChain(ctx context.Context, req CreateRequest) (r Receipt, err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe("create", err, started)
	}()

	key, err := poolKey(req.PoolID)
	if err != nil {
		return Receipt{}, err
	}
	err = g.call(ctx, methodCreate, &r, key, req.Name, req.Creator, req.Recipient, req.Threshold, string(req.PrivacyMode), req.InitialValue)
	if err != nil {
		return Receipt{}, fmt.Errorf("create pool %s on chain: %w", req.PoolID, err)
	}
	g.logger.Info("pool created on chain", zap.String("pool_id", req.PoolID), zap.String("tx_hash", r.TxHash), zap.Uint64("block", r.BlockNumber))
	return r, nil
}

func (g *RPCGateway) ContributeOnChain(ctx context.Context, poolID, contributor, value string) (r Receipt, err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe("contribute", err, started)
	}()

	key, err := poolKey(poolID)
	if err != nil {
		return Receipt{}, err
	}
	if err = g.call(ctx, methodContribute, &r, key, contributor, value); err != nil {
		return Receipt{}, fmt.Errorf("contribute to pool %s on chain: %w", poolID, err)
	}
	return r, nil
}

func (g *RPCGateway) FinalizeOnChain(ctx context.Context, poolID, caller string) (r Receipt, err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe("finalize", err, started)
	}()

	key, err := poolKey(poolID)
	if err != nil {
		return Receipt{}, err
	}
	if err = g.call(ctx, methodFinalize, &r, key, caller); err != nil {
		return Receipt{}, fmt.Errorf("finalize pool %s on chain: %w", poolID, err)
	}
	g.logger.Info("pool finalized on chain", zap.String("pool_id", poolID), zap.String("tx_hash", r.TxHash))
	return r, nil
}

// ReadOnChain retries transport failures; rejections are returned immediately.
func (g *RPCGateway) ReadOnChain(ctx context.Context, poolID string) (v PoolView, err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe("read", err, started)
	}()

	key, err := poolKey(poolID)
	if err != nil {
		return PoolView{}, err
	}
	for attempt := 1; ; attempt++ {
		err = g.call(ctx, methodGetPool, &v, key)
		if err == nil {
			v.PoolID = poolID
			return v, nil
		}
		if !errors.Is(err, ErrUnreachable) || attempt >= g.cfg.ReadAttempts {
			return PoolView{}, fmt.Errorf("read pool %s on chain: %w", poolID, err)
		}
		g.logger.Debug("retrying chain read", zap.String("pool_id", poolID), zap.Int("attempt", attempt), zap.Error(err))
		if sleepErr := g.sleep(ctx, g.cfg.ReadRetryDelay); sleepErr != nil {
			return PoolView{}, fmt.Errorf("read pool %s on chain: %w", poolID, sleepErr)
		}
	}
}

// Height returns the settlement node's current block count.
func (g *RPCGateway) Height() (int64, error) {
	h, err := g.client.GetBlockCount()
	if err != nil {
		return 0, classify(err)
	}
	return h, nil
}

func (g *RPCGateway) call(ctx context.Context, method string, out any, args ...any) error {
	params := make([]json.RawMessage, 0, len(args))
	for _, a := range args {
		raw, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("encode %s params: %w", method, err)
		}
		params = append(params, raw)
	}

	type result struct {
		raw json.RawMessage
		err error
	}
	done := make(chan result, 1)
	go func() {
		raw, err := g.client.RawRequest(method, params)
		done <- result{raw: raw, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrUnreachable, ctx.Err())
	case res = <-done:
	}
	if res.err != nil {
		return classify(res.err)
	}
	if err := json.Unmarshal(res.raw, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

func classify(err error) error {
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		return &RejectedError{Code: int(rpcErr.Code), Message: rpcErr.Message}
	}
	return fmt.Errorf("%w: %w", ErrUnreachable, err)
}

func poolKey(poolID string) (string, error) {
	key, ok := model.PoolKey(poolID)
	if !ok {
		return "", fmt.Errorf("pool id %q does not fit a 32-byte key", poolID)
	}
	return model.PoolKeyHex(key), nil
}
