package bootstrap

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/giftpool-backend/internal/confidential/enclave"
	"github.com/goodnatureofminers/giftpool-backend/internal/confidential/paillier"
	"github.com/goodnatureofminers/giftpool-backend/internal/confidential/remote"
	"github.com/goodnatureofminers/giftpool-backend/internal/metrics"
	observedrpc "github.com/goodnatureofminers/giftpool-backend/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/chain"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/journal"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/privacy"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/repository/clickhouse"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/repository/memory"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/repository/redis"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/service"
	"github.com/goodnatureofminers/giftpool-backend/pkg/batcher"
	"go.uber.org/zap"
)

// App holds the assembled engine and the resources that must be released with it.
type App struct {
	Engine *service.Engine
	// Persistent reports whether pools outlive the process.
	Persistent bool

	closers []func()
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) onClose(fn func()) {
	a.closers = append(a.closers, fn)
}

// Build wires the engine. On error every resource acquired so far is released.
func Build(ctx context.Context, cfg Config, logger *zap.Logger) (_ *App, err error) {
	app := &App{}
	defer func() {
		if err != nil {
			app.Close()
		}
	}()

	store, err := buildStore(ctx, app, cfg.Store, logger)
	if err != nil {
		return nil, err
	}
	strategies, err := buildStrategies(cfg.Privacy, logger)
	if err != nil {
		return nil, err
	}
	gateway, err := buildGateway(app, cfg.Chain, logger)
	if err != nil {
		return nil, err
	}
	recorder, err := buildJournal(ctx, app, cfg.Journal, logger)
	if err != nil {
		return nil, err
	}

	app.Engine, err = service.NewEngine(
		store,
		strategies.Observed(metrics.NewPrivacy()),
		gateway,
		recorder,
		metrics.NewEngine(),
		service.Config{
			BackendTimeout:    cfg.Engine.BackendTimeout,
			AggregateDeadline: cfg.Engine.AggregateDeadline,
			RefreshOnRead:     cfg.Engine.RefreshOnRead,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("init engine: %w", err)
	}
	return app, nil
}

func buildStore(ctx context.Context, app *App, cfg StoreConfig, logger *zap.Logger) (service.Store, error) {
	if cfg.RedisAddr == "" {
		logger.Warn("redis not configured, pools are kept in memory")
		return memory.New(), nil
	}
	client, err := redis.Dial(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("init redis store: %w", err)
	}
	app.onClose(func() {
		if err := client.Close(); err != nil {
			logger.Warn("close redis client", zap.Error(err))
		}
	})
	app.Persistent = true
	logger.Info("using redis ledger", zap.String("addr", cfg.RedisAddr), zap.String("prefix", cfg.RedisPrefix))
	return redis.New(client, cfg.RedisPrefix, metrics.NewRepository("redis")), nil
}

func buildStrategies(cfg PrivacyConfig, logger *zap.Logger) (privacy.Registry, error) {
	if len(cfg.Modes) == 0 {
		return nil, errors.New("no privacy mode enabled")
	}
	strategies := make([]privacy.Strategy, 0, len(cfg.Modes))
	for _, mode := range cfg.Modes {
		var (
			s   privacy.Strategy
			err error
		)
		switch mode {
		case model.PrivacyNone:
			s = privacy.NewPlaintext()
		case model.PrivacyTEE:
			s, err = buildTEE(cfg, logger)
		case model.PrivacyFHE:
			s, err = buildFHE(cfg, logger)
		default:
			err = fmt.Errorf("unknown privacy mode %q", mode)
		}
		if err != nil {
			return nil, fmt.Errorf("init %s strategy: %w", mode, err)
		}
		strategies = append(strategies, s)
	}
	return privacy.NewRegistry(strategies...), nil
}

func buildTEE(cfg PrivacyConfig, logger *zap.Logger) (privacy.Strategy, error) {
	if cfg.DataProtectorURL != "" {
		dp := remote.NewDataProtector(remoteConfig(cfg.DataProtectorURL, cfg), metrics.NewRPCClient("data_protector"), logger)
		logger.Info("tee mode served by remote data protector", zap.String("url", cfg.DataProtectorURL))
		return privacy.NewTEE(dp), nil
	}

	var (
		e   *enclave.Enclave
		err error
	)
	if cfg.EnclaveKey == "" {
		logger.Warn("enclave key not configured, sealed amounts will not survive a restart")
		e, err = enclave.NewRandom(cfg.WorkerCount, logger)
	} else {
		key, decodeErr := hex.DecodeString(cfg.EnclaveKey)
		if decodeErr != nil {
			return nil, fmt.Errorf("decode enclave key: %w", decodeErr)
		}
		e, err = enclave.New(key, cfg.WorkerCount, logger)
	}
	if err != nil {
		return nil, err
	}
	return privacy.NewTEE(e), nil
}

func buildFHE(cfg PrivacyConfig, logger *zap.Logger) (privacy.Strategy, error) {
	opts := privacy.FHEOptions{
		Await:        cfg.FHEAwait,
		PollInterval: cfg.FHEPollInterval,
		MaxPolls:     cfg.FHEMaxPolls,
	}
	if cfg.RelayerURL != "" {
		relayer := remote.NewRelayer(remoteConfig(cfg.RelayerURL, cfg), metrics.NewRPCClient("relayer"), logger)
		logger.Info("fhe mode served by remote relayer", zap.String("url", cfg.RelayerURL))
		return privacy.NewFHE(relayer, opts, logger), nil
	}

	coprocessor, err := paillier.New(paillier.Config{
		KeyBits:           cfg.PaillierBits,
		DecryptAfterPolls: cfg.DecryptAfterPolls,
		WorkerCount:       cfg.WorkerCount,
	}, logger)
	if err != nil {
		return nil, err
	}
	return privacy.NewFHE(coprocessor, opts, logger), nil
}

func remoteConfig(baseURL string, cfg PrivacyConfig) remote.Config {
	return remote.Config{
		BaseURL: baseURL,
		APIKey:  cfg.RemoteAPIKey,
		Timeout: cfg.RemoteTimeout,
	}
}

// buildGateway returns a nil interface when the chain is not configured so the engine keeps pools off-chain.
func buildGateway(app *App, cfg ChainConfig, logger *zap.Logger) (service.Gateway, error) {
	if cfg.RPCURL == "" {
		logger.Info("settlement backend not configured, pools stay off-chain")
		return nil, nil
	}
	client, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return nil, fmt.Errorf("init settlement rpc client: %w", err)
	}
	app.onClose(func() {
		client.Shutdown()
		client.WaitForShutdown()
	})

	gateway := chain.NewRPCGateway(
		observedrpc.NewObservedClient(client, metrics.NewRPCClient("settlement_node")),
		metrics.NewRPCClient("chain_gateway"),
		chain.RPCGatewayConfig{
			ReadAttempts:   cfg.ReadAttempts,
			ReadRetryDelay: cfg.ReadRetryDelay,
		},
		logger,
	)
	height, err := gateway.Height()
	if err != nil {
		logger.Warn("settlement node not reachable yet", zap.Error(err))
	} else {
		logger.Info("connected to settlement node", zap.Int64("height", height))
	}
	return gateway, nil
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host + parsed.Path,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   parsed.Scheme == "http",
	}, nil)
}

func buildJournal(ctx context.Context, app *App, cfg JournalConfig, logger *zap.Logger) (service.Journal, error) {
	if cfg.ClickhouseDSN == "" {
		logger.Info("clickhouse not configured, pool journal disabled")
		return nil, nil
	}
	store, err := clickhouse.NewJournal(cfg.ClickhouseDSN, metrics.NewRepository("clickhouse"))
	if err != nil {
		return nil, fmt.Errorf("init pool journal: %w", err)
	}
	app.onClose(func() {
		if err := store.Close(); err != nil {
			logger.Warn("close clickhouse connection", zap.Error(err))
		}
	})

	recorder := journal.NewRecorder(store, batcher.Config{
		FlushSize:     cfg.FlushSize,
		FlushInterval: cfg.FlushInterval,
		RPS:           cfg.FlushRPS,
	}, metrics.NewJournal(), logger)
	recorder.Start(context.WithoutCancel(ctx))
	app.onClose(recorder.Stop)
	return recorder, nil
}
