package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/bootstrap"
	"github.com/goodnatureofminers/giftpool-backend/internal/metrics"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/service/refresher"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	WorkerCount    int           `long:"worker-count" env:"REFRESHER_WORKER_COUNT" description:"pools refreshed in parallel" default:"4"`
	Sleep          time.Duration `long:"sleep" env:"REFRESHER_SLEEP" description:"pause after a pass with pending pools" default:"5s"`
	IdleSleep      time.Duration `long:"idle-sleep" env:"REFRESHER_IDLE_SLEEP" description:"pause after a pass without pending pools" default:"30s"`
	RefreshTimeout time.Duration `long:"refresh-timeout" env:"REFRESHER_REFRESH_TIMEOUT" description:"timeout of one pool refresh" default:"1m"`
	MetricsAddr    string        `long:"metrics-addr" env:"REFRESHER_METRICS_ADDR" description:"address for metrics server" default:":2112"`

	bootstrap.Config
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.Store.RedisAddr == "" {
		logger.Fatal("redis address is required, the refresher cannot see an in-memory ledger")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("aggregate refresher failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	app, err := bootstrap.Build(ctx, cfg.Config, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	svc, err := refresher.NewService(app.Engine, metrics.NewRefresher(), refresher.Config{
		WorkerCount:    cfg.WorkerCount,
		Sleep:          cfg.Sleep,
		IdleSleep:      cfg.IdleSleep,
		RefreshTimeout: cfg.RefreshTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("init refresher: %w", err)
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
