package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/bootstrap"
	"github.com/goodnatureofminers/giftpool-backend/internal/metrics"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/alias"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/service/refresher"
	"github.com/goodnatureofminers/giftpool-backend/internal/transport"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type config struct {
	Addr        string        `long:"addr" env:"API_GATEWAY_ADDR" description:"gRPC addr" default:":8000"`
	RestAddr    string        `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"rest addr" default:":8001"`
	AliasFile   string        `long:"alias-file" env:"API_GATEWAY_ALIAS_FILE" description:"YAML file with display names of addresses"`
	Refresh     bool          `long:"refresh" env:"API_GATEWAY_REFRESH" description:"run the aggregate refresher in process"`
	RefreshIdle time.Duration `long:"refresh-idle" env:"API_GATEWAY_REFRESH_IDLE" description:"refresher sleep when nothing is pending" default:"30s"`

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
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	app, err := bootstrap.Build(ctx, cfg.Config, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	var names alias.Resolver
	if cfg.AliasFile != "" {
		static, err := alias.LoadStaticResolver(cfg.AliasFile)
		if err != nil {
			return err
		}
		names = static
	}

	if cfg.Refresh {
		svc, err := refresher.NewService(app.Engine, metrics.NewRefresher(), refresher.Config{IdleSleep: cfg.RefreshIdle}, logger)
		if err != nil {
			return fmt.Errorf("init refresher: %w", err)
		}
		go func() {
			if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("aggregate refresher stopped", zap.Error(err))
			}
		}()
	}

	grpcServer, err := startGRPCServer(ctx, cfg.Addr, logger)
	if err != nil {
		return err
	}
	defer grpcServer.Stop()

	gw := gwruntime.NewServeMux()
	if err := transport.NewPoolHandler(app.Engine, names, logger).Register(gw); err != nil {
		return fmt.Errorf("register pool routes: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func startGRPCServer(ctx context.Context, addr string, logger *zap.Logger) (*grpc.Server, error) {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	healthpb.RegisterHealthServer(grpcServer, transport.NewHealthServer())
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("GRPC server stopped", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()
	return grpcServer, nil
}
