package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/reelgate/reelgate/internal/config"
	"github.com/reelgate/reelgate/internal/gateway"
	"github.com/reelgate/reelgate/internal/logging"
	"github.com/reelgate/reelgate/internal/metrics"
	"github.com/reelgate/reelgate/internal/telemetry"
)

func main() {
	cfg := config.LoadOrDefault()

	port := flag.String("port", cfg.Gateway.Port, "HTTP listen port")
	backend := flag.String("backend", cfg.Gateway.BackendAddr, "record service gRPC address")
	otlp := flag.String("otlp", cfg.Telemetry.OTLPEndpoint, "OTLP trace endpoint")
	flag.Parse()
	cfg.Gateway.Port = *port
	cfg.Gateway.BackendAddr = *backend

	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}
	defer logger.Sync()

	endpoint := *otlp
	if !cfg.Telemetry.Enabled {
		endpoint = ""
	}
	provider, err := telemetry.Init(context.Background(), "record-gateway",
		cfg.Telemetry.Environment, endpoint)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}

	client, err := gateway.Dial(cfg.Gateway.BackendAddr)
	if err != nil {
		logger.Fatal("failed to connect to record service",
			zap.String("addr", cfg.Gateway.BackendAddr), zap.Error(err))
	}
	logger.Info("connected to record service", zap.String("addr", cfg.Gateway.BackendAddr))

	m := metrics.New()
	handlers := gateway.NewHandlers(client, m, provider.Tracer(),
		telemetry.NewPropagator(), logger)
	srv := gateway.NewServer(cfg, handlers, m, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("shutting down gracefully")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	case err := <-errChan:
		if err != nil {
			logger.Error("gateway error", zap.Error(err))
		}
	}

	if err := client.Close(); err != nil {
		logger.Warn("client close failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := provider.Shutdown(ctx); err != nil {
		logger.Warn("tracer shutdown failed", zap.Error(err))
	}
}
