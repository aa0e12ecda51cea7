package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/reelgate/reelgate/internal/config"
	"github.com/reelgate/reelgate/internal/logging"
	"github.com/reelgate/reelgate/internal/service"
	"github.com/reelgate/reelgate/internal/store"
	"github.com/reelgate/reelgate/internal/telemetry"
	pb "github.com/reelgate/reelgate/proto/record"
)

func main() {
	cfg := config.LoadOrDefault()

	addr := flag.String("addr", cfg.Server.Addr, "gRPC listen address")
	otlp := flag.String("otlp", cfg.Telemetry.OTLPEndpoint, "OTLP trace endpoint")
	flag.Parse()

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
	provider, err := telemetry.Init(context.Background(), "record-server",
		cfg.Telemetry.Environment, endpoint)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}

	svc := service.New(store.NewMemory(), provider.Tracer(),
		telemetry.NewPropagator(), logger)

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", *addr), zap.Error(err))
	}

	grpcServer := grpc.NewServer()
	pb.RegisterRecordServiceServer(grpcServer, svc)

	logger.Info("record service listening", zap.String("addr", *addr))

	errChan := make(chan error, 1)
	go func() {
		errChan <- grpcServer.Serve(lis)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("shutting down gracefully")
		grpcServer.GracefulStop()
	case err := <-errChan:
		if err != nil {
			logger.Error("server error", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := provider.Shutdown(ctx); err != nil {
		logger.Warn("tracer shutdown failed", zap.Error(err))
	}
}
