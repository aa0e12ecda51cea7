package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/reelgate/reelgate/internal/config"
	"github.com/reelgate/reelgate/internal/logging"
	"github.com/reelgate/reelgate/internal/metrics"
)

// Server wires the router, handlers, and metrics collector into one HTTP
// server with graceful shutdown.
type Server struct {
	router    *gin.Engine
	http      *http.Server
	collector *metrics.Collector
	logger    *logging.Logger

	cancelCollector context.CancelFunc
}

// NewServer assembles the gateway around an already-dialed backend client.
func NewServer(cfg *config.Config, h *Handlers, m *metrics.Metrics, logger *logging.Logger) *Server {
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware(m))

	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.POST("/records", h.CreateRecord)
	router.GET("/records", h.ListRecords)
	router.GET("/records/:id", h.GetRecord)
	router.PUT("/records/:id", h.UpdateRecord)
	router.DELETE("/records/:id", h.DeleteRecord)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.Gateway.Host + ":" + cfg.Gateway.Port,
			Handler: router,
		},
		collector: metrics.NewCollector(m, cfg.Gateway.SampleInterval, logger.Logger),
		logger:    logger,
	}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the resource sampler and serves until the listener fails or
// Shutdown is called.
func (s *Server) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelCollector = cancel
	go s.collector.Run(ctx)

	s.logger.Info("gateway listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the sampler and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cancelCollector != nil {
		s.cancelCollector()
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
