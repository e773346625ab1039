package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/paddock/internal/config"
	"github.com/yourusername/paddock/internal/health"
	"github.com/yourusername/paddock/internal/metrics"
	"github.com/yourusername/paddock/internal/repository"
)

// RouterConfig holds what NewRouter needs.
type RouterConfig struct {
	Repositories *repository.Repositories
	Health       *health.Checker
	Logger       *logrus.Logger
	Server       config.ServerConfig
	Metrics      config.MetricsConfig
}

// NewRouter builds the gin engine: probes at the root, the metrics endpoint
// when enabled, and the entity API under /api.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(cfg.Logger), Metrics())

	if cfg.Health != nil {
		cfg.Health.Register(r)
	}
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	group := r.Group("/api", RateLimit(cfg.Server.RateLimit.RequestsPerSecond, cfg.Server.RateLimit.Burst))
	NewHandler(cfg.Repositories, cfg.Logger).Register(group)

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "ROUTE_NOT_FOUND", errors.New("no route for "+c.Request.Method+" "+c.Request.URL.Path))
	})
	return r
}

// Server runs the API over HTTP.
type Server struct {
	server *http.Server
	logger *logrus.Logger
}

// NewServer wraps handler in an http.Server configured from cfg.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *logrus.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout(),
			WriteTimeout: cfg.WriteTimeout(),
			IdleTimeout:  cfg.IdleTimeout(),
		},
		logger: logger,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.server.Addr).Info("API server starting")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	return s.Shutdown()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	s.logger.Info("API server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
