// Package health serves liveness and readiness probes for the API.
package health

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

// DatabasePinger defines the interface for checking database connectivity.
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp,omitempty"`
	Version   string `json:"version,omitempty"`
}

// ReadyResponse represents the JSON response for readiness check endpoints.
type ReadyResponse struct {
	Status   string            `json:"status"`
	Service  string            `json:"service"`
	Checks   map[string]string `json:"checks,omitempty"`
	Duration string            `json:"duration,omitempty"`
}

// Checker answers the /health, /live and /ready probes.
type Checker struct {
	serviceName string
	version     string
	db          DatabasePinger
	pingTimeout time.Duration
	ready       atomic.Bool
}

// NewChecker creates a checker. It reports not ready until SetReady(true).
func NewChecker(serviceName, version string, db DatabasePinger) *Checker {
	return &Checker{
		serviceName: serviceName,
		version:     version,
		db:          db,
		pingTimeout: 3 * time.Second,
	}
}

// SetReady marks the service as ready to accept traffic.
func (c *Checker) SetReady(ready bool) {
	c.ready.Store(ready)
}

// IsReady returns whether the service is ready.
func (c *Checker) IsReady() bool {
	return c.ready.Load()
}

// Register mounts the probe endpoints on r.
func (c *Checker) Register(r gin.IRoutes) {
	r.GET("/health", c.handleHealth)
	r.GET("/live", c.handleLive)
	r.GET("/ready", c.handleReady)
}

func (c *Checker) handleHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   c.serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   c.version,
	})
}

func (c *Checker) handleLive(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{Status: "ok", Service: c.serviceName})
}

// handleReady reports 503 until the service is marked ready and the database answers.
func (c *Checker) handleReady(ctx *gin.Context) {
	start := time.Now()
	checks := make(map[string]string)
	healthy := true

	if c.IsReady() {
		checks["service"] = "ok"
	} else {
		healthy = false
		checks["service"] = "not_ready"
	}

	if c.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), c.pingTimeout)
		defer cancel()

		if err := c.db.Ping(pingCtx); err != nil {
			healthy = false
			checks["database"] = "error: " + err.Error()
		} else {
			checks["database"] = "ok"
		}
	}

	response := ReadyResponse{
		Status:   "ok",
		Service:  c.serviceName,
		Checks:   checks,
		Duration: time.Since(start).String(),
	}
	status := http.StatusOK
	if !healthy {
		response.Status = "not_ready"
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, response)
}
