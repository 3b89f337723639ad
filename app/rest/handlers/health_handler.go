package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// DependencyChecker reports whether an upstream dependency is reachable
type DependencyChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	db     DependencyChecker
	kratos DependencyChecker
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db, kratos DependencyChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		kratos: kratos,
		logger: logger.With("component", "health_handler"),
	}
}

// HealthResponse is the public health check shape
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Features  []string  `json:"features"`
}

// HealthStatus describes one dependency in the readiness response
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency"`
}

// ReadinessResponse is the readiness check shape
type ReadinessResponse struct {
	Status string                  `json:"status"`
	Uptime string                  `json:"uptime"`
	Checks map[string]HealthStatus `json:"checks"`
}

// HealthCheck handles GET /api/health. Always healthy when reached; the
// feature list is part of the public contract.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   "ThinkSync Enhanced Edition",
		Version:   "2.0.0",
		Timestamp: time.Now().UTC(),
		Features: []string{
			"User Authentication & Authorization",
			"Advanced Sentiment Analysis",
			"Session Management & Persistence",
			"SOAP/BIRP Clinical Documentation",
			"Multi-format Export Capabilities",
			"Admin Dashboard & User Management",
		},
	})
}

// LivenessCheck handles GET /api/health/live
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "alive"})
}

// ReadinessCheck handles GET /api/health/ready. Probes the database and
// the identity provider; answers 503 when either is down.
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx := c.Request().Context()

	checks := map[string]HealthStatus{
		"database": h.check(ctx, h.db),
		"kratos":   h.check(ctx, h.kratos),
	}

	status := "ready"
	code := http.StatusOK
	for name, check := range checks {
		if check.Status != "healthy" {
			h.logger.Warn("dependency unhealthy", "dependency", name, "message", check.Message)
			status = "not ready"
			code = http.StatusServiceUnavailable
		}
	}

	return c.JSON(code, ReadinessResponse{
		Status: status,
		Uptime: time.Since(startTime).String(),
		Checks: checks,
	})
}

func (h *HealthHandler) check(ctx context.Context, dep DependencyChecker) HealthStatus {
	start := time.Now()
	if err := dep.HealthCheck(ctx); err != nil {
		return HealthStatus{
			Status:  "unhealthy",
			Message: err.Error(),
			Latency: time.Since(start).String(),
		}
	}
	return HealthStatus{
		Status:  "healthy",
		Latency: time.Since(start).String(),
	}
}
