// Package health exposes the liveness and readiness endpoints. Readiness
// tracks the domain store's hydration state rather than a process flag, so
// traffic is only admitted once fixture data is loaded.
package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/store"
)

// Checker handles health check endpoints
type Checker struct {
	store     *store.Store
	version   string
	startTime time.Time
}

// NewChecker creates a new health checker
func NewChecker(s *store.Store, version string) *Checker {
	return &Checker{
		store:     s,
		version:   version,
		startTime: time.Now(),
	}
}

// RegisterRoutes registers health check endpoints
func (c *Checker) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/health", c.Health)
	e.GET("/api/v1/health/live", c.Live)
	e.GET("/api/v1/health/ready", c.Ready)
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string                  `json:"status"`
	Version    string                  `json:"version"`
	Uptime     string                  `json:"uptime"`
	Checks     map[string]*CheckResult `json:"checks"`
	ReportedAt time.Time               `json:"reported_at"`
}

// CheckResult represents an individual check result
type CheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health returns the overall health status
func (c *Checker) Health(ctx echo.Context) error {
	status := &HealthStatus{
		Status:     "healthy",
		Version:    c.version,
		Uptime:     time.Since(c.startTime).Round(time.Second).String(),
		Checks:     make(map[string]*CheckResult),
		ReportedAt: time.Now(),
	}

	storeStatus, loadErr := c.store.Status()
	switch storeStatus {
	case store.StatusReady:
		status.Checks["store"] = &CheckResult{Status: "healthy"}
	case store.StatusLoadFailed:
		// A store that hydrated at least once keeps serving stale data
		check := &CheckResult{Status: "degraded", Message: loadErr}
		if c.store.HydratedAt().IsZero() {
			check.Status = "unhealthy"
			status.Status = "unhealthy"
		} else {
			status.Status = "degraded"
		}
		status.Checks["store"] = check
	default:
		status.Status = "unhealthy"
		status.Checks["store"] = &CheckResult{
			Status:  "unhealthy",
			Message: "store is still loading",
		}
	}

	httpStatus := http.StatusOK
	if status.Status == "unhealthy" {
		httpStatus = http.StatusServiceUnavailable
	}

	return ctx.JSON(httpStatus, status)
}

// Live returns the liveness status (is the service running)
func (c *Checker) Live(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "alive"})
}

// Ready returns the readiness status (is the service ready to accept traffic)
func (c *Checker) Ready(ctx echo.Context) error {
	if err := c.store.EnsureReady(); err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
	}
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
