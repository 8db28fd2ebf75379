// Package hydrate exposes the manual hydration endpoints. A failed startup
// load leaves the store in the load_failed state; POST /hydrate retries the
// fixture fetch without restarting the process.
package hydrate

import (
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/events"
	"github.com/Ramsey-B/fern/pkg/fixtures"
	"github.com/Ramsey-B/fern/pkg/store"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Register registers hydration routes
func Register(g *echo.Group) {
	g.POST("", Trigger)
	g.GET("/status", GetStatus)
}

// StatusResponse reports the store's hydration state
type StatusResponse struct {
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
	HydratedAt time.Time `json:"hydrated_at,omitempty"`
}

// Trigger re-fetches the fixture dataset and atomically replaces the store
// contents. On failure the previous dataset (if any) stays in place.
func Trigger(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "hydrate_handler.Trigger")
	defer span.End()

	ctx, loader, err := ectoinject.GetContext[*fixtures.Loader](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get fixture loader")
	}

	ctx, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}

	if err := loader.Hydrate(ctx, s); err != nil {
		return httperror.WrapError(http.StatusBadGateway, err)
	}

	if ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx); err == nil {
		emitter.EmitStoreHydrated(ctx, map[string]int{
			"customers":      len(s.Customers()),
			"opportunities":  len(s.Opportunities()),
			"communications": len(s.Communications()),
			"tasks":          len(s.Tasks()),
			"events":         len(s.Events()),
			"reports":        len(s.Reports()),
		})
	}

	return GetStatus(c)
}

// GetStatus returns the current hydration state
func GetStatus(c echo.Context) error {
	ctx := c.Request().Context()

	_, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}

	status, loadErr := s.Status()
	resp := StatusResponse{
		Status: string(status),
		Error:  loadErr,
	}
	if at := s.HydratedAt(); !at.IsZero() {
		resp.HydratedAt = at
	}

	return c.JSON(http.StatusOK, resp)
}
