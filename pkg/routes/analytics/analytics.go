package analytics

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/store"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Register registers analytics routes
func Register(g *echo.Group) {
	g.GET("", Get)
}

// Get returns the precomputed analytics snapshot. The snapshot is fixture
// data served verbatim; this service does not recompute it from the other
// collections.
func Get(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "analytics_handler.Get")
	defer span.End()

	_, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}
	if err := s.EnsureReady(); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, s.Analytics())
}
