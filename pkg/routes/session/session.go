// Package session exposes the UI selection state: active tab, search and
// filter terms, selected calendar date and modal/draft state. Clients read
// it back after a reload to rebuild the screen they were on.
package session

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/store"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/utils"
)

// Register registers session routes
func Register(g *echo.Group) {
	g.GET("", Get)
	g.PATCH("", Patch)
}

// Get returns the current session state
func Get(c echo.Context) error {
	ctx := c.Request().Context()

	_, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}

	return c.JSON(http.StatusOK, s.Session())
}

// Patch applies a partial session update and returns the resulting state.
// Nil fields are left untouched; unknown tab names are rejected.
func Patch(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "session_handler.Patch")
	defer span.End()

	patch, err := utils.BindRequest[models.SessionPatch](c)
	if err != nil {
		return err
	}

	_, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}

	state, err := s.UpdateSession(patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, state)
}
