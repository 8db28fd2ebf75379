package task

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/store"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/views"
)

// Register registers task routes
func Register(g *echo.Group) {
	g.GET("", List)
}

// List returns tasks, optionally narrowed by exact status, priority and
// assignee filters. All three accept the "all" sentinel.
func List(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "task_handler.List")
	defer span.End()

	_, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}
	if err := s.EnsureReady(); err != nil {
		return err
	}

	items := s.Tasks()
	items = views.FilterByField(items, c.QueryParam("status"), func(t models.Task) string {
		return t.Status
	})
	items = views.FilterByField(items, c.QueryParam("priority"), func(t models.Task) string {
		return t.Priority
	})
	items = views.FilterByField(items, c.QueryParam("assigned_to"), func(t models.Task) string {
		return t.AssignedTo
	})

	return c.JSON(http.StatusOK, models.TaskListResponse{
		Items:      items,
		TotalCount: len(items),
	})
}
