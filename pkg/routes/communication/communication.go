package communication

import (
	"net/http"
	"strconv"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectolinq"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/store"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/views"
)

// Register registers communication routes
func Register(g *echo.Group) {
	g.GET("", List)
	g.GET("/timeline", Timeline)
}

// List returns communications, optionally narrowed to one customer and one
// touchpoint type.
func List(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "communication_handler.List")
	defer span.End()

	_, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}
	if err := s.EnsureReady(); err != nil {
		return err
	}

	items := s.Communications()
	if raw := c.QueryParam("customer_id"); raw != "" {
		customerID, err := strconv.Atoi(raw)
		if err != nil {
			return httperror.NewHTTPError(http.StatusBadRequest, "customer_id must be an integer")
		}
		items = ectolinq.Filter(items, func(cm models.Communication) bool {
			return cm.CustomerID == customerID
		})
	}
	items = views.FilterByField(items, c.QueryParam("type"), func(cm models.Communication) string {
		return cm.Type
	})

	return c.JSON(http.StatusOK, models.CommunicationListResponse{
		Items:      items,
		TotalCount: len(items),
	})
}

// Timeline returns all communications newest-first. Entries sharing a date
// and time keep their fixture order.
func Timeline(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "communication_handler.Timeline")
	defer span.End()

	_, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}
	if err := s.EnsureReady(); err != nil {
		return err
	}

	items := views.SortByDateTimeDesc(s.Communications(),
		func(cm models.Communication) string { return cm.Date },
		func(cm models.Communication) string { return cm.Time },
	)

	return c.JSON(http.StatusOK, models.CommunicationListResponse{
		Items:      items,
		TotalCount: len(items),
	})
}
