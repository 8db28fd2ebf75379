package report

import (
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectolinq"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/store"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/views"
)

// Register registers daily report routes
func Register(g *echo.Group) {
	g.GET("", List)
	g.GET("/:date", GetByDate)
}

// List returns daily reports newest-first, optionally narrowed to one rep
func List(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "report_handler.List")
	defer span.End()

	_, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}
	if err := s.EnsureReady(); err != nil {
		return err
	}

	items := s.Reports()
	items = views.FilterByField(items, c.QueryParam("sales_person"), func(r models.DailyReport) string {
		return r.SalesPerson
	})
	items = views.SortByDateTimeDesc(items,
		func(r models.DailyReport) string { return r.Date },
		func(r models.DailyReport) string { return r.CreatedAt },
	)

	return c.JSON(http.StatusOK, models.DailyReportListResponse{
		Items:      items,
		TotalCount: len(items),
	})
}

// GetByDate returns the reports filed on one date
func GetByDate(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "report_handler.GetByDate")
	defer span.End()

	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	_, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}
	if err := s.EnsureReady(); err != nil {
		return err
	}

	// The path segment is an exact date, so the query-filter sentinels do
	// not apply here.
	items := ectolinq.Filter(s.Reports(), func(r models.DailyReport) bool {
		return r.Date == date
	})

	return c.JSON(http.StatusOK, models.DailyReportListResponse{
		Items:      items,
		TotalCount: len(items),
	})
}
