package opportunity

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/events"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/store"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/utils"
	"github.com/Ramsey-B/fern/pkg/views"
)

// Register registers sales opportunity routes
func Register(g *echo.Group) {
	g.GET("", List)
	g.POST("", Create)
	g.GET("/kanban", Kanban)
}

// List returns opportunities, optionally narrowed by a free-text search term
// (q, matching title and customer name) and an exact stage filter.
func List(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "opportunity_handler.List")
	defer span.End()

	ctx, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}
	if err := s.EnsureReady(); err != nil {
		return err
	}

	items := s.Opportunities()
	items = views.FilterByText(items, c.QueryParam("q"), func(o models.SalesOpportunity) []string {
		return []string{o.Title, o.CustomerName}
	})
	items = views.FilterByField(items, c.QueryParam("stage"), func(o models.SalesOpportunity) string {
		return o.Stage
	})

	return c.JSON(http.StatusOK, models.OpportunityListResponse{
		Items:      items,
		TotalCount: len(items),
	})
}

// Create creates a new sales opportunity
func Create(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "opportunity_handler.Create")
	defer span.End()

	draft, err := utils.BindRequest[models.OpportunityDraft](c)
	if err != nil {
		return err
	}

	ctx, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}
	if err := s.EnsureReady(); err != nil {
		return err
	}

	opp, err := s.AddOpportunity(draft)
	if err != nil {
		return err
	}

	if ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx); err == nil {
		emitter.EmitOpportunityCreated(ctx, opp)
	}

	return c.JSON(http.StatusCreated, models.OpportunityResponse{SalesOpportunity: opp})
}

// Kanban returns the pipeline board: one bucket per stage from the analytics
// snapshot, in pipeline order, plus an unbucketed overflow for opportunities
// whose stage matches no known bucket.
func Kanban(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "opportunity_handler.Kanban")
	defer span.End()

	_, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}
	if err := s.EnsureReady(); err != nil {
		return err
	}

	analytics := s.Analytics()
	board := views.GroupByStage(s.Opportunities(), analytics.PipelineStages())

	return c.JSON(http.StatusOK, board)
}
