package calendarevent

import (
	"net/http"
	"time"

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

// Register registers calendar event routes
func Register(g *echo.Group) {
	g.GET("", List)
	g.POST("", Create)
	g.GET("/grid", Grid)
	g.GET("/day/:date", Day)
}

// List returns all calendar events
func List(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "calendarevent_handler.List")
	defer span.End()

	_, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}
	if err := s.EnsureReady(); err != nil {
		return err
	}

	items := s.Events()

	return c.JSON(http.StatusOK, models.CalendarEventListResponse{
		Items:      items,
		TotalCount: len(items),
	})
}

// Create creates a new calendar event
func Create(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "calendarevent_handler.Create")
	defer span.End()

	draft, err := utils.BindRequest[models.CalendarEventDraft](c)
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

	event, err := s.AddCalendarEvent(draft)
	if err != nil {
		return err
	}

	if ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx); err == nil {
		emitter.EmitCalendarEventCreated(ctx, event)
	}

	return c.JSON(http.StatusCreated, models.CalendarEventResponse{CalendarEvent: event})
}

// GridResponse is the month view: the six-week cell grid plus the events of
// each day in the grid keyed by date.
type GridResponse struct {
	Grid   views.CalendarGrid                `json:"grid"`
	Events map[string][]models.CalendarEvent `json:"events"`
}

// Grid returns the month grid for ?month=YYYY-MM (default: current month).
// The optional ?selected=YYYY-MM-DD marks one cell as selected.
func Grid(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "calendarevent_handler.Grid")
	defer span.End()

	_, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}
	if err := s.EnsureReady(); err != nil {
		return err
	}

	now := time.Now().UTC()
	anchor := now
	if raw := c.QueryParam("month"); raw != "" {
		anchor, err = time.Parse("2006-01", raw)
		if err != nil {
			return httperror.NewHTTPError(http.StatusBadRequest, "month must be YYYY-MM")
		}
	}

	grid := views.BuildCalendarGrid(anchor, c.QueryParam("selected"), now)

	return c.JSON(http.StatusOK, GridResponse{
		Grid:   grid,
		Events: views.GroupByDate(s.Events()),
	})
}

// Day returns the agenda for one date, earliest start time first
func Day(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "calendarevent_handler.Day")
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

	items := views.SortByDateTimeAsc(views.EventsOnDate(s.Events(), date),
		func(e models.CalendarEvent) string { return e.Date },
		func(e models.CalendarEvent) string { return e.StartTime },
	)

	return c.JSON(http.StatusOK, models.CalendarEventListResponse{
		Items:      items,
		TotalCount: len(items),
	})
}
