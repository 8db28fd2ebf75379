package options

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/store"
)

// Register registers dropdown option routes
func Register(g *echo.Group) {
	g.GET("", Get)
}

// Get returns the dropdown vocabularies for the form UIs. Statuses and types
// are fixed label sets; pipeline stages and sales reps are derived from the
// loaded analytics snapshot, so they are empty until the store hydrates.
func Get(c echo.Context) error {
	ctx := c.Request().Context()

	_, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}

	analytics := s.Analytics()
	reps := make([]string, 0, len(analytics.SalesPerformance.SalesTeam))
	for _, rep := range analytics.SalesPerformance.SalesTeam {
		reps = append(reps, rep.Name)
	}

	return c.JSON(http.StatusOK, models.OptionLists{
		CustomerStatuses:   models.DefaultCustomerStatuses,
		CommunicationTypes: models.DefaultCommunicationTypes,
		EventTypes:         models.DefaultEventTypes,
		PipelineStages:     analytics.PipelineStages(),
		SalesReps:          reps,
	})
}
