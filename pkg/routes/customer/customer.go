package customer

import (
	"net/http"
	"strconv"

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

// Register registers customer routes
func Register(g *echo.Group) {
	g.GET("", List)
	g.POST("", Create)
	g.GET("/:id", Get)
	g.PUT("/:id", Update)
}

// List returns customers, optionally narrowed by a free-text search term (q)
// and an exact status filter. Both filters mirror the customer screen: the
// text search matches company name, contact name and industry.
func List(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "customer_handler.List")
	defer span.End()

	ctx, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}
	if err := s.EnsureReady(); err != nil {
		return err
	}

	items := s.Customers()
	items = views.FilterByText(items, c.QueryParam("q"), func(cu models.Customer) []string {
		return []string{cu.CompanyName, cu.ContactName, cu.Industry}
	})
	items = views.FilterByField(items, c.QueryParam("status"), func(cu models.Customer) string {
		return cu.Status
	})

	return c.JSON(http.StatusOK, models.CustomerListResponse{
		Items:      items,
		TotalCount: len(items),
	})
}

// Get returns a single customer by id
func Get(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "customer_handler.Get")
	defer span.End()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	_, s, err := ectoinject.GetContext[*store.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get store")
	}
	if err := s.EnsureReady(); err != nil {
		return err
	}

	customer, ok := s.GetCustomer(id)
	if !ok {
		return httperror.NewHTTPError(http.StatusNotFound, "customer not found")
	}

	return c.JSON(http.StatusOK, models.CustomerResponse{Customer: customer})
}

// Create creates a new customer
func Create(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "customer_handler.Create")
	defer span.End()

	draft, err := utils.BindRequest[models.CustomerDraft](c)
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

	customer, err := s.UpsertCustomer(draft, nil)
	if err != nil {
		return err
	}

	if ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx); err == nil {
		emitter.EmitCustomerCreated(ctx, customer)
	}

	return c.JSON(http.StatusCreated, models.CustomerResponse{Customer: customer})
}

// Update replaces an existing customer wholesale. The id and createdDate are
// preserved from the stored record; lastContact is restamped to today.
func Update(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "customer_handler.Update")
	defer span.End()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	draft, err := utils.BindRequest[models.CustomerDraft](c)
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

	customer, err := s.UpsertCustomer(draft, &id)
	if err != nil {
		return err
	}

	if ctx, emitter, err := ectoinject.GetContext[*events.Emitter](ctx); err == nil {
		emitter.EmitCustomerUpdated(ctx, customer)
	}

	return c.JSON(http.StatusOK, models.CustomerResponse{Customer: customer})
}
