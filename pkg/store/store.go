// Package store owns the in-memory CRM collections and the UI session
// state. Every mutation takes the write lock and either fully applies or
// fully no-ops, so readers always observe a consistent snapshot.
package store

import (
	"sync"
	"time"

	"github.com/Ramsey-B/fern/pkg/models"
)

// Status is the hydration state of the store
type Status string

const (
	// StatusLoading means no fixture payload has been applied yet
	StatusLoading Status = "loading"
	// StatusReady means all collections are hydrated
	StatusReady Status = "ready"
	// StatusLoadFailed means the last hydrate attempt failed; the previous
	// collections (if any) remain readable
	StatusLoadFailed Status = "load_failed"
)

// Payload is one complete fixture dataset. Hydrate replaces all collections
// atomically; there is no partial hydrate.
type Payload struct {
	Customers      []models.Customer
	Opportunities  []models.SalesOpportunity
	Communications []models.Communication
	Tasks          []models.Task
	Events         []models.CalendarEvent
	Reports        []models.DailyReport
	Analytics      models.Analytics
}

// Store is the domain store. A single instance is registered with the DI
// container and shared by all handlers.
type Store struct {
	mu sync.RWMutex

	status     Status
	loadErr    string
	hydratedAt time.Time

	customers      []models.Customer
	opportunities  []models.SalesOpportunity
	communications []models.Communication
	tasks          []models.Task
	events         []models.CalendarEvent
	reports        []models.DailyReport
	analytics      models.Analytics

	session models.SessionState

	now func() time.Time
}

// New creates an empty store in the loading state
func New() *Store {
	return &Store{
		status: StatusLoading,
		session: models.SessionState{
			ActiveTab: models.TabDashboard,
			Filters:   map[string]string{},
		},
		now: time.Now,
	}
}

// NewWithClock creates a store with a fixed clock, for tests
func NewWithClock(now func() time.Time) *Store {
	s := New()
	s.now = now
	return s
}

func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}

// Status returns the hydration state and, when load failed, the error message
func (s *Store) Status() (Status, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.loadErr
}

// EnsureReady returns a not-ready error until the first successful hydrate.
// After that the store keeps serving its last dataset even when a later
// reload fails.
func (s *Store) EnsureReady() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.hydratedAt.IsZero() {
		return &DomainError{Kind: ErrorKindNotReady, Message: "store has not been hydrated"}
	}
	return nil
}

// HydratedAt returns when the current dataset was applied
func (s *Store) HydratedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydratedAt
}

// Hydrate atomically replaces every collection with the given payload and
// moves the store to the ready state.
func (s *Store) Hydrate(p Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = p.Customers
	s.opportunities = p.Opportunities
	s.communications = p.Communications
	s.tasks = p.Tasks
	s.events = p.Events
	s.reports = p.Reports
	s.analytics = p.Analytics

	s.status = StatusReady
	s.loadErr = ""
	s.hydratedAt = s.now()
}

// MarkLoadFailed records a failed hydrate attempt. Existing collections are
// left untouched so a previously-ready store keeps serving stale data.
func (s *Store) MarkLoadFailed(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusLoadFailed
	s.loadErr = err.Error()
}

// UpsertCustomer creates a customer, or replaces one wholesale when
// editingID is set. Edits preserve id and createdDate and restamp
// lastContact; creates allocate max(ids)+1 and stamp both dates.
func (s *Store) UpsertCustomer(draft models.CustomerDraft, editingID *int) (models.Customer, error) {
	if err := requireCustomerFields(draft); err != nil {
		return models.Customer{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := models.Customer{
		CompanyName:   draft.CompanyName,
		ContactName:   draft.ContactName,
		Position:      draft.Position,
		Email:         draft.Email,
		Phone:         draft.Phone,
		Address:       draft.Address,
		Industry:      draft.Industry,
		CompanySize:   draft.CompanySize,
		Revenue:       draft.Revenue,
		Status:        draft.Status,
		AssignedSales: draft.AssignedSales,
		Notes:         draft.Notes,
		LastContact:   s.today(),
	}

	if editingID != nil {
		idx := -1
		for i, c := range s.customers {
			if c.ID == *editingID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return models.Customer{}, &DomainError{Kind: ErrorKindNotFound, Message: "customer not found"}
		}
		record.ID = s.customers[idx].ID
		record.CreatedDate = s.customers[idx].CreatedDate
		s.customers[idx] = record
		return record, nil
	}

	record.ID = nextID(s.customers, func(c models.Customer) int { return c.ID })
	record.CreatedDate = s.today()
	s.customers = append(s.customers, record)
	return record, nil
}

// AddOpportunity creates a sales opportunity. The customer reference must
// resolve to a loaded customer; the denormalized customerName is snapshotted
// from that customer at this instant and never updated afterwards.
func (s *Store) AddOpportunity(draft models.OpportunityDraft) (models.SalesOpportunity, error) {
	if draft.Title == "" {
		return models.SalesOpportunity{}, validationError("title", "is required")
	}
	if draft.CustomerID <= 0 {
		return models.SalesOpportunity{}, validationError("customerId", "is required")
	}
	if draft.Value <= 0 {
		return models.SalesOpportunity{}, validationError("value", "must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var customer *models.Customer
	for i := range s.customers {
		if s.customers[i].ID == draft.CustomerID {
			customer = &s.customers[i]
			break
		}
	}
	if customer == nil {
		return models.SalesOpportunity{}, unknownReferenceError("customerId", draft.CustomerID)
	}

	record := models.SalesOpportunity{
		ID:                nextID(s.opportunities, func(o models.SalesOpportunity) int { return o.ID }),
		Title:             draft.Title,
		CustomerID:        draft.CustomerID,
		CustomerName:      customer.CompanyName,
		Stage:             draft.Stage,
		Probability:       clampProbability(draft.Probability),
		Value:             draft.Value,
		ExpectedCloseDate: draft.ExpectedCloseDate,
		AssignedSales:     draft.AssignedSales,
		CreatedDate:       s.today(),
		LastActivity:      s.today(),
		Description:       draft.Description,
		NextAction:        draft.NextAction,
		CompetitorInfo:    draft.CompetitorInfo,
		DecisionMakers:    draft.DecisionMakers,
	}

	s.opportunities = append(s.opportunities, record)
	return record, nil
}

// AddCalendarEvent creates a calendar event. When the draft carries a
// customerId it must resolve, and the customer's company name replaces
// whatever name was typed; otherwise the free-typed name is kept.
func (s *Store) AddCalendarEvent(draft models.CalendarEventDraft) (models.CalendarEvent, error) {
	if draft.Title == "" {
		return models.CalendarEvent{}, validationError("title", "is required")
	}
	if draft.Date == "" {
		return models.CalendarEvent{}, validationError("date", "is required")
	}
	if draft.AssignedSales == "" {
		return models.CalendarEvent{}, validationError("assignedSales", "is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customerName := draft.CustomerName
	if draft.CustomerID != nil {
		var customer *models.Customer
		for i := range s.customers {
			if s.customers[i].ID == *draft.CustomerID {
				customer = &s.customers[i]
				break
			}
		}
		if customer == nil {
			return models.CalendarEvent{}, unknownReferenceError("customerId", *draft.CustomerID)
		}
		customerName = &customer.CompanyName
	}

	eventType := draft.Type
	if eventType == "" {
		eventType = models.EventTypeOther
	}

	record := models.CalendarEvent{
		ID:                   nextID(s.events, func(e models.CalendarEvent) int { return e.ID }),
		Title:                draft.Title,
		Description:          draft.Description,
		Type:                 eventType,
		Date:                 draft.Date,
		StartTime:            draft.StartTime,
		EndTime:              draft.EndTime,
		AssignedSales:        draft.AssignedSales,
		CustomerID:           draft.CustomerID,
		CustomerName:         customerName,
		Location:             draft.Location,
		Status:               models.EventStatusScheduled,
		Notes:                draft.Notes,
		RelatedOpportunityID: draft.RelatedOpportunityID,
	}

	s.events = append(s.events, record)
	return record, nil
}

// Customers returns a copy of the customer collection
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Customer(nil), s.customers...)
}

// GetCustomer returns the customer with the given id
func (s *Store) GetCustomer(id int) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// Opportunities returns a copy of the opportunity collection
func (s *Store) Opportunities() []models.SalesOpportunity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SalesOpportunity(nil), s.opportunities...)
}

// Communications returns a copy of the communication collection
func (s *Store) Communications() []models.Communication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Communication(nil), s.communications...)
}

// Tasks returns a copy of the task collection
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task(nil), s.tasks...)
}

// Events returns a copy of the calendar event collection
func (s *Store) Events() []models.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CalendarEvent(nil), s.events...)
}

// Reports returns a copy of the daily report collection
func (s *Store) Reports() []models.DailyReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.DailyReport(nil), s.reports...)
}

// Analytics returns the current analytics snapshot
func (s *Store) Analytics() models.Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analytics
}

func requireCustomerFields(draft models.CustomerDraft) error {
	if draft.CompanyName == "" {
		return validationError("companyName", "is required")
	}
	if draft.ContactName == "" {
		return validationError("contactName", "is required")
	}
	if draft.Email == "" {
		return validationError("email", "is required")
	}
	return nil
}

// nextID allocates max(existing ids, 0)+1. Callers must hold the write lock,
// which is what makes the allocation safe in-process.
func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, item := range items {
		if v := id(item); v > max {
			max = v
		}
	}
	return max + 1
}

func clampProbability(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
