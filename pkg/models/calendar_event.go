package models

// EventType is the kind of calendar entry
type EventType string

const (
	EventTypeVisit   EventType = "visit"
	EventTypeMeeting EventType = "meeting"
	EventTypeCall    EventType = "call"
	EventTypeDemo    EventType = "demo"
	EventTypeOther   EventType = "other"
)

// EventStatus is the scheduling state of a calendar entry
type EventStatus string

const (
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// CalendarEvent is a scheduled sales activity. CustomerName is resolved from
// CustomerID at save time when the id is set; otherwise the free-typed name
// is kept as-is.
type CalendarEvent struct {
	ID                   int         `json:"id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	Type                 EventType   `json:"type"`
	Date                 string      `json:"date"`
	StartTime            string      `json:"startTime"`
	EndTime              string      `json:"endTime"`
	AssignedSales        string      `json:"assignedSales"`
	CustomerID           *int        `json:"customerId"`
	CustomerName         *string     `json:"customerName"`
	Location             string      `json:"location"`
	Status               EventStatus `json:"status"`
	Notes                string      `json:"notes"`
	RelatedOpportunityID *int        `json:"relatedOpportunityId"`
}

// CalendarEventDraft is the request body for creating a calendar event
type CalendarEventDraft struct {
	Title                string    `json:"title" validate:"required"`
	Description          string    `json:"description"`
	Type                 EventType `json:"type"`
	Date                 string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime            string    `json:"startTime"`
	EndTime              string    `json:"endTime"`
	AssignedSales        string    `json:"assignedSales" validate:"required"`
	CustomerID           *int      `json:"customerId"`
	CustomerName         *string   `json:"customerName"`
	Location             string    `json:"location"`
	Notes                string    `json:"notes"`
	RelatedOpportunityID *int      `json:"relatedOpportunityId"`
}

// CalendarEventResponse is the API response for single-event operations
type CalendarEventResponse struct {
	CalendarEvent
}

// CalendarEventListResponse is the API response for listing events
type CalendarEventListResponse struct {
	Items      []CalendarEvent `json:"items"`
	TotalCount int             `json:"total_count"`
}
