package models

// OptionLists is the dropdown vocabulary exposed to form UIs. Statuses and
// types are fixed label sets; stages and sales reps are derived from the
// loaded analytics snapshot so the form options always line up with the
// kanban buckets.
type OptionLists struct {
	CustomerStatuses   []string `json:"customerStatuses"`
	CommunicationTypes []string `json:"communicationTypes"`
	EventTypes         []string `json:"eventTypes"`
	PipelineStages     []string `json:"pipelineStages"`
	SalesReps          []string `json:"salesReps"`
}

// DefaultCustomerStatuses is the fixed status dropdown.
var DefaultCustomerStatuses = []string{
	CustomerStatusProspect,
	CustomerStatusActive,
	CustomerStatusContracted,
	CustomerStatusFollowUp,
}

// DefaultCommunicationTypes is the fixed communication type dropdown.
var DefaultCommunicationTypes = []string{
	CommunicationTypeCall,
	CommunicationTypeEmail,
	CommunicationTypeMeeting,
	CommunicationTypeVisit,
}

// DefaultEventTypes is the fixed calendar event type dropdown.
var DefaultEventTypes = []string{
	string(EventTypeVisit),
	string(EventTypeMeeting),
	string(EventTypeCall),
	string(EventTypeDemo),
	string(EventTypeOther),
}
