package models

import "encoding/json"

// Tab identifies one of the named screens. Navigation is the only state
// machine in the system: every transition is a direct user click, no guards,
// no terminal state.
type Tab string

const (
	TabDashboard     Tab = "dashboard"
	TabCustomers     Tab = "customers"
	TabOpportunities Tab = "opportunities"
	TabCalendar      Tab = "calendar"
	TabReports       Tab = "reports"
)

// KnownTabs is the full screen set, in navigation order.
var KnownTabs = []Tab{TabDashboard, TabCustomers, TabOpportunities, TabCalendar, TabReports}

// IsValid reports whether t names a known screen.
func (t Tab) IsValid() bool {
	for _, k := range KnownTabs {
		if t == k {
			return true
		}
	}
	return false
}

// SessionState is the UI selection state owned by the store: active screen,
// search/filter terms, selected calendar date and modal/draft state. The
// presentation layer reads it back to rebuild the screen after a reload.
type SessionState struct {
	ActiveTab    Tab               `json:"activeTab"`
	SearchTerm   string            `json:"searchTerm"`
	Filters      map[string]string `json:"filters"`
	SelectedDate string            `json:"selectedDate"`
	Modal        *ModalState       `json:"modal,omitempty"`
}

// ModalState records which form modal is open and, for edits, which record
// it is editing plus the in-progress draft.
type ModalState struct {
	Kind      string          `json:"kind"` // customer, opportunity, event
	EditingID *int            `json:"editingId,omitempty"`
	Draft     json.RawMessage `json:"draft,omitempty"`
}

// SessionPatch is the request body for partial session updates. Nil fields
// are left untouched.
type SessionPatch struct {
	ActiveTab    *Tab              `json:"activeTab,omitempty"`
	SearchTerm   *string           `json:"searchTerm,omitempty"`
	Filters      map[string]string `json:"filters,omitempty"`
	SelectedDate *string           `json:"selectedDate,omitempty"`
	Modal        *ModalState       `json:"modal,omitempty"`
	CloseModal   bool              `json:"closeModal,omitempty"`
}
