package models

// Communication types as they appear in fixture data
const (
	CommunicationTypeCall    = "電話"
	CommunicationTypeEmail   = "メール"
	CommunicationTypeMeeting = "会議"
	CommunicationTypeVisit   = "訪問"
)

// Communication is a logged customer touchpoint. Read-mostly fixture data;
// the API exposes no creation path for it.
type Communication struct {
	ID           int      `json:"id"`
	CustomerID   int      `json:"customerId"`
	CustomerName string   `json:"customerName"`
	Type         string   `json:"type"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Duration     *int     `json:"duration"`
	Subject      string   `json:"subject"`
	Summary      string   `json:"summary"`
	Participants []string `json:"participants"`
	NextAction   string   `json:"nextAction"`
	Priority     string   `json:"priority"`
}

// CommunicationListResponse is the API response for listing communications
type CommunicationListResponse struct {
	Items      []Communication `json:"items"`
	TotalCount int             `json:"total_count"`
}
