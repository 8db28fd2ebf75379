package models

// DailyReport is a rep's end-of-day activity report. Fixture-fed and
// read-only, like communications and tasks.
type DailyReport struct {
	ID           int              `json:"id"`
	Date         string           `json:"date"`
	SalesPerson  string           `json:"salesPerson"`
	WorkingHours WorkingHours     `json:"workingHours"`
	Activities   []ReportActivity `json:"activities"`
	Achievements Achievements     `json:"achievements"`
	Challenges   string           `json:"challenges"`
	TomorrowPlan string           `json:"tomorrowPlan"`
	Notes        string           `json:"notes"`
	CreatedAt    string           `json:"createdAt"`
	UpdatedAt    string           `json:"updatedAt"`
}

type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Break int    `json:"break"` // minutes
}

type ReportActivity struct {
	ID           int    `json:"id"`
	Type         string `json:"type"`
	CustomerID   *int   `json:"customerId"`
	CustomerName string `json:"customerName"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Description  string `json:"description"`
	Result       string `json:"result"`
	NextAction   string `json:"nextAction"`
	Priority     string `json:"priority"`
}

type Achievements struct {
	NewLeads  int     `json:"newLeads"`
	Meetings  int     `json:"meetings"`
	Proposals int     `json:"proposals"`
	Contracts int     `json:"contracts"`
	Revenue   float64 `json:"revenue"`
}

// DailyReportListResponse is the API response for listing daily reports
type DailyReportListResponse struct {
	Items      []DailyReport `json:"items"`
	TotalCount int           `json:"total_count"`
}
