package models

// Task is a follow-up item assigned to a sales rep. Read-only: tasks arrive
// from the fixture backend and are never mutated by this service.
type Task struct {
	ID                   int     `json:"id"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	CustomerID           *int    `json:"customerId"`
	CustomerName         *string `json:"customerName"`
	AssignedTo           string  `json:"assignedTo"`
	Priority             string  `json:"priority"`
	Status               string  `json:"status"`
	DueDate              string  `json:"dueDate"`
	CreatedDate          string  `json:"createdDate"`
	CompletedDate        *string `json:"completedDate"`
	Type                 string  `json:"type"`
	RelatedOpportunityID *int    `json:"relatedOpportunityId"`
}

// TaskListResponse is the API response for listing tasks
type TaskListResponse struct {
	Items      []Task `json:"items"`
	TotalCount int    `json:"total_count"`
}
