package models

// SalesOpportunity is a deal in the pipeline. CustomerName is a point-in-time
// snapshot taken when the opportunity is created; it does not follow later
// renames of the customer.
type SalesOpportunity struct {
	ID                int      `json:"id"`
	Title             string   `json:"title"`
	CustomerID        int      `json:"customerId"`
	CustomerName      string   `json:"customerName"`
	Stage             string   `json:"stage"`
	Probability       int      `json:"probability"`
	Value             float64  `json:"value"`
	ExpectedCloseDate string   `json:"expectedCloseDate"`
	AssignedSales     string   `json:"assignedSales"`
	CreatedDate       string   `json:"createdDate"`
	LastActivity      string   `json:"lastActivity"`
	Description       string   `json:"description"`
	NextAction        string   `json:"nextAction"`
	CompetitorInfo    string   `json:"competitorInfo"`
	DecisionMakers    []string `json:"decisionMakers"`
}

// OpportunityDraft is the request body for creating a sales opportunity.
// The customer reference must resolve against the loaded customer collection;
// the store rejects drafts pointing at unknown ids.
type OpportunityDraft struct {
	Title             string   `json:"title" validate:"required"`
	CustomerID        int      `json:"customerId" validate:"required,gt=0"`
	Stage             string   `json:"stage"`
	Probability       int      `json:"probability"`
	Value             float64  `json:"value" validate:"required,gt=0"`
	ExpectedCloseDate string   `json:"expectedCloseDate"`
	AssignedSales     string   `json:"assignedSales"`
	Description       string   `json:"description"`
	NextAction        string   `json:"nextAction"`
	CompetitorInfo    string   `json:"competitorInfo"`
	DecisionMakers    []string `json:"decisionMakers"`
}

// OpportunityResponse is the API response for single-opportunity operations
type OpportunityResponse struct {
	SalesOpportunity
}

// OpportunityListResponse is the API response for listing opportunities
type OpportunityListResponse struct {
	Items      []SalesOpportunity `json:"items"`
	TotalCount int                `json:"total_count"`
}

// StageBucket is one kanban column: a pipeline stage label plus the
// opportunities currently sitting in it, in insertion order.
type StageBucket struct {
	Stage         string             `json:"stage"`
	Opportunities []SalesOpportunity `json:"opportunities"`
}

// KanbanResponse is the grouped pipeline view. Unbucketed collects
// opportunities whose stage matches no known pipeline bucket instead of
// silently dropping them.
type KanbanResponse struct {
	Buckets    []StageBucket      `json:"buckets"`
	Unbucketed []SalesOpportunity `json:"unbucketed,omitempty"`
}
