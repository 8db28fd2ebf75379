package models

// CustomerStatus labels come from the dropdown vocabulary published by the
// options endpoint. They are stored as plain strings; the fixture backend is
// the source of truth for the allowed set.
const (
	CustomerStatusProspect   = "見込み客"
	CustomerStatusActive     = "アクティブ"
	CustomerStatusContracted = "契約済み"
	CustomerStatusFollowUp   = "フォローアップ中"
)

// Customer is a CRM account record. Field names follow the fixture backend's
// JSON contract.
type Customer struct {
	ID            int     `json:"id"`
	CompanyName   string  `json:"companyName"`
	ContactName   string  `json:"contactName"`
	Position      string  `json:"position"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Industry      string  `json:"industry"`
	CompanySize   string  `json:"companySize"`
	Revenue       float64 `json:"revenue"`
	Status        string  `json:"status"`
	AssignedSales string  `json:"assignedSales"`
	CreatedDate   string  `json:"createdDate"`
	LastContact   string  `json:"lastContact"`
	Notes         string  `json:"notes"`
}

// CustomerDraft is the request body for creating or updating a customer.
// CompanyName, ContactName and Email are the required form fields; everything
// else is free text constrained only by the dropdown option lists.
type CustomerDraft struct {
	CompanyName   string  `json:"companyName" validate:"required"`
	ContactName   string  `json:"contactName" validate:"required"`
	Position      string  `json:"position"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Industry      string  `json:"industry"`
	CompanySize   string  `json:"companySize"`
	Revenue       float64 `json:"revenue"`
	Status        string  `json:"status"`
	AssignedSales string  `json:"assignedSales"`
	Notes         string  `json:"notes"`
}

// CustomerResponse is the API response for single-customer operations
type CustomerResponse struct {
	Customer
}

// CustomerListResponse is the API response for listing customers
type CustomerListResponse struct {
	Items      []Customer `json:"items"`
	TotalCount int        `json:"total_count"`
}
