package models

// OrderStatus is the lifecycle state of a lab test order, from order
// placement through kit logistics to completed results.
type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusKitShipped     OrderStatus = "Kit Shipped"
	StatusKitDelivered   OrderStatus = "Kit Delivered"
	StatusSampleReceived OrderStatus = "Sample Received"
	StatusInProgress     OrderStatus = "In Progress"
	StatusCompleted      OrderStatus = "Completed"
	StatusCancelled      OrderStatus = "Cancelled"
)

type Patient struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	DateOfBirth    string      `json:"date_of_birth"`
	Gender         string      `json:"gender"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	MedicalHistory []string    `json:"medical_history,omitempty"`
	Orders         []TestOrder `json:"orders"`
}

type TestOrder struct {
	ID               string      `json:"id"`
	PatientID        string      `json:"patient_id"`
	TestName         string      `json:"test_name"`
	TestType         string      `json:"test_type"`
	OrderedBy        string      `json:"ordered_by"`
	OrderedDate      string      `json:"ordered_date"`
	Status           OrderStatus `json:"status"`
	LastUpdated      string      `json:"last_updated"`
	Results          *TestResult `json:"results,omitempty"`
	Notes            string      `json:"notes,omitempty"`
	BillingOption    string      `json:"billing_option,omitempty"`
	PhlebotomyOption string      `json:"phlebotomy_option,omitempty"`
}

// HasResults reports whether completed results are attached to the order.
func (o TestOrder) HasResults() bool {
	return o.Results != nil
}

type TestResult struct {
	ID                  string                 `json:"id"`
	OrderID             string                 `json:"order_id"`
	CompletedDate       string                 `json:"completed_date"`
	ResultSummary       string                 `json:"result_summary"`
	ResultDetails       map[string]ResultValue `json:"result_details"`
	Interpretation      string                 `json:"interpretation,omitempty"`
	Flagged             bool                   `json:"flagged"`
	RecommendedFollowUp string                 `json:"recommended_follow_up,omitempty"`
}

// ResultValue is a single analyte measurement with its reference range.
// Flag is "H" (high), "L" (low) or empty when within range.
type ResultValue struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Reference string  `json:"reference"`
	Flag      string  `json:"flag,omitempty"`
}
