package models

import "time"

// Billing options accepted on order creation.
const (
	BillingInsurance       = "insurance"
	BillingPatientPay      = "patient_pay"
	BillingPractitionerPay = "practitioner_pay"
)

// Phlebotomy options accepted on order creation.
const (
	PhlebotomyHomeKit       = "home_kit"
	PhlebotomyMobileDraw    = "mobile_draw"
	PhlebotomyServiceCenter = "service_center"
)

type CreateOrderRequest struct {
	PatientID        string `json:"patient_id" binding:"required"`
	TestName         string `json:"test_name" binding:"required"`
	TestType         string `json:"test_type,omitempty"`
	Notes            string `json:"notes,omitempty"`
	BillingOption    string `json:"billing_option,omitempty"`
	PhlebotomyOption string `json:"phlebotomy_option,omitempty"`
}

type CreateOrderResponse struct {
	Success   bool        `json:"success"`
	OrderID   string      `json:"order_id"`
	Status    OrderStatus `json:"status"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"created_at"`
}

// TrackingStep is one entry in the kit/shipment timeline for an order.
// Date is set only once the step has completed.
type TrackingStep struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
	Completed   bool   `json:"completed"`
}
