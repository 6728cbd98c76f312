package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"lab-dashboard-backend/models"
)

const defaultOrderedBy = "Dr. Sarah Reynolds"

var validBillingOptions = map[string]bool{
	models.BillingInsurance:       true,
	models.BillingPatientPay:      true,
	models.BillingPractitionerPay: true,
}

var validPhlebotomyOptions = map[string]bool{
	models.PhlebotomyHomeKit:       true,
	models.PhlebotomyMobileDraw:    true,
	models.PhlebotomyServiceCenter: true,
}

// OrderService creates session-scoped test orders against the store.
type OrderService struct {
	store  Repository
	logger zerolog.Logger
	now    func() time.Time
}

func NewOrderService(s Repository, logger zerolog.Logger) *OrderService {
	return &OrderService{store: s, logger: logger, now: time.Now}
}

// Create validates the request, assigns the next order ID and stores the
// order. The order is visible to lookups and tracking immediately.
func (s *OrderService) Create(req models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	patient, ok := s.store.GetPatientByID(req.PatientID)
	if !ok {
		return nil, fmt.Errorf("patient %s not found", req.PatientID)
	}

	testType := req.TestType
	if testType == "" {
		testType = "Blood"
	}
	billing := req.BillingOption
	if !validBillingOptions[billing] {
		billing = models.BillingInsurance
	}
	phlebotomy := req.PhlebotomyOption
	if !validPhlebotomyOptions[phlebotomy] {
		phlebotomy = models.PhlebotomyHomeKit
	}

	now := s.now()
	today := now.Format("2006-01-02")
	order := models.TestOrder{
		ID:               s.store.NextOrderID(),
		PatientID:        patient.ID,
		TestName:         req.TestName,
		TestType:         testType,
		OrderedBy:        defaultOrderedBy,
		OrderedDate:      today,
		Status:           models.StatusPending,
		LastUpdated:      today,
		Notes:            req.Notes,
		BillingOption:    billing,
		PhlebotomyOption: phlebotomy,
	}
	s.store.AddOrder(order)

	s.logger.Info().
		Str("order_id", order.ID).
		Str("patient_id", patient.ID).
		Str("test_name", order.TestName).
		Msg("test order created")

	return &models.CreateOrderResponse{
		Success:   true,
		OrderID:   order.ID,
		Status:    order.Status,
		Message:   fmt.Sprintf("Test order for %s created successfully for patient %s", order.TestName, patient.Name),
		CreatedAt: now,
	}, nil
}
