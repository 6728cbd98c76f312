package services

import "lab-dashboard-backend/models"

// Repository is the data surface the services and controllers consume.
// *store.Store implements it; a real backing store could be swapped in
// without touching the callers.
type Repository interface {
	Patients() []models.Patient
	PatientNames() []string
	GetPatientByID(id string) (models.Patient, bool)
	GetPatientsByName(fragment string) []models.Patient
	GetOrderByID(id string) (models.TestOrder, bool)
	PatientOrders(patientID string) []models.TestOrder
	RecentOrders(limit int) []models.TestOrder
	OrdersByStatus(status string) []models.TestOrder
	TestTypes() []string
	LatestOrder(patientID string) (models.TestOrder, bool)
	LatestCompletedOrder(patientID string) (models.TestOrder, bool)
	AddOrder(order models.TestOrder)
	NextOrderID() string
}
