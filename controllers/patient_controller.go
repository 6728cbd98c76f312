package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lab-dashboard-backend/services"
)

type PatientController struct {
	store services.Repository
}

func NewPatientController(s services.Repository) *PatientController {
	return &PatientController{store: s}
}

// ListPatients returns all patients, optionally filtered by a name fragment.
func (pc *PatientController) ListPatients(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		patients := pc.store.GetPatientsByName(name)
		c.JSON(http.StatusOK, gin.H{
			"patients": patients,
			"count":    len(patients),
		})
		return
	}

	patients := pc.store.Patients()
	c.JSON(http.StatusOK, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}

// GetPatient returns a single patient by ID.
func (pc *PatientController) GetPatient(c *gin.Context) {
	patient, ok := pc.store.GetPatientByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, patient)
}

// GetPatientOrders returns all orders for a patient.
func (pc *PatientController) GetPatientOrders(c *gin.Context) {
	patient, ok := pc.store.GetPatientByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders": patient.Orders,
		"count":  len(patient.Orders),
	})
}
