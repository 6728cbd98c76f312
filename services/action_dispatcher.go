package services

import (
	"sync"

	"lab-dashboard-backend/models"
)

// NavigationHandlers receives auto-triggered actions, one callback per
// navigation target.
type NavigationHandlers struct {
	OnViewOrder       func(orderID string)
	OnTrackOrder      func(orderID string)
	OnFilterByPatient func(patientID, patientName string)
	OnCreateOrder     func(patientID, patientName string)
}

// ActionDispatcher fires navigation callbacks for assistant messages. Each
// message triggers at most once, no matter how often it is redelivered.
type ActionDispatcher struct {
	mu         sync.Mutex
	handlers   NavigationHandlers
	dispatched map[string]bool
}

func NewActionDispatcher(handlers NavigationHandlers) *ActionDispatcher {
	return &ActionDispatcher{
		handlers:   handlers,
		dispatched: make(map[string]bool),
	}
}

// Dispatch fires the callback for the message's action and reports whether
// anything fired. Messages without metadata, without AutoTrigger, without
// the identifier their action requires, or already dispatched are skipped.
func (d *ActionDispatcher) Dispatch(messageID string, meta *models.ActionMetadata) bool {
	if meta == nil || !meta.AutoTrigger {
		return false
	}

	d.mu.Lock()
	if d.dispatched[messageID] {
		d.mu.Unlock()
		return false
	}
	d.dispatched[messageID] = true
	d.mu.Unlock()

	switch meta.Action {
	case models.ActionViewOrder:
		if meta.OrderID == "" || d.handlers.OnViewOrder == nil {
			return false
		}
		d.handlers.OnViewOrder(meta.OrderID)
	case models.ActionTrackOrder:
		if meta.OrderID == "" || d.handlers.OnTrackOrder == nil {
			return false
		}
		d.handlers.OnTrackOrder(meta.OrderID)
	case models.ActionFilterByPatient:
		if meta.PatientID == "" || d.handlers.OnFilterByPatient == nil {
			return false
		}
		d.handlers.OnFilterByPatient(meta.PatientID, meta.PatientName)
	case models.ActionCreateOrder:
		if d.handlers.OnCreateOrder == nil {
			return false
		}
		d.handlers.OnCreateOrder(meta.PatientID, meta.PatientName)
	default:
		return false
	}
	return true
}
