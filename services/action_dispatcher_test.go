package services

import (
	"testing"

	"lab-dashboard-backend/models"
)

func TestDispatchOncePerMessage(t *testing.T) {
	var viewed []string
	d := NewActionDispatcher(NavigationHandlers{
		OnViewOrder: func(orderID string) { viewed = append(viewed, orderID) },
	})

	meta := &models.ActionMetadata{
		Action:      models.ActionViewOrder,
		OrderID:     "O5001",
		AutoTrigger: true,
	}

	if !d.Dispatch("msg-1", meta) {
		t.Fatal("first dispatch should fire")
	}
	if d.Dispatch("msg-1", meta) {
		t.Fatal("second dispatch of the same message should not fire")
	}
	if len(viewed) != 1 || viewed[0] != "O5001" {
		t.Errorf("viewed = %v", viewed)
	}

	// A different message with the same metadata fires again.
	if !d.Dispatch("msg-2", meta) {
		t.Error("new message should fire")
	}
}

func TestDispatchSkips(t *testing.T) {
	fired := false
	d := NewActionDispatcher(NavigationHandlers{
		OnViewOrder:       func(string) { fired = true },
		OnTrackOrder:      func(string) { fired = true },
		OnFilterByPatient: func(string, string) { fired = true },
	})

	tests := []struct {
		name string
		meta *models.ActionMetadata
	}{
		{"nil metadata", nil},
		{"no auto trigger", &models.ActionMetadata{Action: models.ActionViewOrder, OrderID: "O5001"}},
		{"view without order id", &models.ActionMetadata{Action: models.ActionViewOrder, AutoTrigger: true}},
		{"track without order id", &models.ActionMetadata{Action: models.ActionTrackOrder, AutoTrigger: true}},
		{"filter without patient id", &models.ActionMetadata{Action: models.ActionFilterByPatient, PatientName: "Maria Garcia", AutoTrigger: true}},
		{"unknown action", &models.ActionMetadata{Action: "teleport", AutoTrigger: true}},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d.Dispatch(string(rune('a'+i)), tt.meta) {
				t.Error("dispatch should not fire")
			}
		})
	}
	if fired {
		t.Error("no handler should have run")
	}
}

func TestDispatchCreateOrder(t *testing.T) {
	var gotID, gotName string
	d := NewActionDispatcher(NavigationHandlers{
		OnCreateOrder: func(patientID, patientName string) {
			gotID, gotName = patientID, patientName
		},
	})

	// create_order needs no identifier.
	if !d.Dispatch("msg-1", &models.ActionMetadata{Action: models.ActionCreateOrder, AutoTrigger: true}) {
		t.Fatal("create_order should fire without a patient")
	}

	if !d.Dispatch("msg-2", &models.ActionMetadata{
		Action:      models.ActionCreateOrder,
		PatientID:   "P1002",
		PatientName: "Maria Garcia",
		AutoTrigger: true,
	}) {
		t.Fatal("create_order with patient should fire")
	}
	if gotID != "P1002" || gotName != "Maria Garcia" {
		t.Errorf("handler got %s / %s", gotID, gotName)
	}
}
