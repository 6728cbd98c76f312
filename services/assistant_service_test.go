package services

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"lab-dashboard-backend/models"
	"lab-dashboard-backend/store"
)

func newTestAssistant() *AssistantService {
	return NewAssistantService(store.New(), zerolog.Nop())
}

func TestRespondTracking(t *testing.T) {
	svc := newTestAssistant()

	resp := svc.Respond("Track order O5001")
	if resp.Metadata == nil {
		t.Fatal("expected metadata on tracking reply")
	}
	if resp.Metadata.Action != models.ActionTrackOrder {
		t.Errorf("action = %s, want track_order", resp.Metadata.Action)
	}
	if resp.Metadata.OrderID != "O5001" {
		t.Errorf("order id = %s, want O5001", resp.Metadata.OrderID)
	}
	if resp.Metadata.PatientName != "James Wilson" {
		t.Errorf("patient name = %s, want James Wilson", resp.Metadata.PatientName)
	}
	if !resp.Metadata.AutoTrigger {
		t.Error("tracking a known order should auto-trigger")
	}
	if !strings.Contains(resp.Content, "O5001") {
		t.Errorf("content should mention the order: %q", resp.Content)
	}
}

func TestRespondTrackingUnknownOrder(t *testing.T) {
	svc := newTestAssistant()

	resp := svc.Respond("track order O9999")
	if !strings.Contains(resp.Content, `"O9999"`) {
		t.Errorf("content should quote the unknown id: %q", resp.Content)
	}
	if resp.Metadata == nil {
		t.Fatal("unknown order tracking should still carry metadata for the UI")
	}
	if resp.Metadata.Action != models.ActionTrackOrder || resp.Metadata.OrderID != "O9999" {
		t.Errorf("metadata = %+v", resp.Metadata)
	}
	if !resp.Metadata.AutoTrigger {
		t.Error("unknown order tracking should auto-trigger so the UI shows not-found")
	}
}

func TestRespondTrackingByPatientName(t *testing.T) {
	svc := newTestAssistant()

	resp := svc.Respond("track the kit for Maria Garcia")
	if resp.Metadata == nil {
		t.Fatal("expected metadata")
	}
	if resp.Metadata.Action != models.ActionTrackOrder {
		t.Errorf("action = %s", resp.Metadata.Action)
	}
	// Maria Garcia's most recent order by date is O5004.
	if resp.Metadata.OrderID != "O5004" {
		t.Errorf("order id = %s, want O5004", resp.Metadata.OrderID)
	}
}

func TestRespondCreation(t *testing.T) {
	svc := newTestAssistant()

	resp := svc.Respond("I need a lipid test")
	if resp.Metadata == nil {
		t.Fatal("expected metadata on creation reply")
	}
	if resp.Metadata.Action != models.ActionCreateOrder {
		t.Errorf("action = %s, want create_order", resp.Metadata.Action)
	}
	if !resp.Metadata.AutoTrigger {
		t.Error("creation should auto-trigger the order form")
	}
}

func TestRespondCreationWithPatient(t *testing.T) {
	svc := newTestAssistant()

	resp := svc.Respond("create order for Maria Garcia")
	if resp.Metadata == nil {
		t.Fatal("expected metadata")
	}
	if resp.Metadata.PatientID != "P1002" {
		t.Errorf("patient id = %s, want P1002", resp.Metadata.PatientID)
	}
	if resp.Metadata.PatientName != "Maria Garcia" {
		t.Errorf("patient name = %s", resp.Metadata.PatientName)
	}
}

func TestRespondViewOrder(t *testing.T) {
	svc := newTestAssistant()

	resp := svc.Respond("tell me about O5005")
	if resp.Metadata == nil {
		t.Fatal("expected metadata on view reply")
	}
	if resp.Metadata.Action != models.ActionViewOrder || resp.Metadata.OrderID != "O5005" {
		t.Errorf("metadata = %+v", resp.Metadata)
	}
	if !strings.Contains(resp.Content, "Lipid Panel") {
		t.Errorf("content should name the test: %q", resp.Content)
	}
	if !strings.Contains(resp.Content, "Robert Chen") {
		t.Errorf("content should name the patient: %q", resp.Content)
	}
}

func TestRespondFilterByPatient(t *testing.T) {
	svc := newTestAssistant()

	resp := svc.Respond("show me Maria Garcia's orders")
	if resp.Metadata == nil {
		t.Fatal("expected metadata on patient reply")
	}
	if resp.Metadata.Action != models.ActionFilterByPatient {
		t.Errorf("action = %s, want filter_by_patient", resp.Metadata.Action)
	}
	if resp.Metadata.PatientID != "P1002" {
		t.Errorf("patient id = %s, want P1002", resp.Metadata.PatientID)
	}
	if !resp.Metadata.AutoTrigger {
		t.Error("resolved patient filter should auto-trigger")
	}
}

func TestRespondPatientResults(t *testing.T) {
	svc := newTestAssistant()

	resp := svc.Respond("patient Maria Garcia's results")
	if resp.Metadata == nil {
		t.Fatal("expected metadata")
	}
	if resp.Metadata.Action != models.ActionViewOrder {
		t.Errorf("action = %s, want view_order", resp.Metadata.Action)
	}
	if resp.Metadata.OrderID != "O5003" {
		t.Errorf("order id = %s, want O5003", resp.Metadata.OrderID)
	}
	if !strings.Contains(resp.Content, "Thyroid Function Panel") {
		t.Errorf("content should name the completed test: %q", resp.Content)
	}
}

func TestRespondUnknownPatient(t *testing.T) {
	svc := newTestAssistant()

	resp := svc.Respond("show me John Smith's orders")
	if resp.Metadata != nil {
		t.Errorf("unknown patient should not trigger an action, got %+v", resp.Metadata)
	}
	if !strings.Contains(resp.Content, "couldn't find a patient") {
		t.Errorf("content = %q", resp.Content)
	}
}

func TestRespondDefault(t *testing.T) {
	svc := newTestAssistant()

	resp := svc.Respond("hello")
	if resp.Metadata != nil {
		t.Errorf("small talk should carry no metadata, got %+v", resp.Metadata)
	}
	if resp.Content != defaultReply {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.Role != "assistant" {
		t.Errorf("role = %q", resp.Role)
	}
	if !strings.HasPrefix(resp.ID, "assistant-") {
		t.Errorf("id = %q", resp.ID)
	}
}

func TestMetadataForAIResponse(t *testing.T) {
	svc := newTestAssistant()

	tests := []struct {
		name       string
		reply      string
		user       string
		wantAction models.ActionType
		wantNil    bool
	}{
		{
			name:       "order form reply",
			reply:      "I'll help you create a new order. Opening the order form.",
			user:       "I want to order a test",
			wantAction: models.ActionCreateOrder,
		},
		{
			name:       "tracking reply",
			reply:      "Here is the tracking information you asked for.",
			user:       "track order O5001",
			wantAction: models.ActionTrackOrder,
		},
		{
			name:       "found order reply",
			reply:      "I found order details for you.",
			user:       "show me O5003",
			wantAction: models.ActionViewOrder,
		},
		{
			name:       "patient mention",
			reply:      "Maria Garcia has two orders on file.",
			user:       "show me Maria Garcia's orders",
			wantAction: models.ActionFilterByPatient,
		},
		{
			name:    "plain reply",
			reply:   "Lab panels measure analytes in a sample.",
			user:    "what is a lab panel",
			wantNil: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := svc.MetadataForAIResponse(tt.reply, tt.user)
			if tt.wantNil {
				if meta != nil {
					t.Fatalf("expected nil metadata, got %+v", meta)
				}
				return
			}
			if meta == nil {
				t.Fatal("expected metadata")
			}
			if meta.Action != tt.wantAction {
				t.Errorf("action = %s, want %s", meta.Action, tt.wantAction)
			}
		})
	}
}
