package store

import (
	"testing"

	"lab-dashboard-backend/models"
)

func TestGetOrderByID(t *testing.T) {
	s := New()

	tests := []struct {
		name  string
		id    string
		found bool
	}{
		{"exact match", "O5001", true},
		{"lowercase", "o5001", true},
		{"whitespace", "  O5003  ", true},
		{"missing", "O9999", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, found := s.GetOrderByID(tt.id)
			if found != tt.found {
				t.Errorf("GetOrderByID(%q) found = %v, want %v", tt.id, found, tt.found)
			}
		})
	}

	order, _ := s.GetOrderByID("o5001")
	if order.TestName != "Complete Blood Count (CBC)" {
		t.Errorf("O5001 test name = %q", order.TestName)
	}
	if order.PatientID != "P1001" {
		t.Errorf("O5001 patient = %q", order.PatientID)
	}
}

func TestGetPatientsByName(t *testing.T) {
	s := New()

	patients := s.GetPatientsByName("garcia")
	if len(patients) != 1 {
		t.Fatalf("expected 1 match for garcia, got %d", len(patients))
	}
	if patients[0].ID != "P1002" {
		t.Errorf("garcia resolved to %s, want P1002", patients[0].ID)
	}

	if got := s.GetPatientsByName("nobody"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
	if got := s.GetPatientsByName(""); len(got) != 0 {
		t.Errorf("empty fragment should match nothing, got %d", len(got))
	}
}

func TestPatients(t *testing.T) {
	s := New()
	if got := len(s.Patients()); got != 11 {
		t.Errorf("patient count = %d, want 11", got)
	}
	if got := len(s.PatientNames()); got != 11 {
		t.Errorf("name count = %d, want 11", got)
	}
}

func TestRecentOrders(t *testing.T) {
	s := New()

	orders := s.RecentOrders(3)
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	if orders[0].ID != "O5023" {
		t.Errorf("newest order = %s, want O5023", orders[0].ID)
	}
	if orders[1].ID != "O5021" {
		t.Errorf("second order = %s, want O5021", orders[1].ID)
	}
	// Ties on ordered date keep dataset order.
	if orders[2].ID != "O5002" {
		t.Errorf("third order = %s, want O5002", orders[2].ID)
	}
}

func TestOrdersByStatus(t *testing.T) {
	s := New()

	pending := s.OrdersByStatus("pending")
	if len(pending) != 3 {
		t.Errorf("pending orders = %d, want 3", len(pending))
	}
	for _, o := range pending {
		if o.Status != models.StatusPending {
			t.Errorf("order %s has status %s", o.ID, o.Status)
		}
	}
}

func TestLatestCompletedOrder(t *testing.T) {
	s := New()

	order, found := s.LatestCompletedOrder("P1002")
	if !found {
		t.Fatal("expected a completed order for P1002")
	}
	if order.ID != "O5003" {
		t.Errorf("latest completed = %s, want O5003", order.ID)
	}
	if !order.HasResults() {
		t.Error("completed order should carry results")
	}
}

func TestAddOrderVisibility(t *testing.T) {
	s := New()

	id := s.NextOrderID()
	if id != "O5024" {
		t.Fatalf("NextOrderID = %s, want O5024", id)
	}

	s.AddOrder(models.TestOrder{
		ID:          id,
		PatientID:   "P1001",
		TestName:    "Lipid Panel",
		Status:      models.StatusPending,
		OrderedDate: "2026-08-30",
		LastUpdated: "2026-08-30",
	})

	if _, found := s.GetOrderByID("o5024"); !found {
		t.Error("created order should be visible to lookups")
	}

	orders := s.PatientOrders("P1001")
	if len(orders) != 3 {
		t.Errorf("P1001 orders = %d, want 3 after creation", len(orders))
	}

	if got := s.NextOrderID(); got != "O5025" {
		t.Errorf("NextOrderID after creation = %s, want O5025", got)
	}

	recent := s.RecentOrders(1)
	if recent[0].ID != "O5024" {
		t.Errorf("created order should be the most recent, got %s", recent[0].ID)
	}
}

func TestTestTypes(t *testing.T) {
	s := New()

	types := s.TestTypes()
	if len(types) == 0 {
		t.Fatal("expected test types")
	}
	for i := 1; i < len(types); i++ {
		if types[i-1] >= types[i] {
			t.Fatalf("test types not sorted: %q before %q", types[i-1], types[i])
		}
	}
	seen := false
	for _, tt := range types {
		if tt == "Lipid Panel" {
			seen = true
		}
	}
	if !seen {
		t.Error("expected Lipid Panel in test types")
	}
}
