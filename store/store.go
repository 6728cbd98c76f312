package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"lab-dashboard-backend/models"
)

// Store holds the demo patient dataset plus any orders created during the
// current process lifetime. Created orders live only in memory and are gone
// on restart.
type Store struct {
	mu       sync.RWMutex
	patients []models.Patient
	created  []models.TestOrder
}

func New() *Store {
	return &Store{patients: fixturePatients()}
}

// Patients returns a copy of all patients with session-created orders merged
// into their order lists.
func (s *Store) Patients() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Patient, len(s.patients))
	for i, p := range s.patients {
		out[i] = s.withCreatedOrders(p)
	}
	return out
}

// PatientNames returns the full names of all patients in dataset order.
func (s *Store) PatientNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.patients))
	for i, p := range s.patients {
		names[i] = p.Name
	}
	return names
}

// GetPatientByID finds a patient by exact ID.
func (s *Store) GetPatientByID(id string) (models.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.patients {
		if p.ID == id {
			return s.withCreatedOrders(p), true
		}
	}
	return models.Patient{}, false
}

// GetPatientsByName matches patients whose name contains the fragment,
// case-insensitively, preserving dataset order.
func (s *Store) GetPatientsByName(fragment string) []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(fragment))
	if needle == "" {
		return nil
	}
	var out []models.Patient
	for _, p := range s.patients {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, s.withCreatedOrders(p))
		}
	}
	return out
}

// GetOrderByID looks up an order by ID, ignoring case and surrounding
// whitespace. Fixture orders are checked before session-created ones.
func (s *Store) GetOrderByID(id string) (models.TestOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToUpper(strings.TrimSpace(id))
	if needle == "" {
		return models.TestOrder{}, false
	}
	for _, p := range s.patients {
		for _, o := range p.Orders {
			if strings.ToUpper(o.ID) == needle {
				return o, true
			}
		}
	}
	for _, o := range s.created {
		if strings.ToUpper(o.ID) == needle {
			return o, true
		}
	}
	return models.TestOrder{}, false
}

// PatientOrders returns all orders for a patient, fixtures first then
// session-created ones.
func (s *Store) PatientOrders(patientID string) []models.TestOrder {
	p, ok := s.GetPatientByID(patientID)
	if !ok {
		return nil
	}
	return p.Orders
}

// AllOrders returns every order across all patients plus session-created
// orders.
func (s *Store) AllOrders() []models.TestOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.TestOrder
	for _, p := range s.patients {
		out = append(out, p.Orders...)
	}
	out = append(out, s.created...)
	return out
}

// RecentOrders returns up to limit orders sorted by ordered date, newest
// first. Ties keep dataset order.
func (s *Store) RecentOrders(limit int) []models.TestOrder {
	orders := s.AllOrders()
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderedDate > orders[j].OrderedDate
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders
}

// OrdersByStatus filters all orders to those matching the given status,
// case-insensitively.
func (s *Store) OrdersByStatus(status string) []models.TestOrder {
	needle := strings.ToLower(strings.TrimSpace(status))
	var out []models.TestOrder
	for _, o := range s.AllOrders() {
		if strings.ToLower(string(o.Status)) == needle {
			out = append(out, o)
		}
	}
	return out
}

// TestTypes returns the sorted set of distinct test names seen in the
// dataset.
func (s *Store) TestTypes() []string {
	seen := make(map[string]struct{})
	for _, o := range s.AllOrders() {
		seen[o.TestName] = struct{}{}
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// LatestOrder returns the patient's most recently ordered test.
func (s *Store) LatestOrder(patientID string) (models.TestOrder, bool) {
	orders := s.PatientOrders(patientID)
	if len(orders) == 0 {
		return models.TestOrder{}, false
	}
	latest := orders[0]
	for _, o := range orders[1:] {
		if o.OrderedDate > latest.OrderedDate {
			latest = o
		}
	}
	return latest, true
}

// LatestCompletedOrder returns the patient's most recently updated order
// that is completed and has results attached.
func (s *Store) LatestCompletedOrder(patientID string) (models.TestOrder, bool) {
	var latest models.TestOrder
	found := false
	for _, o := range s.PatientOrders(patientID) {
		if o.Status != models.StatusCompleted || !o.HasResults() {
			continue
		}
		if !found || o.LastUpdated > latest.LastUpdated {
			latest = o
			found = true
		}
	}
	return latest, found
}

// AddOrder appends a session-created order. It becomes visible to every
// read method immediately.
func (s *Store) AddOrder(order models.TestOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, order)
}

// NextOrderID returns the next unused ID in the O-number sequence.
func (s *Store) NextOrderID() string {
	max := 0
	for _, o := range s.AllOrders() {
		id := strings.ToUpper(o.ID)
		if !strings.HasPrefix(id, "O") {
			continue
		}
		if n, err := strconv.Atoi(id[1:]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("O%d", max+1)
}

// withCreatedOrders copies the patient and appends any session-created
// orders belonging to them. Caller must hold at least a read lock.
func (s *Store) withCreatedOrders(p models.Patient) models.Patient {
	orders := make([]models.TestOrder, len(p.Orders))
	copy(orders, p.Orders)
	for _, o := range s.created {
		if o.PatientID == p.ID {
			orders = append(orders, o)
		}
	}
	p.Orders = orders
	return p
}
