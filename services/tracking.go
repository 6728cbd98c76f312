package services

import (
	"fmt"
	"time"

	"lab-dashboard-backend/models"
)

var statusRank = map[models.OrderStatus]int{
	models.StatusPending:        0,
	models.StatusKitShipped:     1,
	models.StatusKitDelivered:   2,
	models.StatusSampleReceived: 3,
	models.StatusInProgress:     4,
	models.StatusCompleted:      5,
}

// TrackingSteps builds the kit/shipment timeline for an order. Intermediate
// step dates are projected from the order date; the final step uses the
// order's last update. A cancelled order only shows the placement step.
func TrackingSteps(order models.TestOrder) []models.TrackingStep {
	placed := models.TrackingStep{
		ID:          "ordered",
		Label:       "Order Placed",
		Description: fmt.Sprintf("Order placed by %s", order.OrderedBy),
		Date:        order.OrderedDate,
		Completed:   true,
	}
	if order.Status == models.StatusCancelled {
		return []models.TrackingStep{placed}
	}

	rank := statusRank[order.Status]
	steps := []models.TrackingStep{placed}

	intermediate := []struct {
		id         string
		label      string
		desc       string
		rank       int
		daysOffset int
	}{
		{"kit_shipped", "Kit Shipped", "Test kit has been shipped to the patient", 1, 2},
		{"kit_delivered", "Kit Delivered", "Test kit has been delivered to the patient", 2, 5},
		{"sample_received", "Sample Received", "Sample has been received by the lab", 3, 8},
		{"in_progress", "Testing In Progress", "Lab is processing the sample", 4, 10},
	}
	for _, s := range intermediate {
		step := models.TrackingStep{
			ID:          s.id,
			Label:       s.label,
			Description: s.desc,
			Completed:   rank >= s.rank,
		}
		if step.Completed {
			step.Date = projectDate(order.OrderedDate, s.daysOffset)
		}
		steps = append(steps, step)
	}

	final := models.TrackingStep{
		ID:          "completed",
		Label:       "Results Ready",
		Description: "Test results are ready to view",
		Completed:   order.Status == models.StatusCompleted,
	}
	if final.Completed {
		final.Date = order.LastUpdated
	}
	return append(steps, final)
}

// projectDate adds days to an ISO date, falling back to the raw value when
// it does not parse.
func projectDate(isoDate string, days int) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.AddDate(0, 0, days).Format("2006-01-02")
}
