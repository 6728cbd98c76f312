package utils

import "strings"

// Intent labels understood by the assistant.
const (
	IntentTrackOrder      = "track_order"
	IntentCreateOrder     = "create_order"
	IntentViewOrder       = "view_order"
	IntentFilterByPatient = "filter_by_patient"
	IntentNone            = "none"
)

var trackingPhrases = []string{
	"track", "status", "where is", "shipping", "delivery", "progress", "follow",
}

var creationPhrases = []string{
	"new order", "create order", "place order", "make order", "submit order",
	"start order", "begin order", "initiate order",
	"order a test", "order test", "request a test", "request test",
	"schedule test", "schedule a test",
}

var creationVerbs = []string{"need", "want", "would like"}

// IntentClassifier maps a chat message to a single intent by checking rule
// groups in a fixed priority order.
type IntentClassifier struct {
	knownNames []string
}

func NewIntentClassifier(knownNames []string) *IntentClassifier {
	return &IntentClassifier{knownNames: knownNames}
}

// Classify returns the first intent whose rules match. Tracking wins over
// creation, creation over viewing a specific order, and a resolvable patient
// name beats the fallback.
func (c *IntentClassifier) Classify(text string) string {
	lower := strings.ToLower(text)

	if IsTrackingRequest(lower) {
		return IntentTrackOrder
	}
	if IsCreationRequest(lower) {
		return IntentCreateOrder
	}
	if ExtractOrderID(text) != "" {
		return IntentViewOrder
	}
	if name := ExtractPatientName(text, c.knownNames); name != "" && c.ResolvesPatient(name) {
		return IntentFilterByPatient
	}
	return IntentNone
}

// IsTrackingRequest reports whether the message asks about order tracking
// or shipment status.
func IsTrackingRequest(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range trackingPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	if strings.Contains(lower, "check") &&
		(strings.Contains(lower, "order") || strings.Contains(lower, "package") || strings.Contains(lower, "kit")) {
		return true
	}
	return false
}

// IsCreationRequest reports whether the message asks to place a new test
// order, directly or via "need/want a test" phrasing.
func IsCreationRequest(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range creationPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	for _, v := range creationVerbs {
		if strings.Contains(lower, v) &&
			(strings.Contains(lower, "test") || strings.Contains(lower, "order")) {
			return true
		}
	}
	return false
}

// ResolvesPatient reports whether a known patient name contains the
// extracted fragment, case-insensitively.
func (c *IntentClassifier) ResolvesPatient(fragment string) bool {
	needle := strings.ToLower(strings.TrimSpace(fragment))
	if needle == "" {
		return false
	}
	for _, known := range c.knownNames {
		if strings.Contains(strings.ToLower(known), needle) {
			return true
		}
	}
	return false
}

var resultsQueryWords = []string{
	"result", "lab", "test result", "findings", "report", "data", "values",
	"numbers", "outcome",
}

var ordersQueryWords = []string{
	"order", "test", "lab work", "requisition", "panel", "diagnostic",
	"specimen", "sample", "history", "record",
}

// WantsResults reports whether a patient query is asking about test results.
func WantsResults(text string) bool {
	return containsAny(strings.ToLower(text), resultsQueryWords)
}

// WantsOrders reports whether a patient query is asking about test orders.
func WantsOrders(text string) bool {
	return containsAny(strings.ToLower(text), ordersQueryWords)
}

var orderHelpWords = []string{"test", "order", "lab", "diagnostic", "panel", "specimen", "sample"}

var patientHelpWords = []string{
	"patient", "person", "client", "individual", "subject", "customer",
	"profile", "record", "find", "search", "lookup",
}

var resultHelpWords = []string{
	"result", "report", "finding", "outcome", "value", "data", "reading",
	"measurement", "analysis",
}

// HelpTopicFor picks the help topic whose vocabulary appears in the message.
// Order help wins over patient help, patient help over results. Returns ""
// when no topic applies.
func HelpTopicFor(text string) string {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, orderHelpWords):
		return "orders"
	case containsAny(lower, patientHelpWords):
		return "patients"
	case containsAny(lower, resultHelpWords):
		return "results"
	}
	return ""
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
