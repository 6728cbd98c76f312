package models

// Intent is the routing decision for a free-text user utterance.
type Intent string

const (
	IntentTrackOrder      Intent = "track_order"
	IntentCreateOrder     Intent = "create_order"
	IntentViewOrder       Intent = "view_order"
	IntentFilterByPatient Intent = "filter_by_patient"
	IntentNone            Intent = "none"
)

// ActionType identifies the UI navigation an assistant message can trigger.
type ActionType string

const (
	ActionViewOrder       ActionType = "view_order"
	ActionViewPatient     ActionType = "view_patient"
	ActionFilterByPatient ActionType = "filter_by_patient"
	ActionCreateOrder     ActionType = "create_order"
	ActionTrackOrder      ActionType = "track_order"
)

// ActionMetadata is attached to an assistant message and consumed by the
// dashboard to either auto-navigate or render a manual action button.
// AutoTrigger is only set when the action's required identifier was resolved
// against the store; the one exception is track_order, which keeps
// AutoTrigger for an unknown order id so the UI can show a not-found state.
type ActionMetadata struct {
	Action      ActionType `json:"action,omitempty"`
	OrderID     string     `json:"orderId,omitempty"`
	PatientID   string     `json:"patientId,omitempty"`
	PatientName string     `json:"patientName,omitempty"`
	AutoTrigger bool       `json:"autoTrigger,omitempty"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// LastUserMessage returns the content of the most recent user-role message,
// or an empty string when the conversation has none.
func (r ChatRequest) LastUserMessage() string {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == "user" {
			return r.Messages[i].Content
		}
	}
	return ""
}

type ChatResponse struct {
	ID       string          `json:"id"`
	Role     string          `json:"role"`
	Content  string          `json:"content"`
	Metadata *ActionMetadata `json:"metadata,omitempty"`
}
