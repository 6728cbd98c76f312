package utils

import "testing"

func TestClassify(t *testing.T) {
	c := NewIntentClassifier(testKnownNames)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"track keyword", "track order O5001", IntentTrackOrder},
		{"status keyword", "what's the status of my order", IntentTrackOrder},
		{"where is", "where is my kit", IntentTrackOrder},
		{"check plus kit", "can you check on my kit", IntentTrackOrder},
		{"need a test", "I need a lipid test", IntentCreateOrder},
		{"direct creation", "create order for James Wilson", IntentCreateOrder},
		{"would like", "I would like to order a test", IntentCreateOrder},
		{"order id", "show me order O5002", IntentViewOrder},
		{"bare order id", "tell me about O5003", IntentViewOrder},
		{"patient orders", "show me Maria Garcia's orders", IntentFilterByPatient},
		{"patient results", "patient Maria Garcia's results", IntentFilterByPatient},
		{"unknown name", "show me John Smith's orders", IntentNone},
		{"small talk", "hello there", IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	c := NewIntentClassifier(testKnownNames)

	// Tracking phrasing wins even when an order ID or name is present.
	if got := c.Classify("track order O5001 for Maria Garcia"); got != IntentTrackOrder {
		t.Errorf("tracking should win over view and filter, got %q", got)
	}
	// Creation phrasing wins over a patient name.
	if got := c.Classify("I need a new test for Maria Garcia"); got != IntentCreateOrder {
		t.Errorf("creation should win over filter, got %q", got)
	}
	// Creation phrasing also wins over a co-occurring order ID.
	if got := c.Classify("I want to order another test like O5001"); got != IntentCreateOrder {
		t.Errorf("creation should win over view, got %q", got)
	}
	// An order ID wins over a patient name.
	if got := c.Classify("tell me about O5003 for Maria Garcia"); got != IntentViewOrder {
		t.Errorf("order ID should win over filter, got %q", got)
	}
}

func TestResolvesPatient(t *testing.T) {
	c := NewIntentClassifier(testKnownNames)

	if !c.ResolvesPatient("garcia") {
		t.Error("partial name should resolve")
	}
	if !c.ResolvesPatient("Maria Garcia") {
		t.Error("full name should resolve")
	}
	if c.ResolvesPatient("John Smith") {
		t.Error("unknown name should not resolve")
	}
	if c.ResolvesPatient("") {
		t.Error("empty fragment should not resolve")
	}
}

func TestHelpTopicFor(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"how do lab panels work", "orders"},
		{"how do I look up a person", "patients"},
		{"what do these readings mean", "results"},
		{"hello", ""},
	}
	for _, tt := range tests {
		if got := HelpTopicFor(tt.text); got != tt.want {
			t.Errorf("HelpTopicFor(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
