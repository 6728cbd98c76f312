package utils

import "testing"

var testKnownNames = []string{
	"James Wilson", "Maria Garcia", "Robert Chen", "Emily Rodriguez",
	"David Kim", "Sarah Johnson", "Michael Thompson", "Jennifer Lee",
	"William Davis", "Olivia Martinez", "John Doe",
}

func TestExtractOrderID(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"order keyword", "track my order O5001", "O5001"},
		{"order id keyword", "look up order id O5005", "O5005"},
		{"hash prefix", "what happened to #O5002", "O5002"},
		{"bare id", "is O5003 ready yet", "O5003"},
		{"lowercase keyword", "ORDER o5001 please", "o5001"},
		{"possessive does not leak", "show me Maria Garcia's orders", ""},
		{"plural orders ignored", "list all orders", ""},
		{"no id", "hello there", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractOrderID(tt.text); got != tt.want {
				t.Errorf("ExtractOrderID(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractPatientName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"patient keyword with possessive", "patient Maria Garcia's results", "Maria Garcia"},
		{"show me with possessive", "show me James Wilson's information", "James Wilson"},
		{"for keyword", "test results for Maria Garcia", "Maria Garcia"},
		{"find keyword", "find Emily Rodriguez", "Emily Rodriguez"},
		{"known name fallback", "does Robert Chen have anything pending", "Robert Chen"},
		{"bare known name", "Maria Garcia", "Maria Garcia"},
		{"unknown name still extracted", "show me John Smith's orders", "John Smith"},
		{"nothing", "what can you do", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPatientName(tt.text, testKnownNames); got != tt.want {
				t.Errorf("ExtractPatientName(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractPatientNameIdempotent(t *testing.T) {
	inputs := []string{
		"patient Maria Garcia's results",
		"show me James Wilson's information",
		"Robert Chen",
	}
	for _, text := range inputs {
		first := ExtractPatientName(text, testKnownNames)
		if first == "" {
			t.Fatalf("ExtractPatientName(%q) returned nothing", text)
		}
		second := ExtractPatientName(first, testKnownNames)
		if second != first {
			t.Errorf("re-extracting %q gave %q, want it unchanged", first, second)
		}
	}
}
