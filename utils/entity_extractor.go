package utils

import (
	"regexp"
	"strings"
)

// Order ID patterns, tried in order. The second pattern rejects possessives
// ("Garcia's orders") and the plural "orders" so patient queries never leak
// a bogus ID.
var orderIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\border\s+(?:id\s+)?([A-Za-z0-9]+)`),
	regexp.MustCompile(`(?i)(?:^|[^A-Za-z0-9'])([A-Za-z0-9]+)\s+order\b`),
	regexp.MustCompile(`#([A-Za-z0-9]+)`),
	regexp.MustCompile(`(?i)\b(O[0-9]{4})\b`),
}

// ExtractOrderID pulls an order identifier out of free text. Returns the
// empty string when nothing matches.
func ExtractOrderID(text string) string {
	for _, p := range orderIDPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

const nameStopWords = `(?:results|tests|orders|info|information|record|profile|data)`

// Patient name patterns, tried in order. Each captures a run of letters and
// spaces up to a possessive marker, a results/orders style keyword, or end
// of input.
var patientNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bpatient\s+([A-Za-z][A-Za-z\s]*?)(?:'s)?(?:\s*\b` + nameStopWords + `|\s*$)`),
	regexp.MustCompile(`(?i)\bfor\s+([A-Za-z][A-Za-z\s]*?)(?:'s)?(?:\s*\b` + nameStopWords + `|\s*$)`),
	regexp.MustCompile(`(?i)\b(?:find|show|get)\s+(?:me\s+)?([A-Za-z][A-Za-z\s]*?)(?:'s)?(?:\s*\b` + nameStopWords + `|\s*$)`),
	regexp.MustCompile(`(?i)([A-Za-z][A-Za-z\s]*?)(?:'s)?\s+` + nameStopWords + `\b`),
}

// ExtractPatientName pulls a patient name out of free text. Pattern matches
// are tried first; failing those, any known name appearing as a substring of
// the text wins. Returns the empty string when nothing matches.
func ExtractPatientName(text string, knownNames []string) string {
	for _, p := range patientNamePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				return name
			}
		}
	}

	lower := strings.ToLower(text)
	for _, known := range knownNames {
		idx := strings.Index(lower, strings.ToLower(known))
		if idx >= 0 {
			return text[idx : idx+len(known)]
		}
	}
	return ""
}
