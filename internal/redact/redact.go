// Package redact scrubs credentials and personal data from text before it
// is logged. The generation service echoes backend failures (database URLs,
// provider API keys) in its error bodies, and those bodies end up in
// diagnostics when a call is rejected or malformed.
package redact

import (
	"regexp"
	"unicode/utf8"
)

// Placeholders substituted for redacted text.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules run in order; credentials inside URLs go first so the host stays
// readable.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?i)\b([a-z][a-z0-9+.-]*://)[^/\s:@]+(:[^/\s@]*)?@`),
		replacement: "${1}" + RedactedCredentialPlaceholder + "@",
	},
	{
		pattern:     regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9_\-.~+/=]{8,}`),
		replacement: "Bearer " + RedactedKeyPlaceholder,
	},
	{
		// provider keys such as gsk_..., sk-..., AIza...
		pattern:     regexp.MustCompile(`\b(?:gsk_|sk-|AIza)[A-Za-z0-9_\-]{16,}`),
		replacement: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\b(api[_-]?key|token|secret|password)(["'\s:=]+)[^"'\s,}]{6,}`),
		replacement: "${1}${2}" + RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		replacement: RedactedEmailPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Snippet redacts s and cuts it to at most maxRunes runes, marking the cut
// with an ellipsis. It keeps response bodies in logs short.
func Snippet(s string, maxRunes int) string {
	s = String(s)
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxRunes]) + "…"
}
