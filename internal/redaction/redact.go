// Package redaction strips personal data from free-text resume bodies before they are persisted.
package redaction

import (
	"regexp"
)

// Rule replaces every match of Pattern with Placeholder
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Placeholder string
}

// PIIRedactor applies its rules in order; earlier rules win over later, looser ones
type PIIRedactor struct {
	rules []Rule
}

// NewPIIRedactor creates a redactor for emails, SSNs, card numbers and phone numbers
func NewPIIRedactor() *PIIRedactor {
	return &PIIRedactor{
		rules: []Rule{
			{
				Name:        "emails",
				Pattern:     regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
				Placeholder: "[EMAIL_REDACTED]",
			},
			{
				// US format
				Name:        "ssns",
				Pattern:     regexp.MustCompile(`\b\d{3}[- ]\d{2}[- ]\d{4}\b`),
				Placeholder: "[SSN_REDACTED]",
			},
			{
				// 13-19 digits, before phones so card numbers are not split into phones
				Name:        "credit_cards",
				Pattern:     regexp.MustCompile(`\b(?:\d[ -]?){12,18}\d\b`),
				Placeholder: "[CREDIT_CARD_REDACTED]",
			},
			{
				Name:        "phones",
				Pattern:     regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?(?:\(\d{3}\)\s?|\b\d{3}[-.\s])?\b\d{3}[-.\s]\d{4}\b`),
				Placeholder: "[PHONE_REDACTED]",
			},
		},
	}
}

// RedactContent removes PII from the content
func (r *PIIRedactor) RedactContent(content []byte) []byte {
	result := content
	for _, rule := range r.rules {
		result = rule.Pattern.ReplaceAll(result, []byte(rule.Placeholder))
	}
	return result
}

// RedactString removes PII from a string
func (r *PIIRedactor) RedactString(content string) string {
	return string(r.RedactContent([]byte(content)))
}

// CountPIIItems counts matches per rule name without modifying the content.
// Each rule counts against the text left by the rules before it.
func (r *PIIRedactor) CountPIIItems(content []byte) map[string]int {
	counts := make(map[string]int, len(r.rules))
	remaining := content
	for _, rule := range r.rules {
		counts[rule.Name] = len(rule.Pattern.FindAll(remaining, -1))
		remaining = rule.Pattern.ReplaceAll(remaining, []byte(rule.Placeholder))
	}
	return counts
}

// DefaultRedactor is the default PII redactor instance
var DefaultRedactor = NewPIIRedactor()

// Redact is a convenience function that uses the default redactor
func Redact(content []byte) []byte {
	return DefaultRedactor.RedactContent(content)
}

// RedactString is a convenience function that uses the default redactor
func RedactString(content string) string {
	return DefaultRedactor.RedactString(content)
}
