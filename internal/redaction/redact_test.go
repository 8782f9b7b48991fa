package redaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		gone        []string
		placeholder string
	}{
		{
			name:        "emails",
			content:     "Contact me at john.doe@example.com or support@company.org",
			gone:        []string{"john.doe@example.com", "support@company.org"},
			placeholder: "[EMAIL_REDACTED]",
		},
		{
			name:        "phones",
			content:     "Call me at 555-123-4567 or +1 (800) 555-0123",
			gone:        []string{"555-123-4567", "800", "0123"},
			placeholder: "[PHONE_REDACTED]",
		},
		{
			name:        "ssns",
			content:     "SSN: 123-45-6789",
			gone:        []string{"123-45-6789"},
			placeholder: "[SSN_REDACTED]",
		},
		{
			name:        "credit cards",
			content:     "Card number: 4111111111111111",
			gone:        []string{"4111111111111111"},
			placeholder: "[CREDIT_CARD_REDACTED]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redacted := string(Redact([]byte(tt.content)))
			for _, s := range tt.gone {
				assert.NotContains(t, redacted, s)
			}
			assert.Contains(t, redacted, tt.placeholder)
		})
	}
}

func TestRedact_NoPII(t *testing.T) {
	content := "This is a normal text without any personal information"
	assert.Equal(t, content, RedactString(content))
}

func TestRedact_ResumeBodyKeepsCareerFacts(t *testing.T) {
	content := `
Jane Roe
jane.roe@example.com | 555-123-4567
Senior Engineer, Acme (2018-2023)
Led a team of 6, 8 years of Go experience
`
	redacted := RedactString(content)

	assert.NotContains(t, redacted, "jane.roe@example.com")
	assert.NotContains(t, redacted, "555-123-4567")
	assert.Contains(t, redacted, "Jane Roe")
	assert.Contains(t, redacted, "2018-2023")
	assert.Contains(t, redacted, "8 years of Go experience")
}

func TestCountPIIItems(t *testing.T) {
	redactor := NewPIIRedactor()
	content := []byte("Emails: a@test.com, b@test.com. Phone: 555-123-4567. SSN 123-45-6789")

	counts := redactor.CountPIIItems(content)

	assert.Equal(t, map[string]int{
		"emails":       2,
		"ssns":         1,
		"credit_cards": 0,
		"phones":       1,
	}, counts)
	assert.Contains(t, string(content), "a@test.com", "counting must not modify input")
}

func TestDefaultRedactor(t *testing.T) {
	assert.NotNil(t, DefaultRedactor)
	assert.Equal(t, DefaultRedactor.RedactString("x@y.io"), RedactString("x@y.io"))
}
