package detector

import (
	"context"

	"phi-redact/internal/core"
	"phi-redact/internal/dictionary"
)

var creditCardTable table

// CreditCard detects 13-19 digit sequences with flexible separators,
// including labeled, spaced, and dashed variants plus the AMEX-specific
// shape. Redaction fires even on Luhn-failing numbers that are a known
// example BIN or the AMEX shape, since test/example numbers must be
// redacted regardless of real-world validity.
type CreditCard struct{}

func (CreditCard) Type() core.FilterType { return core.CreditCard }
func (CreditCard) Priority() int         { return PriorityCreditCard }

func (CreditCard) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	rules := creditCardTable.compiled([]rule{
		{
			name:       "card-dashed-or-spaced",
			expr:       `\b\d{4}[\-\s]\d{4,6}[\-\s]\d{4,6}(?:[\-\s]\d{1,4})?\b`,
			confidence: 0.9,
			validate:   validCardShape,
		},
		{
			name:       "card-continuous",
			expr:       `\b\d{13,19}\b`,
			confidence: 0.85,
			validate:   validCardShape,
		},
		{
			name:       "card-labeled",
			expr:       `(?i)\bcard[:\s#]*\s*((?:\d[\-\s]?){13,19})`,
			confidence: 0.9,
			group:      1,
			validate:   validCardShape,
		},
	})
	spans := scan(text, rules, core.CreditCard, PriorityCreditCard, cfg.ContextWindowChars)
	return dedupeSameRange(spans)
}

func validCardShape(_ string, _, _ int, value string, _ []string) bool {
	digits := digitsOnly(value)
	return dictionary.CreditCardValid(digits)
}
