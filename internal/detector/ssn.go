package detector

import (
	"context"

	"phi-redact/internal/core"
)

var ssnTable table

// SSN detects NNN-NN-NNNN, NNN NN NNNN, continuous 9-digit forms with a
// label, and partially-masked forms (***-**-NNNN). Example/test SSNs are
// not excluded: the engine redacts plausible shapes regardless of
// real-world allocation.
type SSN struct{}

func (SSN) Type() core.FilterType { return core.SSN }
func (SSN) Priority() int         { return PrioritySSN }

func (SSN) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	rules := ssnTable.compiled([]rule{
		{name: "ssn-dashed", expr: `\b\d{3}-\d{2}-\d{4}\b`, confidence: 0.95},
		{name: "ssn-spaced", expr: `\b\d{3} \d{2} \d{4}\b`, confidence: 0.9},
		{name: "ssn-masked", expr: `\*{3}-\*{2}-\d{4}`, confidence: 0.85},
		{
			name:       "ssn-labeled",
			expr:       `(?i)\bSSN[:\s#]*\s*(\d{9})\b`,
			confidence: 0.9,
			group:      1,
		},
	})
	spans := scan(text, rules, core.SSN, PrioritySSN, cfg.ContextWindowChars)
	return dedupeSameRange(spans)
}
