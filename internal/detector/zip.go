package detector

import (
	"context"

	"phi-redact/internal/core"
	"phi-redact/internal/dictionary"
)

var zipTable table

// Zip detects US ZIP codes: NNNNN or NNNNN-NNNN, plus the OCR-artifact
// state-attached variant (two uppercase letters glued to the digits,
// e.g. "CA90210") where only the digits are captured. The two-letter
// prefix is checked against dictionary.IsStateCode so an arbitrary
// uppercase-letter-pair-plus-digits run (e.g. a lab code) isn't mistaken
// for this artifact. Every rule runs, so the zip5 rule also emits the
// first five digits of a ZIP+4; the resolver drops that span because it
// lies inside the longer ZIP+4 span.
type Zip struct{}

func (Zip) Type() core.FilterType { return core.ZipCode }
func (Zip) Priority() int         { return PriorityZIP }

func (Zip) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	rules := zipTable.compiled([]rule{
		{name: "zip+4", expr: `\b(\d{5}-\d{4})\b`, confidence: 0.85, group: 1},
		{
			name:       "zip-state-attached",
			expr:       `\b([A-Z]{2})(\d{5})\b`,
			confidence: 0.8,
			group:      2,
			validate: func(_ string, _, _ int, _ string, groups []string) bool {
				return len(groups) > 1 && dictionary.IsStateCode(groups[1])
			},
		},
		{name: "zip5", expr: `\b(\d{5})\b`, confidence: 0.85, group: 1},
	})
	return scan(text, rules, core.ZipCode, PriorityZIP, cfg.ContextWindowChars)
}
