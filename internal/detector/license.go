package detector

import (
	"context"

	"phi-redact/internal/core"
)

var licenseTable table

// License detects driver's-license-shaped identifiers: a state
// abbreviation prefix plus digits, or an explicit license-label prefix,
// optionally covering professional license numbers as well.
type License struct{}

func (License) Type() core.FilterType { return core.License }
func (License) Priority() int         { return PriorityLicense }

func (License) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	rules := licenseTable.compiled([]rule{
		{
			name:       "license-labeled",
			expr:       `(?i)\b(?:DL|driver'?s?\s*lic(?:ense)?|license\s*(?:number|#)?|lic\.?\s*#)[:\s#]*\s*([A-Z0-9]{5,13})\b`,
			confidence: 0.85,
			group:      1,
		},
		{
			name:       "license-state-prefixed",
			expr:       `\b(?:DL)?([A-Z]{1,2}\d{6,9})\b`,
			confidence: 0.6,
			group:      1,
		},
	})
	return scan(text, rules, core.License, PriorityLicense, cfg.ContextWindowChars)
}
