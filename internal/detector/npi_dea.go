package detector

import (
	"context"

	"phi-redact/internal/core"
	"phi-redact/internal/dictionary"
)

var npiTable table
var deaTable table

// NPI requires an explicit "NPI" label followed by exactly 10 digits.
type NPI struct{}

func (NPI) Type() core.FilterType { return core.NPI }
func (NPI) Priority() int         { return PriorityNPI }

func (NPI) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	rules := npiTable.compiled([]rule{
		{name: "npi-labeled", expr: `(?i)\bNPI[:\s#]*\s*(\d{10})\b`, confidence: 0.95, group: 1},
	})
	return scan(text, rules, core.NPI, PriorityNPI, cfg.ContextWindowChars)
}

// DEA detects two-letter-plus-seven-digit DEA registrant numbers. The
// first letter must be from a fixed set of registrant codes, and the
// checksum digit (the 7th) must equal the last digit of
// (d1+d3+d5) + 2*(d2+d4+d6).
type DEA struct{}

func (DEA) Type() core.FilterType { return core.DEA }
func (DEA) Priority() int         { return PriorityDEA }

func (DEA) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	rules := deaTable.compiled([]rule{
		{
			name:       "dea",
			expr:       `\b([A-Z]{2}\d{7})\b`,
			confidence: 0.9,
			group:      1,
			validate:   validDEA,
		},
	})
	return scan(text, rules, core.DEA, PriorityDEA, cfg.ContextWindowChars)
}

func validDEA(_ string, _, _ int, value string, _ []string) bool {
	if len(value) != 9 {
		return false
	}
	if !dictionary.IsDEAFirstLetter(value[0]) {
		return false
	}
	return dictionary.DEAChecksumValid(value[2:])
}
