package detector

import (
	"context"

	"phi-redact/internal/clinicalcontext"
	"phi-redact/internal/core"
	"phi-redact/internal/dictionary"
)

var (
	vehicleTable  table
	vitalSignGate = clinicalcontext.New()
)

// Vehicle detects VIN numbers (17 characters, excluding I/O/Q, with a
// checksum) and labeled and standalone plate formats; year/make/model
// descriptions are not detected. Standalone plate candidates are rejected when the surrounding
// text reads as a vital-sign reading ("BP 150 over 90") rather than a
// vehicle reference.
type Vehicle struct{}

func (Vehicle) Type() core.FilterType { return core.Vehicle }
func (Vehicle) Priority() int         { return PriorityVehicle }

func (Vehicle) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	rules := vehicleTable.compiled([]rule{
		{
			name:       "vin",
			expr:       `\b([A-HJ-NPR-Z0-9]{17})\b`,
			confidence: 0.9,
			group:      1,
			validate:   validVIN,
		},
		{
			name:       "plate-labeled",
			expr:       `(?i)\b(?:plate|license\s*plate|tag)[:\s#]*\s*([A-Z0-9\-]{4,8})\b`,
			confidence: 0.85,
			group:      1,
		},
		{
			name:       "plate-standalone",
			expr:       `\b([A-Z]{2,3}[\-\s]?\d{3,4})\b`,
			confidence: 0.55,
			group:      1,
			validate:   plateNegativeContextGate,
		},
	})
	return scan(text, rules, core.Vehicle, PriorityVehicle, cfg.ContextWindowChars)
}

func validVIN(_ string, _, _ int, value string, _ []string) bool {
	return dictionary.VINValid(value)
}

func plateNegativeContextGate(text string, start, end int, _ string, _ []string) bool {
	return !vitalSignGate.HasNegativeContext(text, start, end, 20)
}
