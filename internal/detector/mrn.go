package detector

import (
	"context"
	"strings"

	"phi-redact/internal/core"
)

var mrnTable table

// mrnLabels are the ordered label spellings an MRN pattern accepts,
// including common OCR-corrupted variants of "MED" (JED, M0E) produced
// by scanning clinical forms with a worn or low-contrast "M".
var mrnLabels = []string{
	`MRN`, `M\.R\.N\.`, `Medical Record(?:\s+Number)?`, `Med(?:ical)?\s*Rec(?:ord)?`,
	`Record\s*#`, `Record\s*Number`, `Chart\s*#`, `Chart\s*Number`,
	`Pt\.?\s*ID`, `Patient\s*ID`, `Patient\s*Number`, `Acct\.?\s*#`,
	`Account\s*#`, `Account\s*Number`, `Hosp(?:ital)?\s*#`, `Visit\s*#`,
	`Encounter\s*#`, `File\s*#`, `JED`, `M0E`, `MEO`, `ME0`, `MED`,
}

// MRN matches a label from mrnLabels followed by an identifier, across
// 23 ordered label spellings including OCR-corrupted prefixes. The
// validator requires at least one digit in the value and rejects values
// that are already a redaction token (no literal "{{"), satisfying
// idempotence over re-detection.
type MRN struct{}

func (MRN) Type() core.FilterType { return core.MRN }
func (MRN) Priority() int         { return PriorityMRN }

func (MRN) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	rules := mrnTable.compiled(buildMRNRules())
	spans := scan(text, rules, core.MRN, PriorityMRN, cfg.ContextWindowChars)
	return dedupeSameRange(spans)
}

func buildMRNRules() []rule {
	rules := make([]rule, 0, len(mrnLabels))
	for _, label := range mrnLabels {
		rules = append(rules, rule{
			name:       "mrn-" + label,
			expr:       `(?i)\b(?:` + label + `)[:\s#]*\s*([A-Z0-9\-]{4,20})\b`,
			confidence: 0.90,
			group:      1,
			validate:   validMRNValue,
		})
	}
	return rules
}

func validMRNValue(_ string, _, _ int, value string, _ []string) bool {
	if strings.Contains(value, "{{") {
		return false
	}
	return strings.ContainsAny(value, "0123456789")
}
