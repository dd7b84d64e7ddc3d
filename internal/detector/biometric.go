package detector

import (
	"context"

	"phi-redact/internal/core"
)

var biometricTable table

// Biometric covers five sub-patterns: sentence-level keyword presence,
// descriptor phrases, photograph references, DNA/genetic test results,
// and formatted biometric ID codes (IRIS-*, DNA-*, FP-*). Each sub-pattern
// is its own rule; isBiometricReference-shaped validation on the formatted
// codes rejects bare alphanumerics that happen to share the prefix.
type Biometric struct{}

func (Biometric) Type() core.FilterType { return core.Biometric }
func (Biometric) Priority() int         { return PriorityBiometric }

func (Biometric) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	rules := biometricTable.compiled([]rule{
		{
			name:       "biometric-keyword-sentence",
			expr:       `(?i)[^.]*\b(?:fingerprint|retinal\s*scan|iris\s*scan|facial\s*recognition|voiceprint)\b[^.]*\.`,
			confidence: 0.8,
		},
		{
			name:       "biometric-descriptor-phrase",
			expr:       `(?i)\b(?:distinguishing\s*mark|unique\s*identifier\s*scar|birthmark\s*on\s*the)\b[^.]{0,60}`,
			confidence: 0.7,
		},
		{
			name:       "biometric-photograph-reference",
			expr:       `(?i)\bphoto(?:graph)?\s*(?:on\s*file|attached|ID)\b`,
			confidence: 0.75,
		},
		{
			name:       "biometric-genetic-result",
			expr:       `(?i)\b(?:DNA|genetic)\s*test\s*result[s]?\s*:?\s*[A-Za-z0-9\-]{4,20}`,
			confidence: 0.85,
		},
		{
			name:       "biometric-formatted-code",
			expr:       `\b((?:IRIS|DNA|FP|RETINA|VOICE)-[A-Z0-9]{4,16})\b`,
			confidence: 0.9,
			group:      1,
			validate:   isBiometricReference,
		},
	})
	return scan(text, rules, core.Biometric, PriorityBiometric, cfg.ContextWindowChars)
}

func isBiometricReference(_ string, _, _ int, value string, _ []string) bool {
	dash := -1
	for i, r := range value {
		if r == '-' {
			dash = i
			break
		}
	}
	if dash < 0 || dash == len(value)-1 {
		return false
	}
	return true
}
