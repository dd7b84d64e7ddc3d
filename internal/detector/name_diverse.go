package detector

import (
	"context"
	"regexp"
	"strings"

	"phi-redact/internal/clinicalcontext"
	"phi-redact/internal/core"
	"phi-redact/internal/dictionary"
)

var (
	hyphenatedSurnameRe  = regexp.MustCompile(`\b([A-Z][a-z]+-[A-Z][a-z]+)\b`)
	generationalSuffixRe = regexp.MustCompile(`\b([A-Z][a-z]+\s+[A-Z][a-z]+\s+(?:III|IV|V))\b`)
	patientAnchoredRe    = regexp.MustCompile(`(?i)\b(?:Patient|Client)\s*:\s*([A-Z][a-z]+)\b`)
	bareFirstNameRe      = regexp.MustCompile(`\b([A-Z][a-z]{2,})\b`)
)

// ContextAwareDiverseName handles hyphenated surnames, names carrying a
// generational suffix (III, IV), single given names anchored by a
// patient-label, and bare given-name candidates: these require clinical
// context strength >= Moderate to survive the whitelist, relaxed to >= Weak
// when the candidate is itself a known given or family name.
type ContextAwareDiverseName struct{}

func (ContextAwareDiverseName) Type() core.FilterType { return core.Name }
func (ContextAwareDiverseName) Priority() int         { return PriorityName }

func (ContextAwareDiverseName) Detect(_ context.Context, text string, cfg core.Config, rctx *core.RedactionContext) []core.Span {
	var spans []core.Span

	for _, m := range hyphenatedSurnameRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2], m[3]
		candidate := text[start:end]
		if whitelisted(candidate, precededByTitleOrFamilyLabel(text, start)) {
			continue
		}
		confidence := 0.75
		if halves := strings.SplitN(candidate, "-", 2); len(halves) == 2 &&
			(dictionary.IsFamilyName(halves[0]) || dictionary.IsFamilyName(halves[1])) {
			confidence = 0.85
		}
		spans = append(spans, core.NewSpan(text, start, end, core.Name, confidence, PriorityName, "hyphenated-surname", cfg.ContextWindowChars))
	}

	for _, m := range generationalSuffixRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2], m[3]
		spans = append(spans, core.NewSpan(text, start, end, core.Name, 0.8, PriorityName, "generational-suffix", cfg.ContextWindowChars))
	}

	for _, m := range patientAnchoredRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2], m[3]
		candidate := text[start:end]
		if whitelisted(candidate, true) {
			continue
		}
		spans = append(spans, core.NewSpan(text, start, end, core.Name, 0.85, PriorityName, "patient-anchored-given-name", cfg.ContextWindowChars))
	}

	for _, m := range bareFirstNameRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2], m[3]
		candidate := text[start:end]
		bypass := precededByTitleOrFamilyLabel(text, start)
		if whitelisted(candidate, bypass) {
			continue
		}
		strength, boost := cachedOrComputedStrength(rctx, text, start, end, cfg.ContextWindowChars)

		// A known given/family name only needs Weak clinical context to
		// survive, since the dictionary hit is itself corroborating
		// evidence; an unrecognized token still needs Moderate.
		knownName := dictionary.IsGivenName(candidate) || dictionary.IsFamilyName(candidate)
		threshold := int(clinicalcontext.Moderate)
		if knownName {
			threshold = int(clinicalcontext.Weak)
		}
		if strength < threshold {
			continue
		}

		confidence := 0.55 + boost
		if knownName {
			confidence += 0.1
		}
		if confidence > 0.95 {
			confidence = 0.95
		}
		pattern := "bare-given-name-context-gated"
		if knownName {
			pattern = "bare-given-name-dictionary-confirmed"
		}
		spans = append(spans, core.NewSpan(text, start, end, core.Name, confidence, PriorityName, pattern, cfg.ContextWindowChars))
	}

	return dedupeSameRange(spans)
}
