package detector

import (
	"context"
	"regexp"

	"phi-redact/internal/core"
)

var (
	titledNameRe    = regexp.MustCompile(`\b(?:Dr|Mr|Mrs|Ms|Prof)\.?\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})\b`)
	titledFullNameRe = regexp.MustCompile(`\b(?:Dr|Mr|Mrs|Ms|Prof)\.?\s+([A-Z][a-z]+\s+[A-Z][a-z]+\b(?:\s+(?:Jr|Sr|II|III|IV)\b\.?)?)`)
	providerRoleRe   = regexp.MustCompile(`\b(?i:Attending|Surgeon|Sonographer|Physician|Radiologist|Nurse|Consultant)\s*:\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`)
	familyLabelRe    = regexp.MustCompile(`(?i)\b(?:Daughter|Son|Wife|Husband|Mother|Father|Sister|Brother|Spouse|Parent|Guardian)\s*:\s*([A-Z][a-z]+)\b`)
)

// TitledName emits PROVIDER_NAME for tokens preceded by a person title or
// a provider-role label, including Title+Given+Family+Suffix forms. It
// emits nothing else; relationship-label-anchored given names are
// FamilyName's (below). The "Last,
// First" and generic full-name sub-patterns from the hardest subsystem
// are intentionally disabled here — ContextAwareDiverseName owns those.
type TitledName struct{}

func (TitledName) Type() core.FilterType { return core.ProviderName }
func (TitledName) Priority() int         { return PriorityProviderName }

func (TitledName) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	var spans []core.Span

	seen := make(map[int]bool)
	for _, m := range titledFullNameRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		spans = append(spans, core.NewSpan(text, start, end, core.ProviderName, 0.9, PriorityProviderName, "titled-full-name", cfg.ContextWindowChars))
		seen[start] = true
	}
	for _, m := range titledNameRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		if seen[start] {
			continue
		}
		spans = append(spans, core.NewSpan(text, start, end, core.ProviderName, 0.85, PriorityProviderName, "titled-name", cfg.ContextWindowChars))
	}
	for _, m := range providerRoleRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2], m[3]
		spans = append(spans, core.NewSpan(text, start, end, core.ProviderName, 0.85, PriorityProviderName, "provider-role-label", cfg.ContextWindowChars))
	}

	return dedupeSameRange(spans)
}

// FamilyName emits FAMILY_NAME for a given name immediately anchored by a
// relationship label ("Daughter: Emma").
type FamilyName struct{}

func (FamilyName) Type() core.FilterType { return core.FamilyName }
func (FamilyName) Priority() int         { return PriorityFamilyName }

func (FamilyName) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	var spans []core.Span
	for _, m := range familyLabelRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2], m[3]
		spans = append(spans, core.NewSpan(text, start, end, core.FamilyName, 0.8, PriorityFamilyName, "family-relationship-label", cfg.ContextWindowChars))
	}
	return spans
}
