package detector

import (
	"context"
	"strings"

	"phi-redact/internal/core"
	"phi-redact/internal/dictionary"
)

var addressTable table

// streetSuffixAlternation is built from the shared dictionary table rather
// than a second hardcoded suffix list, so the regex and dictionary.IsStreetSuffix
// never drift out of sync.
var streetSuffixAlternation = strings.Join(dictionary.StreetSuffixes(), "|")

// Address detects multi-format street addresses (US, Canadian, UK,
// Australian), state/province/postal abbreviations, highway references,
// and a "contextual city" mode: a capitalized token counts as a city only
// when immediately preceded by a location preposition (near, in, from),
// since a bare capitalized word is otherwise too ambiguous with a name.
type Address struct{}

func (Address) Type() core.FilterType { return core.Address }
func (Address) Priority() int         { return PriorityAddress }

func (Address) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	rules := addressTable.compiled([]rule{
		{
			// Suffix alternation comes from dictionary.StreetSuffixes();
			// validate re-checks the captured word against
			// dictionary.IsStreetSuffix directly as the authoritative test.
			name:       "street-number-and-suffix",
			expr:       `(?i)\b\d{1,6}\s+[A-Za-z0-9\s]{1,40}?\b(` + streetSuffixAlternation + `)\b\.?`,
			confidence: 0.82,
			validate: func(_ string, _, _ int, _ string, groups []string) bool {
				if len(groups) < 2 {
					return false
				}
				return dictionary.IsStreetSuffix(groups[1])
			},
		},
		{
			name:       "highway-reference",
			expr:       `(?i)\b(?:Highway|Hwy|Interstate|I-)\s*\d{1,3}\b`,
			confidence: 0.7,
		},
		{
			name:       "postal-code-ca-uk",
			expr:       `\b[A-Z]\d[A-Z]\s?\d[A-Z]\d\b`,
			confidence: 0.75,
		},
		{
			// A two-letter code immediately before a ZIP code is only a
			// real address component when it's a known US state/territory
			// abbreviation, checked against dictionary.IsStateCode.
			name:       "state-code-before-zip",
			expr:       `\b([A-Z]{2})\s+\d{5}(?:-\d{4})?\b`,
			confidence: 0.65,
			group:      1,
			validate: func(_ string, _, _ int, value string, _ []string) bool {
				return dictionary.IsStateCode(value)
			},
		},
		{
			// Same shape in front of a Canadian postal code, checked
			// against dictionary.IsProvinceCode.
			name:       "province-code-before-postal",
			expr:       `\b([A-Z]{2})\s+[A-Z]\d[A-Z]\s?\d[A-Z]\d\b`,
			confidence: 0.65,
			group:      1,
			validate: func(_ string, _, _ int, value string, _ []string) bool {
				return dictionary.IsProvinceCode(value)
			},
		},
		{
			name:       "contextual-city",
			expr:       `\b(?i:near|in|from)\s+([A-Z][a-z]+(?:\s[A-Z][a-z]+)?)\b`,
			confidence: 0.6,
			group:      1,
		},
	})
	return scan(text, rules, core.Address, PriorityAddress, cfg.ContextWindowChars)
}
