package detector

import (
	"context"

	"phi-redact/internal/core"
	"phi-redact/internal/dictionary"
)

var ipTable table

// IP detects dotted-quad IPv4 addresses. Each octet must be in [0,255];
// the shape-only regex over-matches (version strings, decimal triples),
// so the validator re-checks octet ranges before accepting.
type IP struct{}

func (IP) Type() core.FilterType { return core.IP }
func (IP) Priority() int         { return PriorityIP }

func (IP) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	rules := ipTable.compiled([]rule{
		{
			name:       "ipv4",
			expr:       `\b(\d{1,3})\.(\d{1,3})\.(\d{1,3})\.(\d{1,3})\b`,
			confidence: 0.95,
			validate: func(_ string, _, _ int, _ string, sm []string) bool {
				if len(sm) < 5 {
					return false
				}
				return dictionary.IPv4OctetsValid([4]string{sm[1], sm[2], sm[3], sm[4]})
			},
		},
	})
	return scan(text, rules, core.IP, PriorityIP, cfg.ContextWindowChars)
}
