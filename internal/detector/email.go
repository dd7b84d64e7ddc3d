package detector

import (
	"context"
	"strings"

	"golang.org/x/net/idna"

	"phi-redact/internal/core"
)

var emailTable table

// Email detects RFC-5322-lite addresses: local@domain.tld, TLD at least
// two characters, case-insensitive, word-bounded. Unambiguous structural
// markers (@, domain, TLD) give it a single fixed high confidence. The
// pattern accepts ASCII domains only, so an internationalized (non-ASCII)
// domain is not matched; the domain of a match is then passed through
// IDNA lookup, which rejects malformed ones such as a domain with an
// empty label.
type Email struct{}

func (Email) Type() core.FilterType { return core.Email }
func (Email) Priority() int         { return PriorityEmail }

func (Email) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	rules := emailTable.compiled([]rule{
		{
			name:       "email",
			expr:       `(?i)\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`,
			confidence: 0.95,
			validate:   validEmailDomain,
		},
	})
	return scan(text, rules, core.Email, PriorityEmail, cfg.ContextWindowChars)
}

func validEmailDomain(_ string, _, _ int, value string, _ []string) bool {
	at := strings.LastIndexByte(value, '@')
	if at < 0 || at == len(value)-1 {
		return false
	}
	domain := value[at+1:]
	_, err := idna.Lookup.ToASCII(domain)
	return err == nil
}
