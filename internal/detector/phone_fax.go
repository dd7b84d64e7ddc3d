package detector

import (
	"context"
	"regexp"
	"strings"

	"phi-redact/internal/core"
	"phi-redact/internal/dictionary"
)

var (
	faxLabelRe   = regexp.MustCompile(`(?i)\bfax\b`)
	phoneShapeRe = regexp.MustCompile(`(?:\+?1[\s.\-]?)?\(?(\d{3})\)?[\s.\-]?(\d{3})[\s.\-]?(\d{4})`)
)

// Fax requires an explicit "fax" label within the match context; the
// digits themselves must validate as a 10-digit US phone shape (or 11
// with a leading 1).
type Fax struct{}

func (Fax) Type() core.FilterType { return core.Fax }
func (Fax) Priority() int         { return PriorityFax }

func (Fax) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	var spans []core.Span
	for _, m := range phoneShapeRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		digits := digitsOnly(text[start:end])
		if !dictionary.USPhoneDigitsValid(digits) {
			continue
		}
		label := core.WindowText(text, start, end, 20)
		if !faxLabelRe.MatchString(label) {
			continue
		}
		spans = append(spans, core.NewSpan(text, start, end, core.Fax, 0.95, PriorityFax, "fax-labeled", cfg.ContextWindowChars))
	}
	return spans
}

// Phone detects US phone-shaped number sequences, excluding any match
// whose digits are also captured by a fax-labeled match (the fax label
// takes priority over the generic phone shape for the same digits).
type Phone struct{}

func (Phone) Type() core.FilterType { return core.Phone }
func (Phone) Priority() int         { return PriorityPhone }

func (Phone) Detect(_ context.Context, text string, cfg core.Config, rctx *core.RedactionContext) []core.Span {
	faxDigits := make(map[string]bool)
	for _, s := range (Fax{}).Detect(context.Background(), text, cfg, rctx) {
		faxDigits[digitsOnly(s.OriginalValue)] = true
	}

	var spans []core.Span
	for _, m := range phoneShapeRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		digits := digitsOnly(text[start:end])
		if !dictionary.USPhoneDigitsValid(digits) {
			continue
		}
		if faxDigits[digits] {
			continue
		}
		spans = append(spans, core.NewSpan(text, start, end, core.Phone, 0.85, PriorityPhone, "phone-shape", cfg.ContextWindowChars))
	}
	return spans
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
