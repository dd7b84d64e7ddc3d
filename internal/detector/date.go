package detector

import (
	"context"
	"regexp"

	"phi-redact/internal/core"
	"phi-redact/internal/dictionary"
)

// Date detects absolute calendar dates: US MM/DD/YYYY, ISO YYYY-MM-DD,
// European DD.MM.YYYY, named-month variants, ordinal forms ("15th of
// January 2024"), and military format (23JAN2024). Before matching the
// numeric-separator forms, a reversible OCR-repair pass normalizes
// structurally corrupted date-shaped windows (doubled separators,
// embedded spaces, pipe-for-one, stray letters for digits) and maps the
// repaired match position back to the original range.
type Date struct{}

func (Date) Type() core.FilterType { return core.Date }
func (Date) Priority() int         { return PriorityDate }

var (
	usDateRe       = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{2,4})\b`)
	isoDateRe      = regexp.MustCompile(`\b(\d{4}-\d{1,2}-\d{1,2})\b`)
	euroDateRe     = regexp.MustCompile(`\b(\d{1,2}\.\d{1,2}\.\d{2,4})\b`)
	militaryDateRe = regexp.MustCompile(`\b(\d{2}(?:JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)\d{4})\b`)
	namedMonthRe   = regexp.MustCompile(`(?i)\b((?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4})\b`)
	ordinalDateRe  = regexp.MustCompile(`(?i)\b(\d{1,2}(?:st|nd|rd|th)\s+of\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4})\b`)

	ocrCandidateWindowRe = regexp.MustCompile(`[0-9OIlS|]{1,4}[ \t]{0,2}[/.\-]{1,2}[ \t]{0,2}[0-9OIlS|]{1,4}[ \t]{0,2}[/.\-]{1,2}[ \t]{0,2}[0-9OIlS|]{2,4}`)
)

func (Date) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	var spans []core.Span

	for _, m := range usDateRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, core.NewSpan(text, m[2], m[3], core.Date, 0.9, PriorityDate, "date-us", cfg.ContextWindowChars))
	}
	for _, m := range isoDateRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, core.NewSpan(text, m[2], m[3], core.Date, 0.9, PriorityDate, "date-iso", cfg.ContextWindowChars))
	}
	for _, m := range euroDateRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, core.NewSpan(text, m[2], m[3], core.Date, 0.85, PriorityDate, "date-euro", cfg.ContextWindowChars))
	}
	for _, m := range militaryDateRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, core.NewSpan(text, m[2], m[3], core.Date, 0.85, PriorityDate, "date-military", cfg.ContextWindowChars))
	}
	for _, m := range namedMonthRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, core.NewSpan(text, m[2], m[3], core.Date, 0.92, PriorityDate, "date-named-month", cfg.ContextWindowChars))
	}
	for _, m := range ordinalDateRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, core.NewSpan(text, m[2], m[3], core.Date, 0.9, PriorityDate, "date-ordinal", cfg.ContextWindowChars))
	}

	spans = append(spans, detectOCRCorruptedDates(text, cfg)...)

	return dedupeSameRange(spans)
}

// detectOCRCorruptedDates finds date-shaped windows with structural OCR
// corruption, repairs each window in isolation, matches the clean numeric
// date patterns against the repaired text, and maps the match back to
// the original offsets via the window's position map.
func detectOCRCorruptedDates(text string, cfg core.Config) []core.Span {
	var spans []core.Span
	for _, loc := range ocrCandidateWindowRe.FindAllStringIndex(text, -1) {
		winStart, winEnd := loc[0], loc[1]
		window := text[winStart:winEnd]
		repaired, posMap := repairDateWindow(window)
		if repaired == window {
			continue // nothing to repair; the clean scan above already covers it
		}
		for _, spec := range []struct {
			name string
			re   *regexp.Regexp
			conf float64
		}{
			{"date-us-ocr-repaired", usDateRe, 0.8},
			{"date-iso-ocr-repaired", isoDateRe, 0.8},
			{"date-euro-ocr-repaired", euroDateRe, 0.75},
		} {
			for _, m := range spec.re.FindAllStringSubmatchIndex(repaired, -1) {
				rs, re := m[2], m[3]
				if rs < 0 || re > len(posMap) || rs >= re {
					continue
				}
				origStart := winStart + posMap[rs]
				origEnd := winStart + posMap[re-1] + 1
				spans = append(spans, core.NewSpan(text, origStart, origEnd, core.Date, spec.conf, PriorityDate, spec.name, cfg.ContextWindowChars))
			}
		}
	}
	return spans
}

// repairDateWindow normalizes a date-shaped substring: drops embedded
// whitespace, collapses a doubled separator to one, and maps common OCR
// digit confusions (O/o -> 0, I/l/| -> 1, S -> 5) to their digit. posMap
// gives, for each byte in repaired, its originating byte offset within
// window — the reversible mapping back to original text offsets. The
// window is NFC-normalized first; ocrCandidateWindowRe matches only
// ASCII, which NFC leaves unchanged, so this never alters the window or
// shifts the offsets posMap records.
func repairDateWindow(window string) (repaired string, posMap []int) {
	window = dictionary.Normalize(window)

	var out []byte
	var pm []int
	var lastSep byte

	for i := 0; i < len(window); i++ {
		c := window[i]
		switch c {
		case ' ', '\t':
			continue // embedded space: dropped, not mapped
		case '/', '-', '.':
			if lastSep == c {
				continue // doubled separator: dropped
			}
			lastSep = c
			out = append(out, c)
			pm = append(pm, i)
		default:
			lastSep = 0
			out = append(out, repairOCRDigit(c))
			pm = append(pm, i)
		}
	}
	return string(out), pm
}

func repairOCRDigit(c byte) byte {
	switch c {
	case 'O', 'o':
		return '0'
	case 'I', 'l', '|':
		return '1'
	case 'S':
		return '5'
	default:
		return c
	}
}
