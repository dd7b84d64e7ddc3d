package core

import "strings"

// NewSpan builds a Span for a detector match, attaching the surrounding
// context window and tokenizing it into Window per the span factory's
// responsibility.
//
// originalValue must equal text[start:end]; callers that compute start/end
// from a repaired/normalized copy of text (e.g. the date OCR normalizer)
// must map back to original offsets before calling this.
func NewSpan(text string, start, end int, filterType FilterType, confidence float64, priority int, pattern string, windowChars int) Span {
	context := WindowText(text, start, end, windowChars)
	return Span{
		Text:           text[start:end],
		OriginalValue:  text[start:end],
		CharacterStart: start,
		CharacterEnd:   end,
		FilterType:     filterType,
		Confidence:     confidence,
		Priority:       priority,
		Context:        context,
		Pattern:        pattern,
		Window:         tokenizeWindow(context),
	}
}

// WindowText extracts the surrounding text within radiusChars of
// [start,end) in text, clamped to the text bounds.
func WindowText(text string, start, end, radius int) string {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(text) {
		hi = len(text)
	}
	if lo >= hi {
		return ""
	}
	return text[lo:hi]
}

// tokenizeWindow splits a context window into whitespace-delimited tokens
// for Span.Window, the "optional list of neighboring tokens" the data
// model names.
func tokenizeWindow(context string) []string {
	fields := strings.Fields(context)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
