package detector

import (
	"context"
	"strings"

	"phi-redact/internal/core"
	"phi-redact/internal/dictionary"
)

// Facility performs a dictionary lookup against the frozen hospital/
// facility name table: a quick keyword presence test, then an exact-
// phrase scan of the facility names. Emitted as ADDRESS per §9's open
// question (hospital/facility detections compete with the street
// detector on priority rather than being merged ahead of time).
type Facility struct{}

func (Facility) Type() core.FilterType { return core.Address }
func (Facility) Priority() int         { return PriorityAddress }

func (Facility) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	if !dictionary.HasFacilityKeyword(text) {
		return nil
	}
	var spans []core.Span
	for _, name := range dictionary.FacilityNames() {
		for _, start := range findAllIndexFold(text, name) {
			end := start + len(name)
			spans = append(spans, core.NewSpan(text, start, end, core.Address, 0.92, PriorityAddress, "facility-name", cfg.ContextWindowChars))
		}
	}
	return spans
}

// findAllIndexFold returns the start offsets (in the original text) of
// every non-overlapping, case-insensitive occurrence of substr.
func findAllIndexFold(text, substr string) []int {
	if substr == "" {
		return nil
	}
	lowerText, lowerSub := strings.ToLower(text), strings.ToLower(substr)
	var offsets []int
	from := 0
	for {
		idx := strings.Index(lowerText[from:], lowerSub)
		if idx < 0 {
			break
		}
		offsets = append(offsets, from+idx)
		from += idx + len(substr)
		if from >= len(lowerText) {
			break
		}
	}
	return offsets
}
