package detector

import (
	"testing"

	"phi-redact/internal/core"
)

func TestScan_EmitsSpanPerValidatedMatch(t *testing.T) {
	var tbl table
	rules := tbl.compiled([]rule{
		{name: "digits", expr: `\b\d{3}\b`, confidence: 0.7},
	})
	spans := scan("abc 123 def 456", rules, core.MRN, 50, 20)
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2: %+v", len(spans), spans)
	}
	if spans[0].OriginalValue != "123" || spans[1].OriginalValue != "456" {
		t.Errorf("unexpected span values: %+v", spans)
	}
}

func TestScan_SkipsMatchFailingValidate(t *testing.T) {
	var tbl table
	rules := tbl.compiled([]rule{
		{
			name:       "digits",
			expr:       `\b\d{3}\b`,
			confidence: 0.7,
			validate:   func(_ string, _, _ int, value string, _ []string) bool { return value != "123" },
		},
	})
	spans := scan("abc 123 def 456", rules, core.MRN, 50, 20)
	if len(spans) != 1 || spans[0].OriginalValue != "456" {
		t.Errorf("expected only 456 to survive validation, got %+v", spans)
	}
}

func TestScan_GroupSelectsSubmatch(t *testing.T) {
	var tbl table
	rules := tbl.compiled([]rule{
		{name: "labeled", expr: `(?i)id:\s*(\d+)`, confidence: 0.8, group: 1},
	})
	spans := scan("id: 42", rules, core.MRN, 50, 20)
	if len(spans) != 1 || spans[0].OriginalValue != "42" {
		t.Fatalf("expected group 1 to be captured as the span value, got %+v", spans)
	}
}

func TestDedupeSameRange_KeepsFirstOfIdenticalRange(t *testing.T) {
	spans := []core.Span{
		{CharacterStart: 0, CharacterEnd: 5, Pattern: "first"},
		{CharacterStart: 0, CharacterEnd: 5, Pattern: "second"},
		{CharacterStart: 6, CharacterEnd: 9, Pattern: "third"},
	}
	out := dedupeSameRange(spans)
	if len(out) != 2 {
		t.Fatalf("got %d spans, want 2: %+v", len(out), out)
	}
	if out[0].Pattern != "first" {
		t.Errorf("expected the first match for a duplicate range to survive, got %q", out[0].Pattern)
	}
}
