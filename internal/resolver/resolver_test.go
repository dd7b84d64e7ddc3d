package resolver

import (
	"testing"

	"phi-redact/internal/core"
)

func span(ft core.FilterType, start, end, priority int, confidence float64) core.Span {
	return core.Span{FilterType: ft, CharacterStart: start, CharacterEnd: end, Priority: priority, Confidence: confidence}
}

func assertDisjoint(t *testing.T, spans []core.Span) {
	t.Helper()
	for i := 1; i < len(spans); i++ {
		if spans[i].CharacterStart < spans[i-1].CharacterEnd {
			t.Errorf("spans %d and %d overlap: [%d,%d) vs [%d,%d)", i-1, i,
				spans[i-1].CharacterStart, spans[i-1].CharacterEnd,
				spans[i].CharacterStart, spans[i].CharacterEnd)
		}
	}
}

func TestResolve_DisjointSpansPassThrough(t *testing.T) {
	in := []core.Span{
		span(core.MRN, 0, 5, 90, 0.9),
		span(core.Date, 10, 20, 50, 0.9),
	}
	out := Resolve(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(out))
	}
	assertDisjoint(t, out)
}

func TestResolve_HigherPriorityWins(t *testing.T) {
	in := []core.Span{
		span(core.Name, 0, 10, 1, 0.9),
		span(core.MRN, 0, 10, 90, 0.9),
	}
	out := Resolve(in)
	if len(out) != 1 || out[0].FilterType != core.MRN {
		t.Fatalf("expected MRN (higher priority) to win, got %+v", out)
	}
}

func TestResolve_FullyInsideRecordsAmbiguous(t *testing.T) {
	// Per the resolver algorithm, a candidate fully inside the current
	// winner is dropped unconditionally — priority only decides ties for
	// the reverse case (winner fully inside candidate) and partial
	// overlaps. Date (higher priority) is still swallowed by Address here
	// because it falls entirely within Address's range.
	in := []core.Span{
		span(core.Address, 0, 30, 30, 0.8),
		span(core.Date, 5, 10, 40, 0.9),
	}
	out := Resolve(in)
	assertDisjoint(t, out)
	if len(out) != 1 {
		t.Fatalf("expected the fully-inside conflict to collapse to 1 span, got %d", len(out))
	}
	if out[0].FilterType != core.Address {
		t.Fatalf("expected Address (the outer span) to win, got %v", out[0].FilterType)
	}
	if len(out[0].AmbiguousWith) != 1 {
		t.Errorf("expected the swallowed Date span recorded in AmbiguousWith, got %v", out[0].AmbiguousWith)
	}
}

func TestResolve_LongerSpanWinsOnEqualPriority(t *testing.T) {
	in := []core.Span{
		span(core.Date, 0, 5, 50, 0.9),
		span(core.Date, 0, 10, 50, 0.9),
	}
	out := Resolve(in)
	if len(out) != 1 || out[0].CharacterEnd != 10 {
		t.Fatalf("expected the longer span to win, got %+v", out)
	}
}

func TestResolve_HigherConfidenceWinsOnEqualPriorityAndLength(t *testing.T) {
	in := []core.Span{
		span(core.Date, 0, 5, 50, 0.6),
		span(core.Date, 0, 5, 50, 0.9),
	}
	out := Resolve(in)
	if len(out) != 1 || out[0].Confidence != 0.9 {
		t.Fatalf("expected higher-confidence span to win, got %+v", out)
	}
}

func TestResolve_RelativeDateOutranksAbsoluteDate(t *testing.T) {
	const dateFilterPriority = 30
	in := []core.Span{
		span(core.Date, 0, 9, dateFilterPriority, 0.85),
		span(core.Date, 0, 9, dateFilterPriority+10, 0.80), // RelativeDateFilterSpan: DATE+10
	}
	out := Resolve(in)
	if len(out) != 1 || out[0].Priority != dateFilterPriority+10 {
		t.Fatalf("expected relative-date priority bump to win, got %+v", out)
	}
}

func TestResolve_EmptyInput(t *testing.T) {
	if out := Resolve(nil); out != nil {
		t.Errorf("expected nil for empty input, got %+v", out)
	}
}

func TestResolve_URLBesideEmailNoDuplicate(t *testing.T) {
	// Mirrors spec scenario 5: a URL and an email address in the same text
	// are separate, non-overlapping spans; both must survive.
	in := []core.Span{
		span(core.URL, 6, 56, 60, 0.9),
		span(core.Email, 61, 73, 20, 0.95),
	}
	out := Resolve(in)
	assertDisjoint(t, out)
	if len(out) != 2 {
		t.Fatalf("expected URL and EMAIL to coexist as disjoint spans, got %d", len(out))
	}
}

func TestResolve_Deterministic(t *testing.T) {
	in := []core.Span{
		span(core.MRN, 0, 8, 90, 0.9),
		span(core.Date, 10, 20, 40, 0.9),
		span(core.Phone, 25, 37, 70, 0.9),
	}
	first := Resolve(in)
	second := Resolve(in)
	if len(first) != len(second) {
		t.Fatalf("nondeterministic result lengths: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].FilterType != second[i].FilterType ||
			first[i].CharacterStart != second[i].CharacterStart ||
			first[i].CharacterEnd != second[i].CharacterEnd ||
			first[i].Priority != second[i].Priority {
			t.Errorf("span %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
