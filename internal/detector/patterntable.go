package detector

import (
	"regexp"
	"strconv"
	"sync"

	"phi-redact/internal/core"
)

// rule is one entry in a detector's pattern table: a compiled regex, the
// confidence to attach on match, and the validation/extraction hooks most
// detectors need. Patterns are compiled once per process via sync.Once and
// reused across every Detect call — matching itself is stateless (no
// shared mutable cursor), per §5's memoization requirement.
type rule struct {
	name       string
	expr       string
	re         *regexp.Regexp
	confidence float64

	// group selects which submatch holds the value to redact (excluding
	// any label prefix the pattern also matched). 0 or a negative value
	// means the whole match, as does a group that did not participate in
	// the match.
	group int

	// validate, if set, receives the extracted value, the full match's
	// submatches, and the full source text plus the value's own
	// [start,end) offsets (for position-aware context gates). A nil
	// validate always accepts.
	validate func(text string, start, end int, value string, submatches []string) bool
}

// table compiles rules lazily and exactly once.
type table struct {
	once  sync.Once
	rules []rule
}

func (t *table) compiled(specs []rule) []rule {
	t.once.Do(func() {
		t.rules = make([]rule, 0, len(specs))
		for _, s := range specs {
			s.re = regexp.MustCompile(s.expr)
			t.rules = append(t.rules, s)
		}
	})
	return t.rules
}

// scan runs every rule in rules against text and emits a Span per
// validated match, using filterType/priority/windowChars for every
// emitted span. Overlapping or identical matches from different rules in
// the same table are all emitted and left for the resolver; scan does no
// deduplication of its own (one rule's FindAllStringSubmatchIndex never
// yields the same range twice).
func scan(text string, rules []rule, filterType core.FilterType, priority int, windowChars int) []core.Span {
	var spans []core.Span
	for _, r := range rules {
		matches := r.re.FindAllStringSubmatchIndex(text, -1)
		for _, m := range matches {
			start, end := valueRange(m, r.group)
			if start < 0 || end <= start {
				continue
			}
			value := text[start:end]
			if r.validate != nil && !r.validate(text, start, end, value, submatchStrings(text, m)) {
				continue
			}
			spans = append(spans, core.NewSpan(text, start, end, filterType, r.confidence, priority, r.name, windowChars))
		}
	}
	return spans
}

// valueRange picks the [start,end) byte offsets for submatch group out of
// m, the index pairs FindAllStringSubmatchIndex returns (m[0],m[1] = whole
// match, m[2],m[3] = group 1, ...). group 0 means the whole match.
func valueRange(m []int, group int) (int, int) {
	if group <= 0 {
		return m[0], m[1]
	}
	idx := group * 2
	if idx+1 >= len(m) || m[idx] < 0 {
		return m[0], m[1]
	}
	return m[idx], m[idx+1]
}

// dedupeSameRange keeps one span per identical [start,end) range within a
// single detector's own candidate set (e.g. one pattern's match is a
// substring of another's), preferring the first rule that matched it
// since pattern tables are ordered most-specific-first.
func dedupeSameRange(spans []core.Span) []core.Span {
	seen := make(map[string]bool, len(spans))
	out := spans[:0]
	for _, s := range spans {
		key := strconv.Itoa(s.CharacterStart) + ":" + strconv.Itoa(s.CharacterEnd)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func submatchStrings(text string, m []int) []string {
	out := make([]string, len(m)/2)
	for i := range out {
		s, e := m[2*i], m[2*i+1]
		if s < 0 || e < 0 {
			continue
		}
		out[i] = text[s:e]
	}
	return out
}
