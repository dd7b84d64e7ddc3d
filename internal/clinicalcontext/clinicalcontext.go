// Package clinicalcontext implements the context analyzer: given a text and
// a character region within it, it answers "what is the clinical-context
// strength at this offset?" by scanning a surrounding window for clinical
// vocabulary (section headers, care-setting words, clinical verbs) and
// negative signals (vital-sign labels that should suppress a match rather
// than support one).
//
// This mirrors the keyword-proximity approach the pack's document-domain
// classifiers use, narrowed from whole-document classification to a
// per-span windowed strength used to gate ambiguous detections.
package clinicalcontext

import "strings"

// Strength is the clinical-context classification for a character region.
type Strength int

const (
	None Strength = iota
	Weak
	Moderate
	Strong
)

func (s Strength) String() string {
	switch s {
	case None:
		return "none"
	case Weak:
		return "weak"
	case Moderate:
		return "moderate"
	case Strong:
		return "strong"
	default:
		return "unknown"
	}
}

// The positive keyword tables are weighted by specificity: strongKeywords
// (care-setting and clinical-process terms) carry more signal than
// moderateKeywords, which carry more than the generic weakKeywords.
var strongKeywords = []string{
	"admitted", "discharged", "hospital course", "chief complaint",
	"attending", "rounds", "icu", "er", "emergency department",
	"inpatient", "outpatient", "operative", "post-op", "pre-op",
}

var moderateKeywords = []string{
	"patient", "doctor", "nurse", "physician", "clinic", "treatment",
	"diagnosis", "symptom", "medication", "prescribed", "follow-up",
	"consult", "referral", "history", "exam", "vitals",
}

var weakKeywords = []string{
	"health", "care", "visit", "appointment", "record", "chart",
}

// negativeKeywords suppress context strength near vital-sign readings and
// similar numeric clinical data that should NOT be read as, e.g., a
// vehicle plate or an address (spec scenario 6: "BP 150 over 90").
var negativeKeywords = []string{
	"bp", "blood pressure", "heart rate", "hr", "spo2", "o2 sat",
	"temp", "temperature", "rr", "respiratory rate",
}

// Analyzer holds nothing mutable; it is a pure function object retained so
// callers have a stable value to pass through the registry, matching the
// shape of the other stateless detector-adjacent components.
type Analyzer struct{}

// New returns a context Analyzer. There is no state to construct.
func New() *Analyzer {
	return &Analyzer{}
}

// Window extracts the surrounding text within radiusChars of [start,end) in
// text, clamped to the text bounds. Used both for context analysis and for
// populating Span.Context.
func Window(text string, start, end, radiusChars int) string {
	lo := start - radiusChars
	if lo < 0 {
		lo = 0
	}
	hi := end + radiusChars
	if hi > len(text) {
		hi = len(text)
	}
	if lo >= hi || lo > len(text) {
		return ""
	}
	return text[lo:hi]
}

// Strength returns the clinical-context strength and confidence boost
// ([0.0, 0.15]) for the region [start, end) in text, scanning radiusChars
// characters on each side.
func (a *Analyzer) Strength(text string, start, end, radiusChars int) (Strength, float64) {
	window := strings.ToLower(Window(text, start, end, radiusChars))
	if window == "" {
		return None, 0.0
	}

	if containsAny(window, negativeKeywords) {
		return None, 0.0
	}

	strongHits := countHits(window, strongKeywords)
	moderateHits := countHits(window, moderateKeywords)
	weakHits := countHits(window, weakKeywords)

	switch {
	case strongHits > 0:
		return Strong, 0.15
	case moderateHits >= 2:
		return Strong, 0.12
	case moderateHits == 1:
		return Moderate, 0.08
	case weakHits > 0:
		return Weak, 0.03
	default:
		return None, 0.0
	}
}

// HasNegativeContext reports whether the window around [start,end) carries
// a vital-sign-reading signal, used directly by detectors (e.g. the
// vehicle-plate detector) that need the negative gate without the full
// positive-strength computation.
func (a *Analyzer) HasNegativeContext(text string, start, end, radiusChars int) bool {
	window := strings.ToLower(Window(text, start, end, radiusChars))
	return containsAny(window, negativeKeywords)
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if containsWord(haystack, n) {
			return true
		}
	}
	return false
}

func countHits(haystack string, needles []string) int {
	count := 0
	for _, n := range needles {
		if containsWord(haystack, n) {
			count++
		}
	}
	return count
}

// containsWord reports whether needle occurs in the lowercased haystack at
// the start of a word, so "er" does not match inside "yesterday" while
// "symptom" still matches "symptoms".
func containsWord(haystack, needle string) bool {
	for off := 0; off < len(haystack); off++ {
		i := strings.Index(haystack[off:], needle)
		if i < 0 {
			return false
		}
		off += i
		if c := byte(' '); off > 0 {
			c = haystack[off-1]
			if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
				continue
			}
		}
		return true
	}
	return false
}
