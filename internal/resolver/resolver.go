// Package resolver implements the deterministic conflict resolution sweep:
// given the unordered union of spans from every detector, it produces a
// disjoint, ordered Plan.
package resolver

import (
	"sort"
	"strconv"

	"phi-redact/internal/core"
)

// filterTypeOrder gives every FilterType a stable rank for the final,
// otherwise-undecided tie-break, so two spans with identical start, end,
// priority, length, and confidence still resolve deterministically.
var filterTypeOrder = map[core.FilterType]int{
	core.Name: 0, core.ProviderName: 1, core.FamilyName: 2, core.Address: 3,
	core.Date: 4, core.URL: 5, core.IP: 6, core.ZipCode: 7, core.Fax: 8,
	core.Phone: 9, core.MRN: 10, core.SSN: 11, core.CreditCard: 12,
	core.DEA: 13, core.NPI: 14, core.License: 15, core.Device: 16,
	core.Vehicle: 17, core.Biometric: 18, core.HealthPlan: 19, core.Email: 20,
}

func typeRank(t core.FilterType) int {
	if r, ok := filterTypeOrder[t]; ok {
		return r
	}
	return len(filterTypeOrder)
}

// Resolve sorts spans by (characterStart ASC, characterEnd DESC, priority
// DESC), sweeps left to right maintaining a current winner, and returns
// the disjoint, ordered result. Resolve is total: it never fails, even on
// contradictory input (identical coordinates, different types), and it is
// deterministic for a given span set regardless of input order.
func Resolve(spans []core.Span) []core.Span {
	if len(spans) == 0 {
		return nil
	}

	ordered := make([]core.Span, len(spans))
	copy(ordered, spans)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.CharacterStart != b.CharacterStart {
			return a.CharacterStart < b.CharacterStart
		}
		if a.CharacterEnd != b.CharacterEnd {
			return a.CharacterEnd > b.CharacterEnd
		}
		return a.Priority > b.Priority
	})

	result := make([]core.Span, 0, len(ordered))
	winner := ordered[0]

	for _, candidate := range ordered[1:] {
		switch {
		case candidate.CharacterStart >= winner.CharacterEnd:
			// Disjoint: emit the current winner, candidate becomes the
			// new winner.
			result = append(result, winner)
			winner = candidate

		case candidate.CharacterStart == winner.CharacterStart && candidate.CharacterEnd == winner.CharacterEnd:
			// Identical coordinates: neither span is really "inside" the
			// other, so this falls to the same tie-break as a partial
			// overlap rather than the unconditional fully-inside drop.
			if beats(candidate, winner) {
				candidate.AmbiguousWith = append(candidate.AmbiguousWith, spanID(winner))
				winner = candidate
			} else {
				winner.AmbiguousWith = append(winner.AmbiguousWith, spanID(candidate))
			}

		case fullyInside(candidate, winner):
			// Candidate is swallowed by the winner; record it as a
			// rejected overlap.
			winner.AmbiguousWith = append(winner.AmbiguousWith, spanID(candidate))

		case fullyInside(winner, candidate):
			if beats(candidate, winner) {
				candidate.AmbiguousWith = append(candidate.AmbiguousWith, spanID(winner))
				winner = candidate
			} else {
				winner.AmbiguousWith = append(winner.AmbiguousWith, spanID(candidate))
			}

		default:
			// Partial overlap: tie-break decides which survives: the
			// other is dropped and recorded.
			if beats(candidate, winner) {
				candidate.AmbiguousWith = append(candidate.AmbiguousWith, spanID(winner))
				winner = candidate
			} else {
				winner.AmbiguousWith = append(winner.AmbiguousWith, spanID(candidate))
			}
		}
	}
	result = append(result, winner)

	return result
}

func fullyInside(inner, outer core.Span) bool {
	return inner.CharacterStart >= outer.CharacterStart && inner.CharacterEnd <= outer.CharacterEnd
}

// beats reports whether a should replace b as the current winner, per the
// tie-break order: higher priority, then longer span, then higher
// confidence, then earlier start, then the filterType label order.
func beats(a, b core.Span) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	aLen, bLen := a.CharacterEnd-a.CharacterStart, b.CharacterEnd-b.CharacterStart
	if aLen != bLen {
		return aLen > bLen
	}
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	if a.CharacterStart != b.CharacterStart {
		return a.CharacterStart < b.CharacterStart
	}
	return typeRank(a.FilterType) < typeRank(b.FilterType)
}

// spanID is the identifier recorded in AmbiguousWith for a rejected span:
// there is no separate span-ID field in the data model, so a rejected
// span is identified by its type and original range, which is unique
// enough for audit purposes and stable across runs.
func spanID(s core.Span) string {
	return string(s.FilterType) + ":" + strconv.Itoa(s.CharacterStart) + "-" + strconv.Itoa(s.CharacterEnd)
}
