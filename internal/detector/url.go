package detector

import (
	"context"
	"regexp"
	"sort"

	"golang.org/x/net/idna"

	"phi-redact/internal/core"
)

// urlPatternClasses are the five pattern classes §4.2 names: protocol
// URLs; named patient-portal vendors; URLs carrying a patient_id/mrn
// query parameter; healthcare-keyword domains; social-media profile
// URLs. Overlap within this detector is resolved by first-match-wins on
// the lower [start,end), per the per-detector overlap rule.
var urlPatternClasses = []struct {
	name       string
	re         *regexp.Regexp
	confidence float64
}{
	{"url-protocol", regexp.MustCompile(`(?i)\bhttps?://[^\s<>"']+`), 0.85},
	{"url-patient-portal-vendor", regexp.MustCompile(`(?i)\b(?:www\.)?(?:mychart|epic|cerner|followmyhealth|healow|athenahealth)\.[a-z.]+(?:/[^\s<>"']*)?`), 0.9},
	{"url-patient-query-param", regexp.MustCompile(`(?i)\b(?:www\.)?[a-z0-9.\-]+\.[a-z]{2,}/[^\s<>"']*\?[^\s<>"']*(?:patient_?id|mrn)=[^\s<>"'&]+`), 0.95},
	{"url-healthcare-domain", regexp.MustCompile(`(?i)\b(?:www\.)?[a-z0-9.\-]+\.(?:health|clinic|hospital|md)\b(?:/[^\s<>"']*)?`), 0.8},
	{"url-social-profile", regexp.MustCompile(`(?i)\b(?:www\.)?(?:facebook|twitter|instagram|linkedin)\.com/[A-Za-z0-9_.\-]+`), 0.85},
}

// URL implements the five-pattern-class URL detector. A domain candidate
// is validated through golang.org/x/net/idna before being accepted, so
// an internationalized or malformed host does not produce a false span.
type URL struct{}

func (URL) Type() core.FilterType { return core.URL }
func (URL) Priority() int         { return PriorityURL }

func (URL) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	type candidate struct {
		start, end int
		confidence float64
		name       string
	}
	var candidates []candidate
	for _, class := range urlPatternClasses {
		for _, loc := range class.re.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			if !plausibleHost(text[start:end]) {
				continue
			}
			candidates = append(candidates, candidate{start, end, class.confidence, class.name})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].start != candidates[j].start {
			return candidates[i].start < candidates[j].start
		}
		return candidates[i].end > candidates[j].end
	})

	var spans []core.Span
	occupiedUntil := -1
	for _, c := range candidates {
		if c.start < occupiedUntil {
			continue // first-match-wins on the lower [start,end)
		}
		spans = append(spans, core.NewSpan(text, c.start, c.end, core.URL, c.confidence, PriorityURL, c.name, cfg.ContextWindowChars))
		occupiedUntil = c.end
	}
	return spans
}

// plausibleHost extracts the host portion of a matched URL-like string
// and validates it through idna.Lookup, rejecting shapes that cannot be
// a real domain. The ASCII form the lookup computes is used only for this
// check; the emitted span keeps the original text.
func plausibleHost(match string) bool {
	host := extractHost(match)
	if host == "" {
		return false
	}
	_, err := idna.Lookup.ToASCII(host)
	return err == nil
}

func extractHost(match string) string {
	s := match
	if idx := indexAfterScheme(s); idx >= 0 {
		s = s[idx:]
	}
	end := len(s)
	for i, r := range s {
		if r == '/' || r == '?' || r == '#' || r == ':' {
			end = i
			break
		}
	}
	return s[:end]
}

func indexAfterScheme(s string) int {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == ':' && s[i+1] == '/' && s[i+2] == '/' {
			return i + 3
		}
	}
	return -1
}
