package detector

import (
	"context"
	"regexp"
	"sync"

	"phi-redact/internal/clinicalcontext"
	"phi-redact/internal/core"
)

// relativeDatePattern is one entry in the ~30-pattern relative-date
// table. requiresContext patterns only fire when the clinical-context
// analyzer reports strength >= Moderate at the match location.
type relativeDatePattern struct {
	name            string
	expr            string
	re              *regexp.Regexp
	baseConfidence  float64
	requiresContext bool
}

var relativeDatePatterns = []relativeDatePattern{
	{name: "rel-yesterday", expr: `(?i)\byesterday\b`, baseConfidence: 0.6, requiresContext: true},
	{name: "rel-today", expr: `(?i)\btoday\b`, baseConfidence: 0.5, requiresContext: true},
	{name: "rel-tomorrow", expr: `(?i)\btomorrow\b`, baseConfidence: 0.5, requiresContext: true},
	{name: "rel-last-weekday", expr: `(?i)\blast\s+(?:Sunday|Monday|Tuesday|Wednesday|Thursday|Friday|Saturday)\b`, baseConfidence: 0.7, requiresContext: true},
	{name: "rel-next-weekday", expr: `(?i)\bnext\s+(?:Sunday|Monday|Tuesday|Wednesday|Thursday|Friday|Saturday)\b`, baseConfidence: 0.65, requiresContext: true},
	{name: "rel-this-weekday", expr: `(?i)\bthis\s+(?:Sunday|Monday|Tuesday|Wednesday|Thursday|Friday|Saturday)\b`, baseConfidence: 0.55, requiresContext: true},
	{name: "rel-hospital-day", expr: `(?i)\bhospital\s+day\s+\d{1,3}\b`, baseConfidence: 0.85, requiresContext: true},
	{name: "rel-post-op-day", expr: `(?i)\bpost-?op(?:erative)?\s+day\s+\d{1,3}\b`, baseConfidence: 0.85, requiresContext: true},
	{name: "rel-day-of-life", expr: `(?i)\bday\s+of\s+life\s+\d{1,3}\b`, baseConfidence: 0.85, requiresContext: true},
	{name: "rel-ga-weeks", expr: `(?i)\bGA\s+\d{1,2}\s*weeks?\b`, baseConfidence: 0.85, requiresContext: true},
	{name: "rel-gestational-age", expr: `(?i)\bgestational\s+age\s+\d{1,2}\s*weeks?\b`, baseConfidence: 0.85, requiresContext: true},
	{name: "rel-cycle-n", expr: `(?i)\bcycle\s+\d{1,3}\b`, baseConfidence: 0.75, requiresContext: true},
	{name: "rel-week-n", expr: `(?i)\bweek\s+\d{1,3}\b`, baseConfidence: 0.6, requiresContext: true},
	{name: "rel-born-in-year", expr: `(?i)\bborn\s+in\s+\d{4}\b`, baseConfidence: 0.85, requiresContext: false},
	{name: "rel-ago-duration", expr: `(?i)\b\d{1,3}\s+(?:days?|weeks?|months?|years?)\s+ago\b`, baseConfidence: 0.7, requiresContext: true},
	{name: "rel-in-duration", expr: `(?i)\bin\s+\d{1,3}\s+(?:days?|weeks?|months?|years?)\b`, baseConfidence: 0.6, requiresContext: true},
	{name: "rel-x-ago-visit", expr: `(?i)\b(?:one|two|three|four|five|six)\s+(?:days?|weeks?|months?|years?)\s+ago\b`, baseConfidence: 0.65, requiresContext: true},
	{name: "rel-last-week", expr: `(?i)\blast\s+week\b`, baseConfidence: 0.6, requiresContext: true},
	{name: "rel-last-month", expr: `(?i)\blast\s+month\b`, baseConfidence: 0.6, requiresContext: true},
	{name: "rel-last-year", expr: `(?i)\blast\s+year\b`, baseConfidence: 0.6, requiresContext: true},
	{name: "rel-next-week", expr: `(?i)\bnext\s+week\b`, baseConfidence: 0.55, requiresContext: true},
	{name: "rel-next-month", expr: `(?i)\bnext\s+month\b`, baseConfidence: 0.55, requiresContext: true},
	{name: "rel-age-at-onset", expr: `(?i)\bat\s+age\s+\d{1,3}\b`, baseConfidence: 0.6, requiresContext: true},
	{name: "rel-n-weeks-postpartum", expr: `(?i)\b\d{1,2}\s+weeks?\s+postpartum\b`, baseConfidence: 0.8, requiresContext: true},
	{name: "rel-n-days-postpartum", expr: `(?i)\b\d{1,2}\s+days?\s+postpartum\b`, baseConfidence: 0.8, requiresContext: true},
	{name: "rel-during-admission", expr: `(?i)\bduring\s+(?:this|the)\s+admission\b`, baseConfidence: 0.5, requiresContext: true},
	{name: "rel-on-discharge", expr: `(?i)\bon\s+discharge\b`, baseConfidence: 0.5, requiresContext: true},
	{name: "rel-at-follow-up", expr: `(?i)\bat\s+(?:the\s+)?follow-?up\b`, baseConfidence: 0.5, requiresContext: true},
	{name: "rel-n-years-old-at", expr: `(?i)\bwas\s+\d{1,3}\s+years?\s+old\b`, baseConfidence: 0.55, requiresContext: true},
	{name: "rel-since-diagnosis", expr: `(?i)\b\d{1,3}\s+(?:days?|weeks?|months?|years?)\s+since\s+diagnosis\b`, baseConfidence: 0.75, requiresContext: true},
}

// RelativeDate implements the context-gated relative-date subsystem.
// Priority is DATE+10 so a relative-date match outranks an overlapping
// absolute-date match on the same range.
type RelativeDate struct{}

func (RelativeDate) Type() core.FilterType { return core.Date }
func (RelativeDate) Priority() int         { return PriorityRelativeDate }

func (RelativeDate) Detect(_ context.Context, text string, cfg core.Config, rctx *core.RedactionContext) []core.Span {
	compileRelativeDatePatterns()

	var spans []core.Span
	for _, p := range relativeDatePatterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			confidence := p.baseConfidence
			if p.requiresContext {
				strength, boost := cachedOrComputedStrength(rctx, text, start, end, cfg.ContextWindowChars)
				if strength < int(clinicalcontext.Moderate) {
					continue
				}
				confidence += boost
			}
			if confidence > 0.95 {
				confidence = 0.95
			}
			spans = append(spans, core.NewSpan(text, start, end, core.Date, confidence, PriorityRelativeDate, p.name, cfg.ContextWindowChars))
		}
	}
	return spans
}

var relativeDateCompileOnce sync.Once

func compileRelativeDatePatterns() {
	relativeDateCompileOnce.Do(func() {
		for i := range relativeDatePatterns {
			relativeDatePatterns[i].re = regexp.MustCompile(relativeDatePatterns[i].expr)
		}
	})
}
