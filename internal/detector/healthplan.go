package detector

import (
	"context"
	"regexp"

	"phi-redact/internal/core"
)

var (
	healthPlanTable    table
	insuranceKeywordRe = regexp.MustCompile(`(?i)\b(?:insurance|health\s*plan|payer|policy|member\s*id|group\s*number|coverage|BCBS|medicaid|medicare|HMO|PPO)\b`)
)

// HealthPlan detects insurance/health-plan identifiers, gated on an
// insurance keyword appearing within 50 characters of the identifier
// (defaultHealthPlanGateRadius) — otherwise an alphanumeric ID of this
// shape is indistinguishable from any other account number. The gate
// radius is fixed; cfg.ContextWindowChars does not change it.
type HealthPlan struct{}

func (HealthPlan) Type() core.FilterType { return core.HealthPlan }
func (HealthPlan) Priority() int         { return PriorityHealthPlan }

func (HealthPlan) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	rules := healthPlanTable.compiled([]rule{
		{
			name:       "healthplan-labeled",
			expr:       `(?i)\b(?:member\s*id|policy\s*(?:number|#)|group\s*(?:number|#)|subscriber\s*id)[:\s#]*\s*([A-Z0-9\-]{5,20})\b`,
			confidence: 0.85,
			group:      1,
			validate:   healthPlanKeywordGate,
		},
	})
	return scan(text, rules, core.HealthPlan, PriorityHealthPlan, cfg.ContextWindowChars)
}

func healthPlanKeywordGate(text string, start, end int, _ string, _ []string) bool {
	window := core.WindowText(text, start, end, defaultHealthPlanGateRadius)
	return insuranceKeywordRe.MatchString(window)
}

const defaultHealthPlanGateRadius = 50
