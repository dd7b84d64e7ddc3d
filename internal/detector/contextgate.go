package detector

import (
	"phi-redact/internal/clinicalcontext"
	"phi-redact/internal/core"
)

// sharedContextAnalyzer is stateless (see clinicalcontext.Analyzer) and
// shared by every detector that needs a context-strength gate.
var sharedContextAnalyzer = clinicalcontext.New()

// cachedOrComputedStrength returns the clinical-context strength ordinal
// and confidence boost for [start,end), consulting rctx's per-invocation
// cache first so concurrent detectors analyzing the same range don't
// recompute it. A nil rctx computes the strength without caching.
func cachedOrComputedStrength(rctx *core.RedactionContext, text string, start, end, windowChars int) (int, float64) {
	if rctx == nil {
		strength, boost := sharedContextAnalyzer.Strength(text, start, end, windowChars)
		return int(strength), boost
	}
	if ord, boost, ok := rctx.CachedStrength(start, end); ok {
		return ord, boost
	}
	strength, boost := sharedContextAnalyzer.Strength(text, start, end, windowChars)
	rctx.StoreStrength(start, end, int(strength), boost)
	return int(strength), boost
}
