// Package accelshim wraps a portable Detector so that, when the caller's
// RedactionContext carries a native Accelerator, detection for an
// accelerable FilterType is attempted through the accelerator first and
// falls back to the wrapped portable scan only when the accelerator
// declines (returns nil/empty).
//
// This is a direct generalization of the teacher's pattern of layering an
// optional fast path in front of a guaranteed-correct slow path (the
// teacher does this for its Ollama cache: check the cache, fall back to
// the network call). Here the "fast path" is an external native
// implementation reached through the core.Accelerator FFI boundary rather
// than an in-process cache.
package accelshim

import (
	"context"

	"phi-redact/internal/core"
	"phi-redact/internal/registry"
	"phi-redact/internal/rlog"
)

var log = rlog.New("ACCELSHIM", "info")

// accelerable is the set of FilterTypes §4.4 names as acceleration
// candidates. Types outside this set are never offered to the
// accelerator, regardless of what RedactionContext.Accelerator reports,
// so a misbehaving native implementation cannot short-circuit a detector
// the contract never cleared it for.
var accelerable = map[core.FilterType]struct{}{
	core.Email:   {},
	core.URL:     {},
	core.ZipCode: {},
	core.Fax:     {},
	core.MRN:     {},
}

// Accelerable reports whether t is in the declared acceleration set.
func Accelerable(t core.FilterType) bool {
	_, ok := accelerable[t]
	return ok
}

// Wrap returns a Detector that consults rctx.Accelerator before running
// inner, when inner's Type is accelerable and rctx carries a non-nil
// Accelerator. Detectors of a non-accelerable type are returned
// unchanged (wrapping them would have no effect, so Wrap is for callers
// that want to wrap uniformly and let this function decide).
func Wrap(inner registry.Detector) registry.Detector {
	if !Accelerable(inner.Type()) {
		return inner
	}
	return shim{inner: inner}
}

type shim struct {
	inner registry.Detector
}

func (s shim) Type() core.FilterType { return s.inner.Type() }
func (s shim) Priority() int         { return s.inner.Priority() }

func (s shim) Detect(ctx context.Context, text string, cfg core.Config, rctx *core.RedactionContext) []core.Span {
	if rctx != nil && rctx.Accelerator != nil {
		if detections, ok := rctx.Accelerator.GetDetections(rctx, text, s.inner.Type()); ok && len(detections) > 0 {
			log.Debugf("accelerated", "type=%s native_spans=%d", s.inner.Type(), len(detections))
			return toSpans(text, detections, s.inner.Type(), s.inner.Priority(), cfg.ContextWindowChars)
		}
	}
	return s.inner.Detect(ctx, text, cfg, rctx)
}

// toSpans converts native Detections into Spans. The accelerator
// guarantees d.Text == text[d.CharacterStart:d.CharacterEnd]; this does
// not reverify that (the shim trusts a non-empty result completely, per
// the contract). It skips a detection whose range is empty or falls
// outside text, supplies the Priority/Context a portable-scan Span would
// carry, and keeps the detection's Pattern ("accelerated" when empty).
func toSpans(text string, detections []core.Detection, filterType core.FilterType, priority int, windowChars int) []core.Span {
	spans := make([]core.Span, 0, len(detections))
	for _, d := range detections {
		if d.CharacterStart < 0 || d.CharacterEnd > len(text) || d.CharacterStart >= d.CharacterEnd {
			continue
		}
		pattern := d.Pattern
		if pattern == "" {
			pattern = "accelerated"
		}
		spans = append(spans, core.NewSpan(text, d.CharacterStart, d.CharacterEnd, filterType, d.Confidence, priority, pattern, windowChars))
	}
	return spans
}
