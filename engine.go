package redact

import (
	"context"
	"sync"
	"time"

	"phi-redact/internal/accelshim"
	"phi-redact/internal/core"
	"phi-redact/internal/detector"
	"phi-redact/internal/metrics"
	"phi-redact/internal/mlclient"
	"phi-redact/internal/registry"
	"phi-redact/internal/resolver"
	"phi-redact/internal/rlog"
	"phi-redact/internal/wiring"
)

var log = rlog.New("ENGINE", "info")

// Detector is the per-type entrypoint contract: Type, Priority, and
// Detect, exactly as internal/registry.Detector defines it. Exported here
// so Engine.Lookup's result is usable outside this module.
type Detector = registry.Detector

// Engine is a constructed detection pipeline: a registry.Registry wired
// from a (possibly nil) ML client, plus an optional metrics collector.
// The zero value is not usable; construct with NewEngine, or use the
// package-level DetectAll, which lazily builds a default Engine from
// internal/wiring.Load().
type Engine struct {
	reg *registry.Registry
	m   *metrics.Metrics
}

// NewEngine builds an Engine around the full detector set in
// internal/detector.All. mlc may be nil, which disables ML-backed name
// detection regardless of what Config requests; m may be nil, which
// disables metrics collection entirely.
func NewEngine(mlc *mlclient.Client, m *metrics.Metrics) *Engine {
	return &Engine{
		reg: registry.New(detector.All(mlc)...),
		m:   m,
	}
}

var (
	defaultEngineOnce sync.Once
	defaultEngine     *Engine
)

// defaultEngineInstance lazily constructs the process-wide Engine the
// free DetectAll function runs against, wiring internal/wiring.Load()'s
// settings into an mlclient.Client and a metrics.Metrics collector. Built
// once per process on first use.
func defaultEngineInstance() *Engine {
	defaultEngineOnce.Do(func() {
		w := wiring.Load()
		m := metrics.New()
		var mlc *mlclient.Client
		if w.MLEndpoint != "" {
			mlc = mlclient.New(w.MLEndpoint, w.MLModel, w.MLMaxConcurrent, w.MLCacheFile, w.MLCacheCapacity, m)
		}
		defaultEngine = NewEngine(mlc, m)
	})
	return defaultEngine
}

// DetectAll runs the full detection-and-resolution pipeline over text
// using the process-wide default Engine: see (*Engine).DetectAll for the
// exact contract. This is the entry point most callers use; construct an
// Engine directly (via NewEngine) when the caller needs its own ML
// client or metrics wiring instead of the process default.
func DetectAll(ctx context.Context, text string, cfg Config, rctx *RedactionContext) (Plan, error) {
	return defaultEngineInstance().DetectAll(ctx, text, cfg, rctx)
}

// DetectAll validates text is valid UTF-8, selects the detectors enabled
// for cfg, runs them concurrently (each accelerable detector wrapped in
// internal/accelshim so rctx.Accelerator gets first refusal), drops spans
// below cfg.MinConfidence, and resolves the survivors into a disjoint
// Plan.
//
// A nil rctx is equivalent to NewRedactionContext("", nil): no document-
// date anchor, no accelerator. Per the concurrency model, a context
// canceled before or during the run yields an empty Plan and ErrCanceled,
// never partial results.
func (e *Engine) DetectAll(ctx context.Context, text string, cfg Config, rctx *RedactionContext) (Plan, error) {
	start := time.Now()
	if e.m != nil {
		e.m.InvocationsTotal.Add(1)
	}

	if err := core.ValidateInput(text); err != nil {
		if e.m != nil {
			e.m.InvocationsErrored.Add(1)
		}
		return Plan{}, err
	}

	cfg = cfg.Normalized()
	if rctx == nil {
		rctx = core.NewRedactionContext("", nil)
	}

	detectors := e.reg.Select(cfg)
	wrapped := make([]registry.Detector, len(detectors))
	for i, d := range detectors {
		wrapped[i] = accelshim.Wrap(d)
	}

	spans, warnings, err := registry.Run(ctx, wrapped, text, cfg, rctx)
	if err != nil {
		if e.m != nil {
			e.m.InvocationsCanceled.Add(1)
		}
		return Plan{}, ErrCanceled
	}
	for _, w := range warnings {
		log.Warnf("detector_warning", "%s: %s", w.Detector, w.Message)
	}

	kept := make([]core.Span, 0, len(spans))
	for _, s := range spans {
		if s.Confidence < cfg.MinConfidence {
			if e.m != nil {
				e.m.SpansBelowMin.Add(1)
			}
			continue
		}
		kept = append(kept, s)
	}

	resolved := resolver.Resolve(kept)

	if e.m != nil {
		if dropped := len(kept) - len(resolved); dropped > 0 {
			e.m.SpansDropped.Add(int64(dropped))
		}
		e.m.SpansEmitted.Add(int64(len(resolved)))
		for _, s := range resolved {
			e.m.RecordSpanType(string(s.FilterType))
		}
		e.m.RecordDetectLatency(time.Since(start))
	}

	return Plan{Spans: resolved, Warnings: warnings}, nil
}

// Lookup exposes the per-type entrypoint the external interface names
// alongside DetectAll: the Detector this Engine's registry has registered
// for filterType, or nil if none does. Lookup ignores each registration's
// Enabled predicate, since a direct per-type call is an explicit request
// regardless of the caller's name-detection-mode preference.
func (e *Engine) Lookup(filterType FilterType) Detector {
	return e.reg.Lookup(filterType)
}
