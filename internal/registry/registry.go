// Package registry enumerates the available detectors, selects the active
// subset for a given Config, and fans their execution out across a worker
// pool before joining for the resolver.
package registry

import (
	"context"
	"runtime"
	"sync"

	"phi-redact/internal/core"
	"phi-redact/internal/rlog"
)

var log = rlog.New("REGISTRY", "info")

// Detector is the contract every PHI detector implements. Detect must be
// pure over (text, frozen dictionaries, rctx): safe to run concurrently
// with every other detector on the same text, and must not mutate text or
// any other detector's spans.
type Detector interface {
	// Type is the FilterType this detector emits. Detectors of the same
	// type are permitted (e.g. the three name detectors all emit
	// NAME/PROVIDER_NAME/FAMILY_NAME).
	Type() core.FilterType

	// Priority is this detector's priority class, used by the resolver's
	// tie-break rules.
	Priority() int

	// Detect scans text and returns candidate spans. May return spans
	// with overlapping positions; the resolver deduplicates.
	Detect(ctx context.Context, text string, cfg core.Config, rctx *core.RedactionContext) []core.Span
}

// Registration pairs a Detector with the predicate that decides whether it
// runs for a given Config (e.g. the ML-backed name detector is gated on
// GlinerEnabled and NameDetectionMode).
type Registration struct {
	Detector Detector
	Enabled  func(cfg core.Config) bool
}

// Registry holds the full set of known detectors.
type Registry struct {
	registrations []Registration
}

// New builds a Registry from the given registrations, in the order given.
// Order has no effect on the emitted plan (the resolver is the only
// authority on cross-detector precedence) but is preserved for
// deterministic iteration during Select.
func New(registrations ...Registration) *Registry {
	return &Registry{registrations: registrations}
}

// Lookup returns the first registered Detector emitting t, regardless of
// its Enabled predicate, for the per-type entrypoints the external
// interface exposes alongside DetectAll. Returns nil if no registration
// emits t.
func (r *Registry) Lookup(t core.FilterType) Detector {
	for _, reg := range r.registrations {
		if reg.Detector.Type() == t {
			return reg.Detector
		}
	}
	return nil
}

// Select returns the detectors enabled for cfg, in registration order.
func (r *Registry) Select(cfg core.Config) []Detector {
	selected := make([]Detector, 0, len(r.registrations))
	for _, reg := range r.registrations {
		if reg.Enabled == nil || reg.Enabled(cfg) {
			selected = append(selected, reg.Detector)
		}
	}
	return selected
}

// Run fans the selected detectors out across a worker pool sized to
// runtime.GOMAXPROCS(0), joins before returning, and converts any panic or
// failure within a single detector into a zero-span contribution plus a
// Warning (the Internal-bug error kind) rather than aborting the
// invocation.
//
// If ctx is canceled before Run starts, it returns (nil, nil, ctx.Err())
// immediately: per the concurrency model, a canceled invocation returns an
// empty plan and an error, never partial results. If ctx is canceled
// while Run is in progress, detectors not yet started are skipped,
// detectors already running finish (Go cannot preempt them), and after
// the join Run likewise returns (nil, nil, ctx.Err()).
func Run(ctx context.Context, detectors []Detector, text string, cfg core.Config, rctx *core.RedactionContext) ([]core.Span, []core.Warning, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(detectors) {
		workers = len(detectors)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan Detector)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var spans []core.Span
	var warnings []core.Warning

	worker := func() {
		defer wg.Done()
		for d := range jobs {
			select {
			case <-ctx.Done():
				continue
			default:
			}
			detectorSpans, warning := runOne(ctx, d, text, cfg, rctx)
			mu.Lock()
			spans = append(spans, detectorSpans...)
			if warning != nil {
				warnings = append(warnings, *warning)
			}
			mu.Unlock()
		}
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}
	for _, d := range detectors {
		jobs <- d
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return spans, warnings, nil
}

// runOne is the fault barrier: a detector panic becomes a Warning and a
// nil span contribution instead of crashing the invocation.
func runOne(ctx context.Context, d Detector, text string, cfg core.Config, rctx *core.RedactionContext) (spans []core.Span, warning *core.Warning) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("detector_panic", "detector %s panicked: %v", d.Type(), r)
			w := core.NewDetectorWarning(string(d.Type()), r)
			warning = &w
			spans = nil
		}
	}()
	return d.Detect(ctx, text, cfg, rctx), nil
}
