// Package metrics provides lightweight, lock-minimal performance counters
// for the redaction engine.
//
// Counters use sync/atomic so hot paths (detector dispatch, span emission)
// incur no mutex contention. Per-type counters use a mutex-guarded map
// because cardinality is small (one entry per FilterType) and updates are
// infrequent relative to the regex matching they describe.
package metrics

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics holds all runtime counters for one redaction engine instance.
// The zero value is valid and ready to use; prefer New() for clarity.
type Metrics struct {
	// Invocation counters.
	InvocationsTotal    atomic.Int64
	InvocationsErrored  atomic.Int64
	InvocationsCanceled atomic.Int64

	// Resolver outcomes.
	SpansEmitted  atomic.Int64
	SpansDropped  atomic.Int64 // lost to overlap resolution
	SpansBelowMin atomic.Int64 // dropped by MinConfidence

	// Acceleration shim.
	AcceleratorHits  atomic.Int64
	AcceleratorMiss  atomic.Int64
	AcceleratorError atomic.Int64

	// ML-backed name detector.
	MLCacheHits   atomic.Int64
	MLCacheMisses atomic.Int64
	MLDispatches  atomic.Int64
	MLErrors      atomic.Int64

	// Fault barrier (internal-bug degradation, see error handling design).
	DetectorPanics atomic.Int64

	detMu  sync.Mutex
	byType map[string]int64 // spans emitted, by FilterType

	latMu         sync.Mutex
	detectLatency latencyStats // one detectAll call, end to end

	startTime time.Time
}

// New returns a new Metrics with the start time recorded.
func New() *Metrics {
	return &Metrics{
		startTime: time.Now(),
		byType:    make(map[string]int64),
	}
}

// RecordSpanType increments the emitted-span counter for the given filter type.
func (m *Metrics) RecordSpanType(filterType string) {
	m.detMu.Lock()
	if m.byType == nil {
		m.byType = make(map[string]int64)
	}
	m.byType[filterType]++
	m.detMu.Unlock()
}

// RecordDetectLatency records the wall-clock duration of one detectAll call.
func (m *Metrics) RecordDetectLatency(d time.Duration) {
	m.latMu.Lock()
	m.detectLatency.record(float64(d.Microseconds()) / 1000.0)
	m.latMu.Unlock()
}

// Snapshot returns a point-in-time copy of all metrics, safe for JSON encoding.
func (m *Metrics) Snapshot() Snapshot {
	m.detMu.Lock()
	byType := make(map[string]int64, len(m.byType))
	for k, v := range m.byType {
		byType[k] = v
	}
	m.detMu.Unlock()

	m.latMu.Lock()
	lat := m.detectLatency.snapshot()
	m.latMu.Unlock()

	return Snapshot{
		Invocations: InvocationSnapshot{
			Total:    m.InvocationsTotal.Load(),
			Errored:  m.InvocationsErrored.Load(),
			Canceled: m.InvocationsCanceled.Load(),
		},
		Spans: SpanSnapshot{
			Emitted:  m.SpansEmitted.Load(),
			Dropped:  m.SpansDropped.Load(),
			BelowMin: m.SpansBelowMin.Load(),
			ByType:   byType,
		},
		Accelerator: AcceleratorSnapshot{
			Hits:   m.AcceleratorHits.Load(),
			Misses: m.AcceleratorMiss.Load(),
			Errors: m.AcceleratorError.Load(),
		},
		ML: MLSnapshot{
			CacheHits:   m.MLCacheHits.Load(),
			CacheMisses: m.MLCacheMisses.Load(),
			Dispatches:  m.MLDispatches.Load(),
			Errors:      m.MLErrors.Load(),
		},
		DetectorPanics:  m.DetectorPanics.Load(),
		DetectLatencyMs: lat,
		UptimeSecs:      time.Since(m.startTime).Seconds(),
	}
}

// --- JSON-serialisable snapshot types ---

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Invocations     InvocationSnapshot  `json:"invocations"`
	Spans           SpanSnapshot        `json:"spans"`
	Accelerator     AcceleratorSnapshot `json:"accelerator"`
	ML              MLSnapshot          `json:"ml"`
	DetectorPanics  int64               `json:"detectorPanics"`
	DetectLatencyMs LatencySnapshot     `json:"detectLatencyMs"`
	UptimeSecs      float64             `json:"uptimeSecs"`
}

// InvocationSnapshot holds detectAll-call-level counters.
type InvocationSnapshot struct {
	Total    int64 `json:"total"`
	Errored  int64 `json:"errored"`
	Canceled int64 `json:"canceled"`
}

// SpanSnapshot holds span-emission counters.
type SpanSnapshot struct {
	Emitted  int64            `json:"emitted"`
	Dropped  int64            `json:"dropped"`
	BelowMin int64            `json:"belowMin"`
	ByType   map[string]int64 `json:"byType"`
}

// AcceleratorSnapshot holds acceleration-shim counters.
type AcceleratorSnapshot struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Errors int64 `json:"errors"`
}

// MLSnapshot holds ML-backed name detector counters.
type MLSnapshot struct {
	CacheHits   int64 `json:"cacheHits"`
	CacheMisses int64 `json:"cacheMisses"`
	Dispatches  int64 `json:"dispatches"`
	Errors      int64 `json:"errors"`
}

// LatencySnapshot is a min/mean/max summary for one latency dimension.
type LatencySnapshot struct {
	Count  int64   `json:"count"`
	MinMs  float64 `json:"minMs"`
	MeanMs float64 `json:"meanMs"`
	MaxMs  float64 `json:"maxMs"`
}

// --- internal accumulator ---

type latencyStats struct {
	count int64
	sum   float64
	min   float64
	max   float64
}

func (s *latencyStats) record(ms float64) {
	s.count++
	s.sum += ms
	if s.count == 1 || ms < s.min {
		s.min = ms
	}
	if ms > s.max {
		s.max = ms
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func (s *latencyStats) snapshot() LatencySnapshot {
	if s.count == 0 {
		return LatencySnapshot{}
	}
	return LatencySnapshot{
		Count:  s.count,
		MinMs:  round2(s.min),
		MeanMs: round2(s.sum / float64(s.count)),
		MaxMs:  round2(s.max),
	}
}
