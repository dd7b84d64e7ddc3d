package core

import "sync"

// RedactionContext is per-invocation shared state supplied by the caller
// and read by detectors and the accelerator: document-level hints (e.g. a
// declared document date), an optional
// accelerator handle, and a cache of context-analysis results so repeated
// analyzer calls over the same offset range are not recomputed.
//
// Created per call, passed to every detector, discarded after plan
// emission. It is read-mostly: the only mutation detectors perform is
// populating the analysis cache, which is idempotent (same key always
// produces the same value) and commutative (write order across detectors
// does not change the result), satisfying the contract's concurrency
// requirement.
type RedactionContext struct {
	// DocumentDate is the caller's declared document date; the zero value
	// means none was given. No detector reads it: relative-date spans
	// ("born in 1985", "hospital day 3") are emitted the same with or
	// without it, and no absolute date is resolved from them.
	DocumentDate string

	// Accelerator is the optional native fast-path handle. Nil means no
	// acceleration is available; every accelerable detector falls back
	// to its portable scan.
	Accelerator Accelerator

	mu            sync.Mutex
	analysisCache map[contextCacheKey]contextCacheValue
}

type contextCacheKey struct {
	start, end int
}

type contextCacheValue struct {
	strengthOrdinal int
	boost           float64
}

// NewRedactionContext constructs a RedactionContext for a single
// DetectAll invocation.
func NewRedactionContext(documentDate string, accelerator Accelerator) *RedactionContext {
	return &RedactionContext{
		DocumentDate:  documentDate,
		Accelerator:   accelerator,
		analysisCache: make(map[contextCacheKey]contextCacheValue),
	}
}

// CachedStrength returns a previously cached (strengthOrdinal, boost) pair
// for [start,end), if any detector already computed it this invocation.
func (c *RedactionContext) CachedStrength(start, end int) (int, float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.analysisCache[contextCacheKey{start, end}]
	return v.strengthOrdinal, v.boost, ok
}

// StoreStrength records the computed (strengthOrdinal, boost) pair for
// [start,end). Safe to call redundantly from concurrent detectors: the
// value for a given key never varies, so a duplicate write is a no-op in
// effect.
func (c *RedactionContext) StoreStrength(start, end, strengthOrdinal int, boost float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.analysisCache[contextCacheKey{start, end}] = contextCacheValue{strengthOrdinal, boost}
}
