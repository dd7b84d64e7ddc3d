package redact

import "phi-redact/internal/core"

// RedactionContext is per-invocation shared state supplied by the caller
// and read by detectors and the accelerator. See internal/core.RedactionContext
// for the full contract.
type RedactionContext = core.RedactionContext

// NewRedactionContext constructs a RedactionContext for a single
// DetectAll invocation. documentDate anchors relative-date detection;
// accelerator may be nil if no native fast-path is available.
func NewRedactionContext(documentDate string, accelerator Accelerator) *RedactionContext {
	return core.NewRedactionContext(documentDate, accelerator)
}
