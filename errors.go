package redact

import "phi-redact/internal/core"

// ErrInvalidInput is returned by DetectAll when text is not valid UTF-8.
// This is the one error kind the spec requires to surface to the caller;
// every other failure mode (accelerator unavailable, ML model unavailable,
// a single detector panicking) is absorbed and reported, if at all, as a
// Warning on the returned Plan.
var ErrInvalidInput = core.ErrInvalidInput

// ErrCanceled is returned by DetectAll when the supplied context is
// canceled before or during detection. Per the concurrency model, a
// canceled invocation returns an empty Plan alongside this error; partial
// results are never emitted.
var ErrCanceled = core.ErrCanceled
