package redact

import "phi-redact/internal/core"

// Detection is one result returned by an Accelerator — the FFI boundary
// the core imposes on an external native fast-path.
type Detection = core.Detection

// Accelerator is the optional native fast-path a detector may consult
// before running its portable scan. See internal/core.Accelerator for the
// full equivalence contract.
type Accelerator = core.Accelerator
