package redact

import "phi-redact/internal/core"

type (
	NameDetectionMode = core.NameDetectionMode
	Config            = core.Config
)

const (
	NameModeRules   = core.NameModeRules
	NameModeML      = core.NameModeML
	NameModeHybrid  = core.NameModeHybrid
)

// DefaultConfig returns the Config the spec's defaults describe:
// hybrid name detection, the ML detector enabled, a 100-character context
// window, and a 0.5 minimum confidence floor.
func DefaultConfig() Config {
	return core.DefaultConfig()
}
