package core

// NameDetectionMode selects which name detectors the registry activates.
type NameDetectionMode string

const (
	// NameModeRules runs only the rule-based detectors (titled-name,
	// context-aware diverse-name).
	NameModeRules NameDetectionMode = "rules"
	// NameModeML runs only the ML-backed detector.
	NameModeML NameDetectionMode = "ml"
	// NameModeHybrid runs both; rule-based spans win ties because of
	// their higher priority class (see internal/detector/priorities.go
	// and the resolver).
	NameModeHybrid NameDetectionMode = "hybrid"
)

// Config is the per-call configuration DetectAll accepts. It is the only
// configuration surface the core API exposes; there is no file or
// environment loading here — see internal/wiring for the process-wide
// infrastructure setup (ML endpoint, cache paths) that sits outside this
// per-call surface.
type Config struct {
	// NameDetectionMode selects which name detectors run. Defaults to
	// NameModeHybrid.
	NameDetectionMode NameDetectionMode

	// GlinerEnabled is a hard off-switch for the ML-backed name detector,
	// independent of NameDetectionMode (so a hybrid config can still be
	// forced rules-only without rewriting NameDetectionMode). The zero
	// value is false (off), matching Go's usual safe-zero-value
	// convention; DefaultConfig turns it on explicitly.
	GlinerEnabled bool

	// ContextWindowChars is the radius, in characters each side, the
	// context analyzer and context-gated detectors scan. Default 100.
	ContextWindowChars int

	// MinConfidence drops any emitted span below this threshold before
	// the resolver runs. Default 0.5, matching the span invariant that
	// every emitted span has confidence >= 0.5.
	MinConfidence float64
}

// DefaultConfig returns the Config the spec's defaults describe.
func DefaultConfig() Config {
	return Config{
		NameDetectionMode:  NameModeHybrid,
		GlinerEnabled:      true,
		ContextWindowChars: 100,
		MinConfidence:      0.5,
	}
}

// Normalized returns a copy of cfg with zero-valued fields replaced by
// their defaults, so a caller-constructed Config{} behaves like
// DefaultConfig() on every field they did not set (GlinerEnabled excepted:
// its zero value, false, is a legitimate off state, not "unset").
func (cfg Config) Normalized() Config {
	d := DefaultConfig()
	if cfg.NameDetectionMode == "" {
		cfg.NameDetectionMode = d.NameDetectionMode
	}
	if cfg.ContextWindowChars == 0 {
		cfg.ContextWindowChars = d.ContextWindowChars
	}
	if cfg.MinConfidence == 0 {
		cfg.MinConfidence = d.MinConfidence
	}
	return cfg
}
