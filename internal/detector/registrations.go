package detector

import (
	"phi-redact/internal/core"
	"phi-redact/internal/mlclient"
	"phi-redact/internal/registry"
)

// All returns the full named detector set §6 enumerates, wired into
// registry.Registration entries with the Enabled predicates the three
// name-detection modes and the GlinerEnabled off-switch require. mlc may
// be nil (ML-backed name detection disabled); MLName itself already
// returns no spans for a nil *mlclient.Client, the Enabled predicate here
// additionally keeps the registry from scheduling it at all in that case.
func All(mlc *mlclient.Client) []registry.Registration {
	rulesEnabled := func(cfg core.Config) bool {
		return cfg.NameDetectionMode != core.NameModeML
	}
	mlEnabled := func(cfg core.Config) bool {
		return mlc != nil && cfg.GlinerEnabled && cfg.NameDetectionMode != core.NameModeRules
	}

	return []registry.Registration{
		{Detector: Email{}},
		{Detector: URL{}},
		{Detector: IP{}},
		{Detector: Zip{}},
		{Detector: Fax{}},
		{Detector: Phone{}},
		{Detector: SSN{}},
		{Detector: CreditCard{}},
		{Detector: MRN{}},
		{Detector: NPI{}},
		{Detector: DEA{}},
		{Detector: HealthPlan{}},
		{Detector: License{}},
		{Detector: Device{}},
		{Detector: Vehicle{}},
		{Detector: Biometric{}},
		{Detector: Facility{}},
		{Detector: Address{}},
		{Detector: Date{}},
		{Detector: RelativeDate{}},

		{Detector: TitledName{}, Enabled: rulesEnabled},
		{Detector: FamilyName{}, Enabled: rulesEnabled},
		{Detector: ContextAwareDiverseName{}, Enabled: rulesEnabled},
		{Detector: MLName{Client: mlc}, Enabled: mlEnabled},
	}
}
