// Package redact implements a Protected Health Information (PHI) redaction
// engine for unstructured clinical text: a registry of typed detectors
// produces candidate spans, a context analyzer tags clinical-context
// strength, and a conflict resolver merges overlapping spans into a
// disjoint redaction plan. See DetectAll for the entry point.
package redact

import "phi-redact/internal/core"

// The data model lives in internal/core so internal/registry and
// internal/detector can depend on it without importing this package (which
// in turn imports them) — see internal/core's package doc. These aliases
// are the public surface: callers write redact.Span, redact.MRN, and so on.

type (
	FilterType           = core.FilterType
	Span                 = core.Span
	Plan                 = core.Plan
	Warning              = core.Warning
	DisambiguationScore  = core.DisambiguationScore
)

const (
	Email        = core.Email
	Phone        = core.Phone
	Fax          = core.Fax
	SSN          = core.SSN
	CreditCard   = core.CreditCard
	MRN          = core.MRN
	NPI          = core.NPI
	DEA          = core.DEA
	ZipCode      = core.ZipCode
	Address      = core.Address
	Date         = core.Date
	URL          = core.URL
	IP           = core.IP
	License      = core.License
	Device       = core.Device
	Vehicle      = core.Vehicle
	Biometric    = core.Biometric
	HealthPlan   = core.HealthPlan
	Name         = core.Name
	ProviderName = core.ProviderName
	FamilyName   = core.FamilyName
)

// IsValidFilterType reports whether t is in the closed set this module
// defines.
func IsValidFilterType(t FilterType) bool {
	return core.IsValidFilterType(t)
}
