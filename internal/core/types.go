// Package core holds the data model and per-call configuration shared by
// every layer of the redaction pipeline: the root package (public API),
// internal/registry (detector dispatch), internal/detector (the detector
// set), internal/accelshim (the acceleration shim), and internal/resolver
// (conflict resolution). It exists so those packages can depend on the
// same Span/Config/RedactionContext types without the root package and
// internal/registry importing each other.
//
// The root package re-exports these types as aliases so callers of this
// module see them as redact.Span, redact.Config, and so on.
package core

import "fmt"

// FilterType discriminates the category of PHI a Span represents. The set
// is closed: every detector in this module emits one of these values, and
// the resolver's type-closure guarantee depends on no detector emitting
// anything outside it.
type FilterType string

const (
	Email        FilterType = "EMAIL"
	Phone        FilterType = "PHONE"
	Fax          FilterType = "FAX"
	SSN          FilterType = "SSN"
	CreditCard   FilterType = "CREDIT_CARD"
	MRN          FilterType = "MRN"
	NPI          FilterType = "NPI"
	DEA          FilterType = "DEA"
	ZipCode      FilterType = "ZIPCODE"
	Address      FilterType = "ADDRESS"
	Date         FilterType = "DATE"
	URL          FilterType = "URL"
	IP           FilterType = "IP"
	License      FilterType = "LICENSE"
	Device       FilterType = "DEVICE"
	Vehicle      FilterType = "VEHICLE"
	Biometric    FilterType = "BIOMETRIC"
	HealthPlan   FilterType = "HEALTHPLAN"
	Name         FilterType = "NAME"
	ProviderName FilterType = "PROVIDER_NAME"
	FamilyName   FilterType = "FAMILY_NAME"
)

// closedFilterTypes backs IsValidFilterType; kept separate from the
// constant block so the closed-set check cannot silently drift from it.
var closedFilterTypes = map[FilterType]struct{}{
	Email: {}, Phone: {}, Fax: {}, SSN: {}, CreditCard: {}, MRN: {}, NPI: {},
	DEA: {}, ZipCode: {}, Address: {}, Date: {}, URL: {}, IP: {}, License: {},
	Device: {}, Vehicle: {}, Biometric: {}, HealthPlan: {}, Name: {},
	ProviderName: {}, FamilyName: {},
}

// IsValidFilterType reports whether t is in the closed set this module
// defines. Used by the engine's type-closure check and available to
// callers validating spans from an external accelerator.
func IsValidFilterType(t FilterType) bool {
	_, ok := closedFilterTypes[t]
	return ok
}

// DisambiguationScore records why one span beat another during conflict
// resolution, for audit/debug purposes.
type DisambiguationScore struct {
	WinningReason string // e.g. "priority", "length", "confidence", "earlier-start", "filter-type"
	WinnerScore   float64
	LoserScore    float64
}

// Span is the unit of detection: a half-open character range tagged with a
// PHI category, confidence, and provenance.
//
// Character offsets are UTF-8 byte offsets into the original text (Go
// strings and regexp indices are natively byte offsets, so this is the
// convention requiring no translation layer); OriginalValue is always
// exactly text[CharacterStart:CharacterEnd].
type Span struct {
	Text           string
	OriginalValue  string
	CharacterStart int
	CharacterEnd   int
	FilterType     FilterType
	Confidence     float64
	Priority       int
	Context        string
	Pattern        string
	Window         []string

	// Reserved for the external replacement stage; always nil/false on
	// emission from this module.
	Replacement *string
	Salt        *string
	Applied     bool
	Ignored     bool

	AmbiguousWith       []string
	DisambiguationScore *DisambiguationScore
}

// Warning is a non-fatal diagnostic collected on Plan.Warnings when a
// detector fails internally (panic, pattern error). The pipeline never
// aborts on a Warning; it only reduces the spans that detector could have
// contributed for this invocation.
type Warning struct {
	Detector string
	Message  string
}

// Plan is the resolver's output: an ordered, disjoint list of spans, plus
// any non-fatal Warnings accumulated along the way.
type Plan struct {
	Spans    []Span
	Warnings []Warning
}

// NewDetectorWarning builds the Warning recorded when a detector's
// execution is aborted by the registry's fault barrier (panic or returned
// error), per the Internal-bug error kind: the detector contributes zero
// spans and the pipeline continues.
func NewDetectorWarning(detector string, cause any) Warning {
	return Warning{Detector: detector, Message: fmt.Sprintf("%v", cause)}
}
