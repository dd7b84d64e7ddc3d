// Package dictionary holds the frozen lookup tables and pure validator
// functions shared by the detector set: medical terms, hospital/facility
// names, common given/family names, state and province codes, street
// suffixes, and the checksum/shape validators (Luhn, DEA, VIN, phone,
// IPv4 octet range).
//
// Everything here is read-only process-wide state, built once at package
// init and never mutated afterward, so it is safe to share by reference
// across every detector goroutine.
package dictionary

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the NFC form of s. The table lookups in this package
// do not call it and compare their input as given; its caller is the date
// detector's OCR-repair pass.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// medicalTerms are words that look like names or codes out of context but
// are routine clinical vocabulary; the whitelist uses this set to suppress
// false-positive name/ID matches.
var medicalTerms = buildSet([]string{
	"disease", "syndrome", "disorder", "deficiency", "fracture", "sprain",
	"infection", "diabetes", "hypertension", "asthma", "cancer", "tumor",
	"biopsy", "surgery", "anesthesia", "medication", "dosage", "prescription",
	"diagnosis", "prognosis", "symptom", "treatment", "therapy", "procedure",
	"admission", "discharge", "consult", "referral", "follow-up", "vitals",
	"temperature", "pulse", "respiration", "blood pressure", "oxygen",
	"history", "examination", "assessment", "plan", "impression", "findings",
	"wilson's disease", "crohn's disease", "alzheimer's disease",
	"parkinson's disease", "graves' disease", "addison's disease",
})

// sectionHeaders are EHR note section labels, usually all-caps or
// title-cased on their own line; they read like names but are not.
var sectionHeaders = buildSet([]string{
	"history of present illness", "past medical history", "chief complaint",
	"review of systems", "physical exam", "assessment and plan",
	"hospital course", "discharge summary", "medications", "allergies",
	"social history", "family history", "vital signs", "laboratory",
	"imaging", "consultations", "procedures",
})

// roleWords are generic role nouns that pattern-match like a name token but
// carry no identity on their own ("patient" is not a name).
var roleWords = buildSet([]string{
	"patient", "doctor", "nurse", "provider", "physician", "surgeon",
	"resident", "attending", "consultant", "therapist", "technician",
	"caregiver", "guardian", "family", "spouse", "parent", "guardian ad litem",
})

// facilityNames is an exact-phrase table of hospital/clinic/facility
// names used by the hospital/facility detector. Kept small and
// representative; real deployments source this from an external file
// (frozen data per scope).
var facilityNames = []string{
	"General Hospital", "Memorial Hospital", "St. Mary's Medical Center",
	"Mercy Medical Center", "University Medical Center", "Regional Medical Center",
	"Community Hospital", "Childrens Hospital", "Veterans Affairs Medical Center",
	"VA Medical Center", "County Hospital", "Baptist Health", "Sacred Heart Hospital",
	"Presbyterian Hospital", "Kaiser Permanente", "Cleveland Clinic", "Mayo Clinic",
	"Johns Hopkins Hospital", "Mount Sinai Hospital", "Rehabilitation Center",
	"Urgent Care Center", "Outpatient Clinic", "Surgery Center",
}

// facilityKeywords gates the (expensive) exact-phrase facility scan: if
// none of these appear in the text, the facility table is never scanned.
var facilityKeywords = buildSet([]string{
	"hospital", "medical center", "clinic", "health", "care center",
	"rehabilitation", "urgent care", "va medical", "healthcare",
})

// givenNames and familyNames are small representative tables of common
// US first/last names, used by the context-aware diverse-name detector
// to raise confidence on an unlabeled capitalized token.
var givenNames = buildSet([]string{
	"james", "john", "robert", "michael", "william", "david", "richard",
	"joseph", "thomas", "charles", "mary", "patricia", "jennifer", "linda",
	"elizabeth", "barbara", "susan", "jessica", "sarah", "karen", "emma",
	"olivia", "ava", "sophia", "isabella", "mia", "amelia", "wilson",
})

var familyNames = buildSet([]string{
	"smith", "johnson", "williams", "brown", "jones", "garcia", "miller",
	"davis", "rodriguez", "martinez", "hernandez", "lopez", "gonzalez",
	"wilson", "anderson", "thomas", "taylor", "moore", "jackson", "martin",
	"lee", "perez", "thompson", "white", "harris", "sanchez", "clark",
})

// stateCodes is the set of two-letter US state/territory abbreviations,
// used by the address and ZIP OCR-artifact detectors.
var stateCodes = buildSet([]string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID",
	"IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS",
	"MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH", "OK",
	"OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV",
	"WI", "WY", "DC", "PR",
})

// provinceCodes is the set of two-letter Canadian province abbreviations.
var provinceCodes = buildSet([]string{
	"AB", "BC", "MB", "NB", "NL", "NS", "NT", "NU", "ON", "PE", "QC", "SK", "YT",
})

// streetSuffixes are common street-type suffixes (full and abbreviated)
// across the address formats the address detector covers: US, Canadian,
// UK, and Australian.
var streetSuffixes = buildSet([]string{
	"street", "st", "avenue", "ave", "road", "rd", "boulevard", "blvd",
	"lane", "ln", "drive", "dr", "court", "ct", "place", "pl", "way",
	"circle", "cir", "terrace", "ter", "highway", "hwy", "parkway", "pkwy",
	"trail", "trl", "square", "sq", "loop",
	"crescent", "cres", "close", "mews", "concession", "rang",
	"esplanade", "parade",
})

// dea registrant-code first letters, per DEA number format.
var deaFirstLetters = buildSet([]string{
	"A", "B", "F", "G", "M", "P", "R", "X",
})

func buildSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[strings.ToLower(w)] = struct{}{}
	}
	return m
}

// IsMedicalTerm reports whether s (case-insensitively) names routine
// clinical vocabulary rather than a person or identifier.
func IsMedicalTerm(s string) bool {
	_, ok := medicalTerms[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsSectionHeader reports whether s is a known EHR section header.
func IsSectionHeader(s string) bool {
	_, ok := sectionHeaders[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsRoleWord reports whether s is a generic clinical role noun.
func IsRoleWord(s string) bool {
	_, ok := roleWords[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsGivenName reports whether s is in the common-given-name table.
func IsGivenName(s string) bool {
	_, ok := givenNames[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsFamilyName reports whether s is in the common-family-name table.
func IsFamilyName(s string) bool {
	_, ok := familyNames[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsStateCode reports whether s is a two-letter US state/territory code.
func IsStateCode(s string) bool {
	_, ok := stateCodes[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsProvinceCode reports whether s is a two-letter Canadian province code.
func IsProvinceCode(s string) bool {
	_, ok := provinceCodes[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsStreetSuffix reports whether s is a recognized street-type suffix.
func IsStreetSuffix(s string) bool {
	_, ok := streetSuffixes[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// StreetSuffixes returns the recognized street-type suffixes, for building
// the address detector's suffix alternation from the shared table instead
// of a second hardcoded copy.
func StreetSuffixes() []string {
	out := make([]string, 0, len(streetSuffixes))
	for s := range streetSuffixes {
		out = append(out, s)
	}
	return out
}

// HasFacilityKeyword is the cheap gate the hospital/facility detector runs
// before the expensive exact-phrase scan.
func HasFacilityKeyword(text string) bool {
	lower := strings.ToLower(text)
	for kw := range facilityKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// FacilityNames returns the exact-phrase facility name table.
func FacilityNames() []string {
	return facilityNames
}

// IsDEAFirstLetter reports whether r is a valid DEA registrant-code first letter.
func IsDEAFirstLetter(r byte) bool {
	_, ok := deaFirstLetters[strings.ToLower(string(r))]
	return ok
}

// IsASCIIUpper reports whether r is an uppercase ASCII letter; a pure ASCII
// shape check that needs no unicode tables.
func IsASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsCapitalized reports whether s begins with an uppercase letter followed
// by at least one lowercase letter — the shape the ML name detector's
// confidence adjustment checks to distinguish "Wilson" from "WILSON" (likely a header) or "wilson".
func IsCapitalized(s string) bool {
	runes := []rune(s)
	if len(runes) < 2 {
		return false
	}
	return unicode.IsUpper(runes[0]) && unicode.IsLower(runes[1])
}
