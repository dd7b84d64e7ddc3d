package detector

import (
	"strings"

	"phi-redact/internal/dictionary"
)

// titlePrefixes precede a person's name and bypass the whitelist: "Dr.
// Wilson" survives even though "Wilson" alone might collide with a medical
// eponym, because the title is unambiguous evidence of personhood.
var titlePrefixes = []string{
	"dr.", "dr", "mr.", "mr", "mrs.", "mrs", "ms.", "ms", "prof.", "prof",
}

// familyLabels precede a family member's given name in a relationship
// note ("Daughter: Emma") and bypass the whitelist the same way a title
// does.
var familyLabels = []string{
	"daughter", "son", "wife", "husband", "mother", "father", "sister",
	"brother", "spouse", "parent", "guardian", "next of kin",
}

// whitelisted reports whether candidate is a likely false positive for a
// name span: a medical term, a section header, a role word, or a bare
// non-person structural token. bypass should be true when the candidate
// immediately follows a title or family label, in which case the
// whitelist is ignored.
func whitelisted(candidate string, bypass bool) bool {
	if bypass {
		return false
	}
	if candidate == "" {
		return true
	}
	if dictionary.IsMedicalTerm(candidate) {
		return true
	}
	if dictionary.IsSectionHeader(candidate) {
		return true
	}
	if dictionary.IsRoleWord(candidate) {
		return true
	}
	if isAllCapsHeader(candidate) {
		return true
	}
	if isPureDigitsOrShortCode(candidate) {
		return true
	}
	return false
}

func isAllCapsHeader(s string) bool {
	if len(s) < 2 {
		return false
	}
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

func isPureDigitsOrShortCode(s string) bool {
	if len(s) <= 3 {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// precededByTitleOrFamilyLabel checks whether the text immediately before
// [start,end) in text ends in one of titlePrefixes or familyLabels
// (ignoring trailing whitespace/punctuation), the whitelist-bypass
// condition §4.3 describes.
func precededByTitleOrFamilyLabel(text string, start int) bool {
	trimmed := strings.TrimRight(text[:start], " \t\r\n")
	for _, t := range titlePrefixes {
		if hasSuffixFold(trimmed, t) {
			return true
		}
	}
	for _, f := range familyLabels {
		if hasSuffixFold(trimmed, f+":") || hasSuffixFold(trimmed, f) {
			return true
		}
	}
	return false
}

func hasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
