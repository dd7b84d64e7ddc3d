package dictionary

import "strconv"

// LuhnValid reports whether digits (a string of ASCII digits only) passes
// the Luhn checksum used by credit card numbers.
func LuhnValid(digits string) bool {
	if len(digits) == 0 {
		return false
	}
	sum := 0
	alt := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if alt {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		alt = !alt
	}
	return sum%10 == 0
}

// knownExampleBINs are bank identification numbers used pervasively in
// documentation and test fixtures; a number with one of these prefixes is
// accepted even when it fails Luhn.
var knownExampleBINs = []string{
	"4111", "4012", "4222", "5105", "5555", "5425", "378282", "371449", "6011",
}

// IsKnownExampleBIN reports whether digits begins with a widely used
// documentation/test credit-card prefix.
func IsKnownExampleBIN(digits string) bool {
	for _, bin := range knownExampleBINs {
		if len(digits) >= len(bin) && digits[:len(bin)] == bin {
			return true
		}
	}
	return false
}

// IsAmexShape reports whether digits has American Express's length (15)
// and one of its two issuer prefixes (34, 37).
func IsAmexShape(digits string) bool {
	if len(digits) != 15 {
		return false
	}
	return digits[:2] == "34" || digits[:2] == "37"
}

// CreditCardValid applies the spec's three-way validation: Luhn passes, OR
// AMEX prefix+length shape, OR a known documentation/example BIN.
func CreditCardValid(digits string) bool {
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}
	return LuhnValid(digits) || IsAmexShape(digits) || IsKnownExampleBIN(digits)
}

// DEAChecksumValid implements the DEA registrant number check digit: the
// 7th digit (index 6) must equal the last digit of (d1+d3+d5) + 2*(d2+d4+d6),
// where d1..d6 are the first six digits (index 0..5) and d7 is the check digit
// (index 6). digits must be exactly these 7 ASCII digits.
func DEAChecksumValid(digits string) bool {
	if len(digits) != 7 {
		return false
	}
	d := make([]int, 7)
	for i := 0; i < 7; i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
		d[i] = int(digits[i] - '0')
	}
	sum := (d[0] + d[2] + d[4]) + 2*(d[1]+d[3]+d[5])
	return sum%10 == d[6]
}

// vinTransliteration maps VIN letters to their check-digit numeric values.
// I, O, and Q are excluded from valid VINs entirely.
var vinTransliteration = map[byte]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
}

var vinWeights = [17]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// VINValid reports whether s is a 17-character VIN with a valid check
// digit at position 9 (index 8). Excludes I, O, Q per the standard.
func VINValid(s string) bool {
	if len(s) != 17 {
		return false
	}
	sum := 0
	for i := 0; i < 17; i++ {
		c := s[i]
		switch {
		case c == 'I' || c == 'O' || c == 'Q':
			return false
		case c >= '0' && c <= '9':
			sum += int(c-'0') * vinWeights[i]
		case c >= 'A' && c <= 'Z':
			v, ok := vinTransliteration[c]
			if !ok {
				return false
			}
			sum += v * vinWeights[i]
		default:
			return false
		}
	}
	check := sum % 11
	wantChar := byte('0' + check)
	if check == 10 {
		wantChar = 'X'
	}
	return s[8] == wantChar
}

// USPhoneDigitsValid reports whether digits is a plausible US phone number:
// 10 digits, or 11 digits with a leading country code 1.
func USPhoneDigitsValid(digits string) bool {
	switch len(digits) {
	case 10:
		return digits[0] != '0' && digits[0] != '1'
	case 11:
		return digits[0] == '1' && digits[1] != '0' && digits[1] != '1'
	default:
		return false
	}
}

// IPv4OctetsValid reports whether each of the four dot-separated octets is
// a valid base-10 integer in [0, 255] with no octet-exceeding leading zeros
// beyond a bare "0".
func IPv4OctetsValid(octets [4]string) bool {
	for _, o := range octets {
		if len(o) == 0 || len(o) > 3 {
			return false
		}
		if len(o) > 1 && o[0] == '0' {
			return false
		}
		n, err := strconv.Atoi(o)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}
