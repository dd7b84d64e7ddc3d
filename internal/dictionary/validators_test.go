package dictionary

import "testing"

func TestLuhnValid(t *testing.T) {
	cases := map[string]bool{
		"4532015112830366": true,  // valid test Visa number
		"4532015112830367": false, // checksum broken
		"":                 false,
		"abc":               false,
	}
	for digits, want := range cases {
		if got := LuhnValid(digits); got != want {
			t.Errorf("LuhnValid(%q) = %v, want %v", digits, got, want)
		}
	}
}

func TestCreditCardValid_KnownExampleBIN(t *testing.T) {
	// 4111-1111-1111-1112 fails Luhn and is not AMEX-shaped, so it
	// validates only through the 4111 documentation BIN.
	if !CreditCardValid("4111111111111112") {
		t.Error("expected known example-BIN number to validate")
	}
}

func TestCreditCardValid_AmexShape(t *testing.T) {
	// 15 digits, 37 prefix, deliberately Luhn-invalid tail.
	if !CreditCardValid("371234567890123") {
		t.Error("expected AMEX-shaped number to validate via prefix+length")
	}
}

func TestCreditCardValid_RejectsGarbage(t *testing.T) {
	if CreditCardValid("123") {
		t.Error("expected short digit string to be rejected")
	}
}

func TestDEAChecksumValid(t *testing.T) {
	// digits: d1..d6 = 9,8,7,2,5,6 -> (9+7+5) + 2*(8+2+6) = 21 + 32 = 53 -> check digit 3
	if !DEAChecksumValid("9872563") {
		t.Error("expected DEA checksum to validate")
	}
	if DEAChecksumValid("9872564") {
		t.Error("expected DEA checksum mismatch to fail")
	}
	if DEAChecksumValid("12345") {
		t.Error("expected wrong-length input to fail")
	}
}

func TestVINValid(t *testing.T) {
	if VINValid("1HGCM82633A004352") == false {
		t.Error("expected well-known sample VIN to validate")
	}
	if VINValid("1HGCM82633A004352"[:16]) {
		t.Error("expected truncated VIN to be rejected")
	}
	if VINValid("IHGCM82633A004352") {
		t.Error("expected VIN containing I to be rejected")
	}
}

func TestUSPhoneDigitsValid(t *testing.T) {
	if !USPhoneDigitsValid("5551234567") {
		t.Error("expected 10-digit number to validate")
	}
	if !USPhoneDigitsValid("15551234567") {
		t.Error("expected 11-digit number with leading 1 to validate")
	}
	if USPhoneDigitsValid("0551234567") {
		t.Error("expected leading-0 area code to be rejected")
	}
	if USPhoneDigitsValid("123") {
		t.Error("expected short digit string to be rejected")
	}
}

func TestIPv4OctetsValid(t *testing.T) {
	if !IPv4OctetsValid([4]string{"192", "168", "1", "1"}) {
		t.Error("expected valid quad to validate")
	}
	if IPv4OctetsValid([4]string{"256", "1", "1", "1"}) {
		t.Error("expected out-of-range octet to be rejected")
	}
	if IPv4OctetsValid([4]string{"01", "1", "1", "1"}) {
		t.Error("expected leading-zero octet to be rejected")
	}
}

func TestDictionaryLookups(t *testing.T) {
	if !IsMedicalTerm("Wilson's Disease") {
		t.Error("expected medical term lookup to be case-insensitive")
	}
	if IsMedicalTerm("Wilson") {
		t.Error("did not expect a bare surname to be a medical term")
	}
	if !IsStateCode("ca") {
		t.Error("expected state code lookup to be case-insensitive")
	}
	if !IsStreetSuffix("Blvd") {
		t.Error("expected street suffix lookup to be case-insensitive")
	}
	if !HasFacilityKeyword("Admitted to General Hospital yesterday") {
		t.Error("expected facility keyword gate to fire on 'hospital'")
	}
	if HasFacilityKeyword("Admitted to the ICU yesterday") {
		t.Error("did not expect facility keyword gate to fire without a keyword")
	}
}

func TestIsCapitalized(t *testing.T) {
	if !IsCapitalized("Wilson") {
		t.Error("expected 'Wilson' to be capitalized shape")
	}
	if IsCapitalized("WILSON") {
		t.Error("did not expect all-caps to match capitalized shape")
	}
	if IsCapitalized("wilson") {
		t.Error("did not expect lowercase to match capitalized shape")
	}
}
