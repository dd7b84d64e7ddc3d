package detector

import (
	"context"
	"testing"

	"phi-redact/internal/core"
)

func TestNPI_DetectsLabeledTenDigitNumber(t *testing.T) {
	text := "NPI: 1234567890 for billing."
	spans := NPI{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(spans), spans)
	}
	if spans[0].OriginalValue != "1234567890" {
		t.Errorf("OriginalValue = %q, want 1234567890", spans[0].OriginalValue)
	}
}

func TestNPI_RejectsUnlabeledDigits(t *testing.T) {
	text := "Total charge 1234567890 units."
	spans := NPI{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	if len(spans) != 0 {
		t.Errorf("expected no NPI span without the label, got %+v", spans)
	}
}

func TestDEA_AcceptsValidChecksum(t *testing.T) {
	// digits after the letters: d1..d6 = 9,8,7,2,5,6 -> check digit 3 (see
	// internal/dictionary's DEAChecksumValid test).
	text := "Prescriber DEA AB9872563 on file."
	spans := DEA{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	found := false
	for _, s := range spans {
		if s.OriginalValue == "AB9872563" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a DEA span over AB9872563, got %+v", spans)
	}
}

func TestDEA_RejectsBadChecksum(t *testing.T) {
	text := "Prescriber DEA AB9872564 on file."
	spans := DEA{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	if len(spans) != 0 {
		t.Errorf("expected no DEA span with a failing checksum, got %+v", spans)
	}
}

func TestDEA_RejectsInvalidFirstLetter(t *testing.T) {
	text := "Prescriber DEA ZZ9872563 on file."
	spans := DEA{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	if len(spans) != 0 {
		t.Errorf("expected no DEA span with an invalid registrant-code first letter, got %+v", spans)
	}
}
