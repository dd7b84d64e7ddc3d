package detector

import (
	"context"
	"testing"

	"phi-redact/internal/core"
)

func TestFax_RequiresFaxLabelInWindow(t *testing.T) {
	text := "Fax: 555-123-4567 for records."
	spans := Fax{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(spans), spans)
	}
	if spans[0].OriginalValue != "555-123-4567" {
		t.Errorf("OriginalValue = %q, want 555-123-4567", spans[0].OriginalValue)
	}
}

func TestFax_RejectsUnlabeledNumber(t *testing.T) {
	text := "Call 555-123-4567 for an appointment."
	spans := Fax{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	if len(spans) != 0 {
		t.Errorf("expected no FAX spans without a fax label, got %+v", spans)
	}
}

func TestPhone_DetectsUnlabeledNumber(t *testing.T) {
	text := "Call 555-123-4567 for an appointment."
	spans := Phone{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(spans), spans)
	}
}

func TestPhone_DefersToFaxLabeledDigits(t *testing.T) {
	text := "Fax: 555-123-4567 for records."
	spans := Phone{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	if len(spans) != 0 {
		t.Errorf("expected fax-labeled digits to be excluded from PHONE, got %+v", spans)
	}
}
