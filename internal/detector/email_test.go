package detector

import (
	"context"
	"testing"

	"phi-redact/internal/core"
)

func TestEmail_DetectsBasicAddress(t *testing.T) {
	text := "Contact jane.doe@example.com for records."
	spans := Email{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(spans), spans)
	}
	if spans[0].OriginalValue != "jane.doe@example.com" {
		t.Errorf("OriginalValue = %q, want jane.doe@example.com", spans[0].OriginalValue)
	}
	if spans[0].FilterType != core.Email {
		t.Errorf("FilterType = %q, want EMAIL", spans[0].FilterType)
	}
}

func TestEmail_RejectsDomainWithEmptyLabel(t *testing.T) {
	text := "Bounced: user@a..com for delivery."
	spans := Email{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	if len(spans) != 0 {
		t.Errorf("expected no spans for a domain with an empty label, got %+v", spans)
	}
}
