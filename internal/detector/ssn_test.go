package detector

import (
	"context"
	"testing"

	"phi-redact/internal/core"
)

func TestSSN_DetectsDashedForm(t *testing.T) {
	text := "SSN 123-45-6789 on the intake form."
	spans := SSN{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	found := false
	for _, s := range spans {
		if s.OriginalValue == "123-45-6789" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an SSN span over the dashed form, got %+v", spans)
	}
}

func TestSSN_DetectsMaskedForm(t *testing.T) {
	text := "On file as ***-**-6789 per policy."
	spans := SSN{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	found := false
	for _, s := range spans {
		if s.OriginalValue == "***-**-6789" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an SSN span over the masked form, got %+v", spans)
	}
}
