package detector

import (
	"context"
	"testing"

	"phi-redact/internal/core"
)

func TestLicense_DetectsLabeledNumber(t *testing.T) {
	text := "Driver's license: D1234567 on file."
	spans := License{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	found := false
	for _, s := range spans {
		if s.OriginalValue == "D1234567" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a LICENSE span over the labeled number, got %+v", spans)
	}
}

func TestLicense_DetectsStatePrefixedShape(t *testing.T) {
	text := "Identified by D123456789 at the scene."
	spans := License{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	found := false
	for _, s := range spans {
		if s.OriginalValue == "D123456789" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a LICENSE span over the state-prefixed shape, got %+v", spans)
	}
}
