package detector

import (
	"context"
	"testing"

	"phi-redact/internal/core"
)

func TestTitledName_CapturesTitleAndFullName(t *testing.T) {
	text := "Seen by Dr. Wilson for a follow-up."
	spans := TitledName{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(spans), spans)
	}
	if spans[0].OriginalValue != "Dr. Wilson" {
		t.Errorf("OriginalValue = %q, want %q", spans[0].OriginalValue, "Dr. Wilson")
	}
}

func TestTitledName_CapturesFullNameWithSuffix(t *testing.T) {
	text := "Consulted with Dr. John Smith Jr. yesterday."
	spans := TitledName{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	found := false
	for _, s := range spans {
		if s.OriginalValue == "Dr. John Smith Jr." {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a PROVIDER_NAME span over %q, got %+v", "Dr. John Smith Jr.", spans)
	}
}

func TestTitledName_DetectsProviderRoleLabel(t *testing.T) {
	text := "Attending: Garcia reviewed the chart."
	spans := TitledName{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	found := false
	for _, s := range spans {
		if s.OriginalValue == "Garcia" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a PROVIDER_NAME span over the role-labeled name, got %+v", spans)
	}
}

func TestFamilyName_DetectsRelationshipLabel(t *testing.T) {
	text := "Daughter: Emma was present at discharge."
	spans := FamilyName{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(spans), spans)
	}
	if spans[0].OriginalValue != "Emma" {
		t.Errorf("OriginalValue = %q, want Emma", spans[0].OriginalValue)
	}
}
