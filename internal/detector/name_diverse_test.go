package detector

import (
	"context"
	"testing"

	"phi-redact/internal/core"
)

func TestContextAwareDiverseName_DetectsHyphenatedSurname(t *testing.T) {
	text := "Seen by Smith-Jones for a consult."
	spans := ContextAwareDiverseName{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	found := false
	for _, s := range spans {
		if s.OriginalValue == "Smith-Jones" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a NAME span over the hyphenated surname, got %+v", spans)
	}
}

func TestContextAwareDiverseName_DetectsGenerationalSuffix(t *testing.T) {
	text := "Consulted with Robert Fisher III this week."
	spans := ContextAwareDiverseName{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	found := false
	for _, s := range spans {
		if s.OriginalValue == "Robert Fisher III" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a NAME span over the generational-suffix name, got %+v", spans)
	}
}

func TestContextAwareDiverseName_DetectsPatientAnchoredGivenName(t *testing.T) {
	text := "Patient: Maria was discharged today."
	spans := ContextAwareDiverseName{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	found := false
	for _, s := range spans {
		if s.OriginalValue == "Maria" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a NAME span over the patient-anchored given name, got %+v", spans)
	}
}

func TestContextAwareDiverseName_BareGivenNameRequiresClinicalContext(t *testing.T) {
	withContext := "The patient reported that Wilson was experiencing mild discomfort."
	rctx := core.NewRedactionContext("", nil)
	spans := ContextAwareDiverseName{}.Detect(context.Background(), withContext, core.DefaultConfig(), rctx)
	found := false
	for _, s := range spans {
		if s.OriginalValue == "Wilson" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a NAME span over the bare given name with clinical context present, got %+v", spans)
	}

	withoutContext := "We met up with Wilson over coffee."
	rctx2 := core.NewRedactionContext("", nil)
	spans2 := ContextAwareDiverseName{}.Detect(context.Background(), withoutContext, core.DefaultConfig(), rctx2)
	for _, s := range spans2 {
		if s.OriginalValue == "Wilson" {
			t.Errorf("expected no NAME span over a bare given name without clinical context, got %+v", spans2)
		}
	}
}

func TestContextAwareDiverseName_DictionaryNameSurvivesOnWeakContext(t *testing.T) {
	// "health" is a weak-strength keyword (below the Moderate bar a
	// non-dictionary bare name would need), but "Sarah" is in the
	// given-name table so the gate relaxes to Weak.
	text := "Sarah asked about her health today."
	rctx := core.NewRedactionContext("", nil)
	spans := ContextAwareDiverseName{}.Detect(context.Background(), text, core.DefaultConfig(), rctx)
	found := false
	for _, s := range spans {
		if s.OriginalValue == "Sarah" {
			found = true
			if s.Pattern != "bare-given-name-dictionary-confirmed" {
				t.Errorf("expected the dictionary-confirmed pattern tag, got %q", s.Pattern)
			}
		}
	}
	if !found {
		t.Errorf("expected a NAME span over the dictionary-confirmed given name under weak context, got %+v", spans)
	}
}

func TestContextAwareDiverseName_UnknownBareNameStillNeedsModerateContext(t *testing.T) {
	// "Xanthe" is not in the given-name table, so weak context alone
	// (the same "health" keyword as above) must not be enough.
	text := "Xanthe asked about her health today."
	rctx := core.NewRedactionContext("", nil)
	spans := ContextAwareDiverseName{}.Detect(context.Background(), text, core.DefaultConfig(), rctx)
	for _, s := range spans {
		if s.OriginalValue == "Xanthe" {
			t.Errorf("expected no NAME span over an unrecognized bare name under only weak context, got %+v", spans)
		}
	}
}

func TestContextAwareDiverseName_FamilyNameBoostsHyphenatedConfidence(t *testing.T) {
	text := "Seen by Smith-Jones for a consult."
	baseline := "Seen by Zeffrit-Quoxil for a consult."
	spans := ContextAwareDiverseName{}.Detect(context.Background(), text, core.DefaultConfig(), nil)
	baselineSpans := ContextAwareDiverseName{}.Detect(context.Background(), baseline, core.DefaultConfig(), nil)

	var got, base float64
	for _, s := range spans {
		if s.OriginalValue == "Smith-Jones" {
			got = s.Confidence
		}
	}
	for _, s := range baselineSpans {
		if s.OriginalValue == "Zeffrit-Quoxil" {
			base = s.Confidence
		}
	}
	if got <= base {
		t.Errorf("expected a known-family-name hyphenated surname (%v) to score higher than an unrecognized one (%v)", got, base)
	}
}
