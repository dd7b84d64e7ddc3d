package detector

import (
	"context"
	"strings"

	"phi-redact/internal/core"
	"phi-redact/internal/dictionary"
	"phi-redact/internal/mlclient"
)

// mlLabelConfig is the per-label threshold and resulting FilterType for
// the zero-shot NER model's four labels.
var mlLabelConfig = map[string]struct {
	threshold  float64
	filterType core.FilterType
}{
	"patient_name":  {0.60, core.Name},
	"provider_name": {0.65, core.ProviderName},
	"person_name":   {0.70, core.Name},
	"family_member": {0.65, core.FamilyName},
}

// MLName runs the pluggable zero-shot NER model over the text and emits
// spans for detections clearing their per-label threshold. Priority is
// intentionally 5 lower than the rule-based name detectors so the
// resolver prefers rule-based on overlap. The whitelist gate still
// applies: medical terms, all-caps headers, pure digits, and short codes
// are rejected even when the model is confident.
type MLName struct {
	Client *mlclient.Client
}

func (MLName) Type() core.FilterType { return core.Name }
func (MLName) Priority() int         { return PriorityNameML }

func (d MLName) Detect(ctx context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	if d.Client == nil {
		return nil
	}
	detections, err := d.Client.Detect(ctx, text)
	if err != nil {
		return nil // Model-unavailable: degraded, not surfaced (§7)
	}

	var spans []core.Span
	for _, det := range detections {
		cfgLabel, ok := mlLabelConfig[det.Label]
		if !ok || det.Start < 0 || det.End <= det.Start || det.End > len(text) {
			continue
		}
		if det.Confidence < cfgLabel.threshold {
			continue
		}
		value := text[det.Start:det.End]
		if whitelisted(value, precededByTitleOrFamilyLabel(text, det.Start)) {
			continue
		}

		confidence := adjustMLConfidence(det.Confidence, value)
		spans = append(spans, core.NewSpan(text, det.Start, det.End, cfgLabel.filterType, confidence, PriorityNameML, "ml-ner:"+det.Label, cfg.ContextWindowChars))
	}
	return spans
}

// adjustMLConfidence applies the model-score adjustments: +0.10 for a
// multi-word value, +0.05 for a capitalized value, x0.9 for a value under
// 4 characters, capped at 0.98.
func adjustMLConfidence(score float64, value string) float64 {
	adjusted := score
	if strings.ContainsAny(value, " \t") {
		adjusted += 0.10
	}
	if dictionary.IsCapitalized(value) {
		adjusted += 0.05
	}
	if len(value) < 4 {
		adjusted *= 0.9
	}
	if adjusted > 0.98 {
		adjusted = 0.98
	}
	return adjusted
}
