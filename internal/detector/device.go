package detector

import (
	"context"
	"regexp"

	"phi-redact/internal/core"
)

var (
	deviceTable     table
	deviceKeywordRe = regexp.MustCompile(`(?i)\b(?:device|pacemaker|implant|pump|monitor|catheter|stent|defibrillator|ICD|infusion)\b`)
)

// Device detects device-word-plus-serial combinations and standalone
// manufacturer-prefixed serials. The device/serial-labeled identifier is
// 7-25 alphanumerics with optional dashes, kept only when a device keyword
// appears within 100 characters; the manufacturer-prefixed rule has no
// keyword gate. Model numbers without a device or serial label are not
// detected.
type Device struct{}

func (Device) Type() core.FilterType { return core.Device }
func (Device) Priority() int         { return PriorityDevice }

func (Device) Detect(_ context.Context, text string, cfg core.Config, _ *core.RedactionContext) []core.Span {
	rules := deviceTable.compiled([]rule{
		{
			name:       "device-manufacturer-prefixed",
			expr:       `\b((?:MEDTRONIC|BOSTON-SCIENTIFIC|ABBOTT|BIOTRONIK)-[A-Z0-9\-]{4,20})\b`,
			confidence: 0.9,
			group:      1,
		},
		{
			name:       "device-serial",
			expr:       `(?i)\b(?:device|serial)[:\s#]*\s*([A-Za-z0-9\-]{7,25})\b`,
			confidence: 0.75,
			group:      1,
			validate:   deviceContextGate,
		},
	})
	return scan(text, rules, core.Device, PriorityDevice, cfg.ContextWindowChars)
}

func deviceContextGate(text string, start, end int, _ string, _ []string) bool {
	window := core.WindowText(text, start, end, 100)
	return deviceKeywordRe.MatchString(window)
}
