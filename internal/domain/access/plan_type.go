package access

import "strings"

// PlanTypeFreeTrial is the canonical trial plan label.
const PlanTypeFreeTrial = "freetrial"

// Known spellings of the trial plan, matched after trim + lower-case.
// Legacy rows carry the Portuguese variants with and without the accent.
var trialAliases = map[string]struct{}{
	"freetrial":    {},
	"free_trial":   {},
	"trial":        {},
	"teste grátis": {},
	"teste gratis": {},
}

// NormalizePlanType collapses trial aliases to PlanTypeFreeTrial and returns
// "" for empty/whitespace input. Any other plan label is returned trimmed but
// otherwise unchanged, casing included.
func NormalizePlanType(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if _, ok := trialAliases[strings.ToLower(trimmed)]; ok {
		return PlanTypeFreeTrial
	}
	return trimmed
}
