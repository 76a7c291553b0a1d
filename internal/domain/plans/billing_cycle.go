package plans

import "strings"

// Billing cycle constants (single source of truth)
const (
	CycleMonthly   = "monthly"
	CycleQuarterly = "quarterly"
	CycleAnnual    = "annual"
)

// NormalizeBillingCycle maps the free-text cycle labels found in subscription
// and plan rows (including the Portuguese variants from legacy data) onto the
// canonical constants. Unknown non-empty values pass through lower-trimmed;
// empty input returns "".
func NormalizeBillingCycle(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "":
		return ""
	case "monthly", "mensal":
		return CycleMonthly
	case "quarterly", "trimestral":
		return CycleQuarterly
	case "annual", "yearly", "anual":
		return CycleAnnual
	default:
		return v
	}
}
