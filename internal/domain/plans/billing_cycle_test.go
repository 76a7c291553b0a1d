package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBillingCycle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"monthly", CycleMonthly},
		{"mensal", CycleMonthly},
		{"Mensal", CycleMonthly},
		{"quarterly", CycleQuarterly},
		{"trimestral", CycleQuarterly},
		{"annual", CycleAnnual},
		{"yearly", CycleAnnual},
		{"anual", CycleAnnual},
		{"  ANNUAL  ", CycleAnnual},
		{"", ""},
		{"   ", ""},
		{"weekly", "weekly"}, // unknown values pass through lower-trimmed
		{" Weekly ", "weekly"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeBillingCycle(tc.in), "input %q", tc.in)
	}
}
