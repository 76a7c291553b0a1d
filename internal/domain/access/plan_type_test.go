package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlanType_TrialAliases(t *testing.T) {
	aliases := []string{
		"freetrial", "free_trial", "trial", "teste grátis", "teste gratis",
		"FreeTrial", "FREE_TRIAL", "Trial", "Teste Grátis", "TESTE GRATIS",
		"  freetrial  ", "\ttrial\n",
	}
	for _, alias := range aliases {
		assert.Equal(t, PlanTypeFreeTrial, NormalizePlanType(alias), "alias %q", alias)
	}
}

func TestNormalizePlanType_Empty(t *testing.T) {
	assert.Equal(t, "", NormalizePlanType(""))
	assert.Equal(t, "", NormalizePlanType("   "))
	assert.Equal(t, "", NormalizePlanType("\t\n"))
}

func TestNormalizePlanType_PassThroughKeepsCasing(t *testing.T) {
	assert.Equal(t, "Pro", NormalizePlanType("Pro"))
	assert.Equal(t, "Enterprise", NormalizePlanType("  Enterprise "))
	assert.Equal(t, "basic", NormalizePlanType("basic"))
}

func TestNormalizePlanType_Idempotent(t *testing.T) {
	inputs := []string{"freetrial", "Free_Trial", "teste grátis", "Pro", "", "  premium "}
	for _, in := range inputs {
		once := NormalizePlanType(in)
		assert.Equal(t, once, NormalizePlanType(once), "input %q", in)
	}
}
