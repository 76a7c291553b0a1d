package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback-app/internal/domain/tenants"
)

func TestComputeAccessState_NoTenant(t *testing.T) {
	state := ComputeAccessState(nil, TrialState{}, SubscriptionState{})
	assert.True(t, state.Blocked)
	assert.Equal(t, ReasonNoTenant, state.Reason)
}

func TestComputeAccessState_TrialExpiredBeatsInactiveStatus(t *testing.T) {
	// A tenant that is simultaneously an expired trial and suspended must be
	// reported as trial_expired. The check order is part of the contract.
	start := time.Now().UTC().AddDate(0, 0, -10)
	tenant := &tenants.Tenant{
		PlanType:       "freetrial",
		Status:         "suspended",
		TrialStartDate: &start,
	}
	trial := ComputeTrialState(time.Now().UTC(), tenant, SubscriptionState{})
	require.True(t, trial.IsTrial)
	require.True(t, trial.Expired)

	state := ComputeAccessState(tenant, trial, SubscriptionState{})
	assert.True(t, state.Blocked)
	assert.Equal(t, ReasonTrialExpired, state.Reason)
}

func TestComputeAccessState_SubscriptionExpiredCarriesContext(t *testing.T) {
	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	plan := "Pro"
	cycle := "monthly"
	sub := SubscriptionState{
		IsSubscription: true,
		Expired:        true,
		ExpiresAt:      &end,
		PlanName:       &plan,
		BillingCycle:   &cycle,
	}

	tenant := &tenants.Tenant{Status: "active", PlanType: "pro"}
	state := ComputeAccessState(tenant, TrialState{}, sub)

	assert.True(t, state.Blocked)
	assert.Equal(t, ReasonSubscriptionExpired, state.Reason)
	require.NotNil(t, state.ExpiresAt)
	assert.Equal(t, end, *state.ExpiresAt)
	require.NotNil(t, state.PlanName)
	assert.Equal(t, "Pro", *state.PlanName)
	require.NotNil(t, state.BillingCycle)
	assert.Equal(t, "monthly", *state.BillingCycle)
}

func TestComputeAccessState_SubscriptionExpiredBeatsInactiveStatus(t *testing.T) {
	sub := SubscriptionState{IsSubscription: true, Expired: true}
	tenant := &tenants.Tenant{Status: "suspended"}

	state := ComputeAccessState(tenant, TrialState{}, sub)
	assert.Equal(t, ReasonSubscriptionExpired, state.Reason)
}

func TestComputeAccessState_TenantInactive(t *testing.T) {
	tenant := &tenants.Tenant{Status: "Suspended", PlanType: "pro"}
	state := ComputeAccessState(tenant, TrialState{}, SubscriptionState{})

	assert.True(t, state.Blocked)
	assert.Equal(t, ReasonTenantInactive, state.Reason)
	require.NotNil(t, state.Status)
	assert.Equal(t, "Suspended", *state.Status) // raw value, not normalized
}

func TestComputeAccessState_ActiveStatusCaseInsensitive(t *testing.T) {
	for _, status := range []string{"active", "Active", "ACTIVE", " active ", ""} {
		tenant := &tenants.Tenant{Status: status, PlanType: "pro"}
		state := ComputeAccessState(tenant, TrialState{}, SubscriptionState{})
		assert.False(t, state.Blocked, "status %q", status)
		assert.Equal(t, ReasonActive, state.Reason, "status %q", status)
	}
}

func TestComputeAccessState_LiveTrialNotBlocked(t *testing.T) {
	tenant := &tenants.Tenant{Status: "active", PlanType: "freetrial"}
	trial := TrialState{IsTrial: true, Expired: false}

	state := ComputeAccessState(tenant, trial, SubscriptionState{})
	assert.False(t, state.Blocked)
	assert.Equal(t, ReasonActive, state.Reason)
}
