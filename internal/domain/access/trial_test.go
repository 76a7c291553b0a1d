package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback-app/internal/domain/tenants"
)

func TestComputeTrialState_NoTenant(t *testing.T) {
	state := ComputeTrialState(time.Now(), nil, SubscriptionState{})
	assert.False(t, state.IsTrial)
	assert.False(t, state.Expired)
	assert.Nil(t, state.StartedAt)
	assert.Nil(t, state.ExpiresAt)
}

func TestComputeTrialState_ActivePaidSupersedesTrial(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tenant := &tenants.Tenant{PlanType: "freetrial", TrialStartDate: &start}

	state := ComputeTrialState(start.AddDate(0, 0, 30), tenant, SubscriptionState{
		IsSubscription: true,
		IsActivePaid:   true,
	})
	assert.False(t, state.IsTrial)
	assert.False(t, state.Expired)
}

func TestComputeTrialState_NonTrialPlan(t *testing.T) {
	tenant := &tenants.Tenant{PlanType: "pro"}
	state := ComputeTrialState(time.Now(), tenant, SubscriptionState{})
	assert.False(t, state.IsTrial)
}

func TestComputeTrialState_StrictExpiryBoundary(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	tenant := &tenants.Tenant{PlanType: "Free_Trial", TrialStartDate: &start}

	boundary := start.Add(7 * 24 * time.Hour)

	// Exactly at the boundary the trial is still live.
	atBoundary := ComputeTrialState(boundary, tenant, SubscriptionState{})
	require.True(t, atBoundary.IsTrial)
	assert.False(t, atBoundary.Expired)
	require.NotNil(t, atBoundary.ExpiresAt)
	assert.Equal(t, boundary, *atBoundary.ExpiresAt)

	// One second past the boundary it is expired.
	past := ComputeTrialState(boundary.Add(time.Second), tenant, SubscriptionState{})
	assert.True(t, past.IsTrial)
	assert.True(t, past.Expired)
}

func TestComputeTrialState_FallsBackToCreatedAt(t *testing.T) {
	created := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	tenant := &tenants.Tenant{PlanType: "trial", CreatedAt: created}

	state := ComputeTrialState(created.AddDate(0, 0, 3), tenant, SubscriptionState{})
	require.True(t, state.IsTrial)
	assert.False(t, state.Expired)
	require.NotNil(t, state.StartedAt)
	assert.Equal(t, created, *state.StartedAt)
	require.NotNil(t, state.ExpiresAt)
	assert.Equal(t, created.Add(TrialDuration), *state.ExpiresAt)
}

func TestComputeTrialState_NoStartDateNeverExpires(t *testing.T) {
	tenant := &tenants.Tenant{PlanType: "teste gratis"}

	state := ComputeTrialState(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), tenant, SubscriptionState{})
	assert.True(t, state.IsTrial)
	assert.False(t, state.Expired)
	assert.Nil(t, state.StartedAt)
	assert.Nil(t, state.ExpiresAt)
}
