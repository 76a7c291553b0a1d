package access

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback-app/internal/domain/subscriptions"
	"feedback-app/internal/domain/tenants"
)

func TestResolve_ActiveTenantWithActiveSubscription(t *testing.T) {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 1, 0)

	tenant := &tenants.Tenant{Status: "active", PlanType: "pro"}
	row := &subscriptions.Subscription{
		Status:           "active",
		CurrentPeriodEnd: &future,
	}

	ctx := newTestResolver(nil).Resolve(now, tenant, row)

	assert.False(t, ctx.Access.Blocked)
	assert.Equal(t, ReasonActive, ctx.Access.Reason)
	assert.False(t, ctx.Trial.IsTrial)
	assert.True(t, ctx.Subscription.IsActivePaid)
}

func TestResolve_ExpiredTrialNoSubscription(t *testing.T) {
	now := time.Date(2026, 7, 9, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, -8)

	tenant := &tenants.Tenant{
		Status:         "active",
		PlanType:       "freetrial",
		TrialStartDate: &start,
	}

	ctx := newTestResolver(nil).Resolve(now, tenant, nil)

	assert.True(t, ctx.Access.Blocked)
	assert.Equal(t, ReasonTrialExpired, ctx.Access.Reason)
	assert.True(t, ctx.Trial.IsTrial)
	assert.True(t, ctx.Trial.Expired)
	assert.False(t, ctx.Subscription.IsSubscription)
}

func TestResolve_NoTenant(t *testing.T) {
	ctx := newTestResolver(nil).Resolve(time.Now(), nil, nil)
	assert.True(t, ctx.Access.Blocked)
	assert.Equal(t, ReasonNoTenant, ctx.Access.Reason)
}

func TestResolve_ExpiredSubscriptionBlocksPaidTenant(t *testing.T) {
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := now.AddDate(0, -1, 0)

	tenant := &tenants.Tenant{Status: "active", PlanType: "pro"}
	row := &subscriptions.Subscription{
		Status:           "canceled",
		PlanType:         strPtr("Pro"),
		BillingCycle:     strPtr("monthly"),
		CurrentPeriodEnd: &end,
	}

	ctx := newTestResolver(nil).Resolve(now, tenant, row)

	assert.True(t, ctx.Access.Blocked)
	assert.Equal(t, ReasonSubscriptionExpired, ctx.Access.Reason)
	require.NotNil(t, ctx.Access.ExpiresAt)
	assert.Equal(t, end, *ctx.Access.ExpiresAt)
	require.NotNil(t, ctx.Access.PlanName)
	assert.Equal(t, "Pro", *ctx.Access.PlanName)
}

func TestResolve_JSONShape(t *testing.T) {
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	tenant := &tenants.Tenant{Status: "active", PlanType: "pro"}

	raw, err := json.Marshal(newTestResolver(nil).Resolve(now, tenant, nil))
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "trial")
	assert.Contains(t, decoded, "access")
	assert.Contains(t, decoded, "subscription")

	var accessObj map[string]any
	require.NoError(t, json.Unmarshal(decoded["access"], &accessObj))
	assert.Equal(t, false, accessObj["blocked"])
	assert.Equal(t, "active", accessObj["reason"])
}
