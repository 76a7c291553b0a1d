package access

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback-app/internal/domain/plans"
	"feedback-app/internal/domain/subscriptions"
)

func newTestResolver(cycles CycleLookupFunc) *Resolver {
	return NewResolver(cycles, zerolog.Nop())
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestComputeSubscriptionState_NilRow(t *testing.T) {
	state := newTestResolver(nil).ComputeSubscriptionState(time.Now(), nil)

	assert.False(t, state.IsSubscription)
	assert.False(t, state.IsActivePaid)
	assert.False(t, state.Expired)
	assert.Nil(t, state.StartedAt)
	assert.Nil(t, state.ExpiresAt)
	assert.Nil(t, state.PlanName)
	assert.Nil(t, state.BillingCycle)
	assert.Nil(t, state.Status)
}

func TestComputeSubscriptionState_ActiveWithoutExpiry(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	row := &subscriptions.Subscription{
		Status:    "active",
		CreatedAt: now.AddDate(0, -2, 0),
	}

	state := newTestResolver(nil).ComputeSubscriptionState(now, row)

	assert.True(t, state.IsSubscription)
	assert.True(t, state.IsActivePaid)
	assert.False(t, state.Expired)
	assert.Nil(t, state.ExpiresAt)
	require.NotNil(t, state.Status)
	assert.Equal(t, "active", *state.Status)
}

func TestComputeSubscriptionState_StatusLowerTrimmed(t *testing.T) {
	row := &subscriptions.Subscription{Status: "  Active  "}
	state := newTestResolver(nil).ComputeSubscriptionState(time.Now(), row)
	require.NotNil(t, state.Status)
	assert.Equal(t, "active", *state.Status)
	assert.True(t, state.IsActivePaid)
}

func TestComputeSubscriptionState_StartDatePrecedence(t *testing.T) {
	periodStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	startDate := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	row := &subscriptions.Subscription{
		Status:             "active",
		CurrentPeriodStart: &periodStart,
		StartDate:          &startDate,
		CreatedAt:          time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
	}

	state := newTestResolver(nil).ComputeSubscriptionState(periodStart.AddDate(0, 0, 1), row)
	require.NotNil(t, state.StartedAt)
	assert.Equal(t, periodStart, *state.StartedAt)

	// Without current_period_start the chain falls through to start_date.
	row.CurrentPeriodStart = nil
	state = newTestResolver(nil).ComputeSubscriptionState(periodStart.AddDate(0, 0, 1), row)
	require.NotNil(t, state.StartedAt)
	assert.Equal(t, startDate, *state.StartedAt)
}

func TestComputeSubscriptionState_AnnualCalendarArithmetic(t *testing.T) {
	// 2024 is a leap year: +365 days from Jan 31 lands on Jan 30 2025, while
	// calendar-month arithmetic must land on Jan 31 2025.
	start := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	row := &subscriptions.Subscription{
		Status:       "active",
		StartDate:    &start,
		BillingCycle: strPtr("annual"),
	}

	state := newTestResolver(nil).ComputeSubscriptionState(start.AddDate(0, 1, 0), row)
	require.NotNil(t, state.ExpiresAt)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), *state.ExpiresAt)
	assert.NotEqual(t, start.Add(365*24*time.Hour), *state.ExpiresAt)
}

func TestComputeSubscriptionState_DerivedExpiryByCycle(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	now := start.AddDate(0, 0, 10)

	tests := []struct {
		cycle string
		want  time.Time
	}{
		{"monthly", start.AddDate(0, 0, 30)},
		{"mensal", start.AddDate(0, 0, 30)},
		{"quarterly", start.AddDate(0, 0, 90)},
		{"trimestral", start.AddDate(0, 0, 90)},
		{"anual", start.AddDate(0, 12, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.cycle, func(t *testing.T) {
			row := &subscriptions.Subscription{
				Status:       "active",
				StartDate:    timePtr(start),
				BillingCycle: strPtr(tc.cycle),
			}
			state := newTestResolver(nil).ComputeSubscriptionState(now, row)
			require.NotNil(t, state.ExpiresAt)
			assert.Equal(t, tc.want, *state.ExpiresAt)
		})
	}
}

func TestComputeSubscriptionState_ExplicitEndBeatsDerived(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	row := &subscriptions.Subscription{
		Status:           "active",
		StartDate:        &start,
		CurrentPeriodEnd: &end,
		BillingCycle:     strPtr("annual"),
	}

	state := newTestResolver(nil).ComputeSubscriptionState(start.AddDate(0, 0, 5), row)
	require.NotNil(t, state.ExpiresAt)
	assert.Equal(t, end, *state.ExpiresAt)
}

func TestComputeSubscriptionState_ExpiredStrictBoundary(t *testing.T) {
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	row := &subscriptions.Subscription{Status: "active", EndDate: &end}

	atBoundary := newTestResolver(nil).ComputeSubscriptionState(end, row)
	assert.False(t, atBoundary.Expired)
	assert.True(t, atBoundary.IsActivePaid)

	past := newTestResolver(nil).ComputeSubscriptionState(end.Add(time.Second), row)
	assert.True(t, past.Expired)
	assert.False(t, past.IsActivePaid)
}

func TestComputeSubscriptionState_PlanNamePrecedence(t *testing.T) {
	row := &subscriptions.Subscription{
		Status:   "active",
		PlanType: strPtr("Legacy Pro"),
		Plan:     &plans.Plan{Name: "Pro Mensal"},
	}
	state := newTestResolver(nil).ComputeSubscriptionState(time.Now(), row)
	require.NotNil(t, state.PlanName)
	assert.Equal(t, "Legacy Pro", *state.PlanName)

	row.PlanType = strPtr("   ")
	state = newTestResolver(nil).ComputeSubscriptionState(time.Now(), row)
	require.NotNil(t, state.PlanName)
	assert.Equal(t, "Pro Mensal", *state.PlanName)
}

func TestComputeSubscriptionState_JoinedPlanCycleWins(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	row := &subscriptions.Subscription{
		Status:       "active",
		StartDate:    &start,
		BillingCycle: strPtr("annual"),
		Plan:         &plans.Plan{Name: "Pro", BillingCycle: "mensal"},
	}

	state := newTestResolver(nil).ComputeSubscriptionState(start.AddDate(0, 0, 1), row)
	require.NotNil(t, state.BillingCycle)
	assert.Equal(t, plans.CycleMonthly, *state.BillingCycle)
}

func TestComputeSubscriptionState_CycleLookupFallback(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	row := &subscriptions.Subscription{
		Status:    "active",
		PlanType:  strPtr("Pro"),
		StartDate: &start,
	}

	var asked string
	resolver := newTestResolver(func(name string) (string, error) {
		asked = name
		return "trimestral", nil
	})

	state := resolver.ComputeSubscriptionState(start.AddDate(0, 0, 1), row)
	assert.Equal(t, "Pro", asked)
	require.NotNil(t, state.BillingCycle)
	assert.Equal(t, plans.CycleQuarterly, *state.BillingCycle)
	require.NotNil(t, state.ExpiresAt)
	assert.Equal(t, start.AddDate(0, 0, 90), *state.ExpiresAt)
}

func TestComputeSubscriptionState_CycleLookupErrorSwallowed(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	row := &subscriptions.Subscription{
		Status:    "active",
		PlanType:  strPtr("Pro"),
		StartDate: &start,
	}

	resolver := newTestResolver(func(name string) (string, error) {
		return "", errors.New("plans table unreachable")
	})

	state := resolver.ComputeSubscriptionState(start.AddDate(0, 0, 1), row)
	assert.Nil(t, state.BillingCycle)
	assert.Nil(t, state.ExpiresAt)
	assert.False(t, state.Expired)
	assert.True(t, state.IsActivePaid)
}

func TestComputeSubscriptionState_ExpiredNonActiveStatus(t *testing.T) {
	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	row := &subscriptions.Subscription{Status: "canceled", EndDate: &end}

	state := newTestResolver(nil).ComputeSubscriptionState(end.AddDate(0, 1, 0), row)
	assert.True(t, state.IsSubscription)
	assert.True(t, state.Expired)
	assert.False(t, state.IsActivePaid)
}
