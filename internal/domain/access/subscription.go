package access

import (
	"strings"
	"time"

	"feedback-app/internal/domain/plans"
	"feedback-app/internal/domain/subscriptions"
)

// CycleLookupFunc resolves a plan name to its billing cycle. Used as a
// best-effort enrichment when the subscription row itself carries no cycle:
// errors are swallowed, never propagated.
type CycleLookupFunc func(planName string) (string, error)

// ComputeSubscriptionState derives the paid-subscription view from the
// governing row. A nil row means "no subscription" and is not an error.
func (r *Resolver) ComputeSubscriptionState(now time.Time, row *subscriptions.Subscription) SubscriptionState {
	if row == nil {
		return SubscriptionState{}
	}

	state := SubscriptionState{IsSubscription: true}

	state.PlanName = subscriptionPlanName(row)
	if s := strings.ToLower(strings.TrimSpace(row.Status)); s != "" {
		state.Status = &s
	}

	state.StartedAt = firstDate(row, subscriptionStartFields)
	state.ExpiresAt = firstDate(row, subscriptionEndFields)

	cycle := rowBillingCycle(row)

	// Best-effort fallback: resolve the cycle from the plans table by name.
	// A failing lookup leaves the cycle empty, it never fails the computation.
	if cycle == "" && state.PlanName != nil && r.Cycles != nil {
		looked, err := r.Cycles(*state.PlanName)
		if err != nil {
			r.Log.Debug().Err(err).Str("plan", *state.PlanName).Msg("billing cycle lookup failed")
		} else {
			cycle = plans.NormalizeBillingCycle(looked)
		}
	}
	if cycle != "" {
		state.BillingCycle = &cycle
	}

	// Rows without an explicit end date get one derived from the cycle.
	if state.ExpiresAt == nil && state.StartedAt != nil && cycle != "" {
		if derived := deriveExpiry(*state.StartedAt, cycle); derived != nil {
			state.ExpiresAt = derived
		}
	}

	state.Expired = state.ExpiresAt != nil && now.After(*state.ExpiresAt)
	state.IsActivePaid = state.Status != nil && *state.Status == "active" && !state.Expired

	return state
}

func subscriptionPlanName(row *subscriptions.Subscription) *string {
	if row.PlanType != nil {
		if name := strings.TrimSpace(*row.PlanType); name != "" {
			return &name
		}
	}
	if row.Plan != nil {
		if name := strings.TrimSpace(row.Plan.Name); name != "" {
			return &name
		}
	}
	return nil
}

func rowBillingCycle(row *subscriptions.Subscription) string {
	// The joined plan's cycle wins over the denormalized column on the row.
	if row.Plan != nil {
		if c := plans.NormalizeBillingCycle(row.Plan.BillingCycle); c != "" {
			return c
		}
	}
	if row.BillingCycle != nil {
		return plans.NormalizeBillingCycle(*row.BillingCycle)
	}
	return ""
}

// deriveExpiry computes a period end from the start date and billing cycle.
// Annual uses calendar-month arithmetic: Jan 31 + 12 months is Jan 31 of the
// next year, not start + 365 days.
func deriveExpiry(start time.Time, cycle string) *time.Time {
	var end time.Time
	switch cycle {
	case plans.CycleMonthly:
		end = start.AddDate(0, 0, 30)
	case plans.CycleQuarterly:
		end = start.AddDate(0, 0, 90)
	case plans.CycleAnnual:
		end = start.AddDate(0, 12, 0)
	default:
		return nil
	}
	return &end
}
