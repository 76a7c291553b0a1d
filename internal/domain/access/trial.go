package access

import (
	"time"

	"feedback-app/internal/domain/tenants"
)

// TrialDuration is the free-trial window: exactly 7 days (604800 seconds).
const TrialDuration = 7 * 24 * time.Hour

// ComputeTrialState decides whether the tenant is on trial and whether that
// trial has run out. First match wins:
//
//  1. no tenant -> not a trial
//  2. an active paid subscription supersedes trial status, whatever plan_type says
//  3. plan_type is not a trial alias -> not a trial
//  4. on trial; expiry from trial_start_date, falling back to created_at
//
// A trial with no resolvable start date cannot expire (fail-open). Expiry is a
// strict comparison: at exactly started_at + 7 days the trial is still live.
func ComputeTrialState(now time.Time, tenant *tenants.Tenant, sub SubscriptionState) TrialState {
	if tenant == nil {
		return TrialState{}
	}
	if sub.IsActivePaid {
		return TrialState{}
	}
	if NormalizePlanType(tenant.PlanType) != PlanTypeFreeTrial {
		return TrialState{}
	}

	startedAt := trialStart(tenant)
	if startedAt == nil {
		return TrialState{IsTrial: true}
	}

	expiresAt := startedAt.Add(TrialDuration)
	return TrialState{
		IsTrial:   true,
		Expired:   now.After(expiresAt),
		StartedAt: startedAt,
		ExpiresAt: &expiresAt,
	}
}

func trialStart(tenant *tenants.Tenant) *time.Time {
	if tenant.TrialStartDate != nil && !tenant.TrialStartDate.IsZero() {
		utc := tenant.TrialStartDate.UTC()
		return &utc
	}
	if !tenant.CreatedAt.IsZero() {
		utc := tenant.CreatedAt.UTC()
		return &utc
	}
	return nil
}
