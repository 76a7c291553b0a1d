package access

import (
	"strings"

	"feedback-app/internal/domain/tenants"
)

// ComputeAccessState collapses trial and subscription state into the single
// block decision. First match wins, and the order is load-bearing: an expired
// trial is reported as trial_expired even when the tenant status is also
// non-active.
//
//  1. no tenant           -> blocked, no_tenant
//  2. expired trial       -> blocked, trial_expired
//  3. expired subscription-> blocked, subscription_expired (+ expiry context)
//  4. non-active status   -> blocked, tenant_inactive (+ raw status)
//  5. otherwise           -> allowed, active
func ComputeAccessState(tenant *tenants.Tenant, trial TrialState, sub SubscriptionState) AccessState {
	if tenant == nil {
		return AccessState{Blocked: true, Reason: ReasonNoTenant}
	}

	if trial.IsTrial && trial.Expired {
		return AccessState{Blocked: true, Reason: ReasonTrialExpired}
	}

	if sub.IsSubscription && sub.Expired {
		return AccessState{
			Blocked:      true,
			Reason:       ReasonSubscriptionExpired,
			ExpiresAt:    sub.ExpiresAt,
			PlanName:     sub.PlanName,
			BillingCycle: sub.BillingCycle,
		}
	}

	if s := strings.TrimSpace(tenant.Status); s != "" && !strings.EqualFold(s, "active") {
		raw := tenant.Status
		return AccessState{Blocked: true, Reason: ReasonTenantInactive, Status: &raw}
	}

	return AccessState{Reason: ReasonActive}
}
