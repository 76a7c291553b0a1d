package access

import "time"

// Reason codes surfaced to the HTTP layer for UI branching.
type Reason string

const (
	ReasonNoTenant            Reason = "no_tenant"
	ReasonTrialExpired        Reason = "trial_expired"
	ReasonSubscriptionExpired Reason = "subscription_expired"
	ReasonTenantInactive      Reason = "tenant_inactive"
	ReasonActive              Reason = "active"
)

// TrialState describes whether the tenant is on the 7-day free trial and
// whether that trial has run out. Recomputed per request, never stored.
type TrialState struct {
	IsTrial   bool       `json:"is_trial"`
	Expired   bool       `json:"expired"`
	StartedAt *time.Time `json:"started_at"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// SubscriptionState describes the tenant's governing subscription row.
// IsSubscription is true whenever a row exists, regardless of its status.
type SubscriptionState struct {
	IsSubscription bool       `json:"is_subscription"`
	IsActivePaid   bool       `json:"is_active_paid"`
	Expired        bool       `json:"expired"`
	StartedAt      *time.Time `json:"started_at"`
	ExpiresAt      *time.Time `json:"expires_at"`
	PlanName       *string    `json:"plan_name"`
	BillingCycle   *string    `json:"billing_cycle"`
	Status         *string    `json:"status"`
}

// AccessState is the unified block decision. Context fields are only set for
// the reasons that carry them (subscription_expired, tenant_inactive).
type AccessState struct {
	Blocked      bool       `json:"blocked"`
	Reason       Reason     `json:"reason"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	PlanName     *string    `json:"plan_name,omitempty"`
	BillingCycle *string    `json:"billing_cycle,omitempty"`
	Status       *string    `json:"status,omitempty"`
}

// Context is the full resolver output consumed by the HTTP layer.
type Context struct {
	Trial        TrialState        `json:"trial"`
	Access       AccessState       `json:"access"`
	Subscription SubscriptionState `json:"subscription"`
}
