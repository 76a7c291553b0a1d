package subscriptions

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"feedback-app/internal/domain/plans"
	"feedback-app/internal/domain/tenants"
)

// Subscription mirrors the billing rows imported from the legacy store. Several
// date columns are redundant on purpose: older rows only carry start_date /
// end_date / created_date, newer ones carry the current_period_* pair. Readers
// must go through the precedence helpers instead of picking a column directly.
type Subscription struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TenantID uuid.UUID      `gorm:"type:uuid;index:idx_subscriptions_tenant_id" json:"tenant_id"`
	Tenant   tenants.Tenant `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	PlanID *uint       `json:"plan_id"`
	Plan   *plans.Plan `json:"-"`

	// Legacy display name; newer rows rely on the joined plan instead.
	PlanType *string `gorm:"column:plan_type" json:"plan_type"`

	// Free-text; only "active" (case-insensitive) counts as currently paid.
	Status string `json:"status"`

	BillingCycle *string `gorm:"column:billing_cycle" json:"billing_cycle"`

	CurrentPeriodStart *time.Time `gorm:"column:current_period_start" json:"current_period_start"`
	CurrentPeriodEnd   *time.Time `gorm:"column:current_period_end" json:"current_period_end"`
	StartDate          *time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate            *time.Time `gorm:"column:end_date" json:"end_date"`
	CreatedDate        *time.Time `gorm:"column:created_date" json:"created_date"`

	StripeSubscriptionID *string `gorm:"column:stripe_subscription_id;index:idx_subscriptions_stripe_id" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsStatusActive reports whether the row's free-text status means "active".
func (s *Subscription) IsStatusActive() bool {
	return strings.EqualFold(strings.TrimSpace(s.Status), "active")
}
