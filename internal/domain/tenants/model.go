package tenants

import (
	"time"

	"github.com/google/uuid"
)

type Tenant struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name string    `json:"name"`

	// Free-text plan label ("freetrial", "pro", ...). Normalized only for
	// comparison, never rewritten in the row.
	PlanType string `gorm:"column:plan_type" json:"plan_type"`

	// Lifecycle label. Only "active" (case-insensitive) is non-blocking.
	Status string `json:"status"`

	TrialStartDate *time.Time `gorm:"column:trial_start_date" json:"trial_start_date"`

	WhatsAppNumber *string `gorm:"column:whatsapp_number" json:"whatsapp_number"`

	StripeCustomerID *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_tenants_stripe_customer_id" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
