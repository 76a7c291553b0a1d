package billing

import (
	"time"

	"github.com/google/uuid"

	"feedback-app/internal/domain/plans"
	"feedback-app/internal/domain/tenants"
)

type Payment struct {
	ID                   uint      `gorm:"primaryKey"`
	TenantID             uuid.UUID `gorm:"type:uuid;index:idx_payments_tenant_id"`
	Tenant               tenants.Tenant
	PlanID               *uint
	Plan                 *plans.Plan
	StripeSessionID      string `gorm:"uniqueIndex"`
	StripeSubscriptionID *string
	AmountEUR            float64
	Status               string
	InvoiceID            *string
	ReceiptURL           *string
	CreatedAt            time.Time
}
