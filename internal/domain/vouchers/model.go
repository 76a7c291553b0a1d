package vouchers

import (
	"time"

	"github.com/google/uuid"

	"feedback-app/internal/domain/tenants"
)

type Voucher struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TenantID uuid.UUID      `gorm:"type:uuid;index:idx_vouchers_tenant_id" json:"tenant_id"`
	Tenant   tenants.Tenant `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Code   string `gorm:"uniqueIndex:idx_vouchers_code" json:"code"`
	Reward string `json:"reward"`

	CustomerPhone string `gorm:"column:customer_phone" json:"customer_phone"`

	Redeemed   bool       `json:"redeemed"`
	RedeemedAt *time.Time `gorm:"column:redeemed_at" json:"redeemed_at"`
	ExpiresAt  *time.Time `gorm:"column:expires_at" json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
}
