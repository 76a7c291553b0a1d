package crm

import (
	"time"

	"github.com/google/uuid"

	"feedback-app/internal/domain/tenants"
)

// Task statuses
const (
	StatusOpen    = "open"
	StatusDone    = "done"
	StatusSkipped = "skipped"
)

// FollowUpTask is a CRM item created for a tenant's team, usually when a
// survey response comes in with a low rating.
type FollowUpTask struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TenantID uuid.UUID      `gorm:"type:uuid;index:idx_follow_up_tasks_tenant_id" json:"tenant_id"`
	Tenant   tenants.Tenant `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	ResponseID *uuid.UUID `gorm:"type:uuid" json:"response_id"`

	Title         string `json:"title"`
	Notes         string `json:"notes"`
	CustomerName  string `gorm:"column:customer_name" json:"customer_name"`
	CustomerPhone string `gorm:"column:customer_phone" json:"customer_phone"`

	Status string `gorm:"default:open" json:"status"`

	DueAt     *time.Time `gorm:"column:due_at" json:"due_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
