package messaging

import (
	"time"

	"github.com/google/uuid"

	"feedback-app/internal/domain/tenants"
)

// MessageLog records every outbound WhatsApp send attempt.
type MessageLog struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TenantID uuid.UUID      `gorm:"type:uuid;index:idx_message_logs_tenant_id" json:"tenant_id"`
	Tenant   tenants.Tenant `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	SurveyID *uuid.UUID `gorm:"type:uuid" json:"survey_id"`

	ToPhone  string `gorm:"column:to_phone" json:"to_phone"`
	Template string `json:"template"`
	Status   string `json:"status"` // "sent" | "failed"
	Error    string `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// MonthlyConsumption tracks per-tenant WhatsApp sends per calendar month.
// Month is keyed "YYYY-MM" in UTC.
type MonthlyConsumption struct {
	ID       uint      `gorm:"primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_monthly_consumption_tenant_month"`
	Month    string    `gorm:"uniqueIndex:idx_monthly_consumption_tenant_month"`

	MessagesSent int `gorm:"column:messages_sent"`

	UpdatedAt time.Time
	CreatedAt time.Time
}

// MonthKey formats the consumption bucket for a point in time.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
