package surveys

import (
	"time"

	"github.com/google/uuid"

	"feedback-app/internal/domain/tenants"
)

type Survey struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TenantID uuid.UUID      `gorm:"type:uuid;index:idx_surveys_tenant_id" json:"tenant_id"`
	Tenant   tenants.Tenant `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Title    string `json:"title"`
	Question string `json:"question"`

	// Public token embedded in WhatsApp links. No auth on submission.
	Token string `gorm:"uniqueIndex:idx_surveys_token" json:"token"`

	// WhatsApp template used when dispatching invites for this survey.
	WhatsAppTemplate string `gorm:"column:whatsapp_template" json:"whatsapp_template"`

	// Issue a voucher to respondents when set.
	RewardVoucher bool `gorm:"column:reward_voucher" json:"reward_voucher"`

	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SurveyResponse struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SurveyID uuid.UUID `gorm:"type:uuid;index:idx_survey_responses_survey_id" json:"survey_id"`
	Survey   Survey    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TenantID uuid.UUID `gorm:"type:uuid;index:idx_survey_responses_tenant_id" json:"tenant_id"`

	// 1..5
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`

	CustomerName  string `gorm:"column:customer_name" json:"customer_name"`
	CustomerPhone string `gorm:"column:customer_phone" json:"customer_phone"`

	CreatedAt time.Time `json:"created_at"`
}
