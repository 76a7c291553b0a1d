package webhooks

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"feedback-app/database"
	"feedback-app/internal/domain/messaging"
	"feedback-app/internal/domain/surveys"
	"feedback-app/internal/domain/tenants"
	"feedback-app/internal/infra/whatsapp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Str("component", "webhooks").Logger()

type recipient struct {
	Name  string `json:"name"`
	Phone string `json:"phone" binding:"required"`
}

// FeedbackRequest is the inbound trigger from a tenant's own system (POS,
// e-commerce, booking tool): it asks us to send the survey invite over
// WhatsApp to the listed customers. Sends are sequential; one failed
// recipient does not stop the rest.
func FeedbackRequest(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant id"})
		return
	}

	var tenant tenants.Tenant
	if err := database.DB.Where("id = ?", tenantID).First(&tenant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
		return
	}

	var input struct {
		SurveyID   uuid.UUID   `json:"survey_id" binding:"required"`
		Recipients []recipient `json:"recipients" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var survey surveys.Survey
	if err := database.DB.
		Where("id = ? AND tenant_id = ? AND active = ?", input.SurveyID, tenantID, true).
		First(&survey).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Survey not found"})
		return
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:5173"
	}
	surveyLink := fmt.Sprintf("%s/s/%s", appURL, survey.Token)

	template := survey.WhatsAppTemplate
	if template == "" {
		template = "feedback_invite"
	}

	client := whatsapp.NewClient()
	sent := 0
	failed := 0

	for _, r := range input.Recipients {
		err := client.SendTemplate(c.Request.Context(), r.Phone, template, "pt_BR", r.Name, tenant.Name, surveyLink)

		entry := messaging.MessageLog{
			TenantID: tenant.ID,
			SurveyID: &survey.ID,
			ToPhone:  r.Phone,
			Template: template,
			Status:   "sent",
		}
		if err != nil {
			failed++
			entry.Status = "failed"
			entry.Error = err.Error()
			log.Warn().Err(err).Str("tenant_id", tenant.ID.String()).Str("to", r.Phone).Msg("whatsapp send failed")
		} else {
			sent++
		}
		_ = database.DB.Create(&entry).Error
	}

	if sent > 0 {
		recordConsumption(tenant.ID, sent)
	}

	c.JSON(http.StatusOK, gin.H{
		"sent":   sent,
		"failed": failed,
	})
}

// recordConsumption bumps the tenant's monthly send counter. Update first;
// when no bucket exists yet, insert it, and retry the update once if the
// insert raced with a concurrent request. Failures are logged, never
// surfaced: consumption tracking must not fail the dispatch.
func recordConsumption(tenantID uuid.UUID, count int) {
	month := messaging.MonthKey(time.Now())

	res := database.DB.Model(&messaging.MonthlyConsumption{}).
		Where("tenant_id = ? AND month = ?", tenantID, month).
		Update("messages_sent", gorm.Expr("messages_sent + ?", count))
	if res.Error == nil && res.RowsAffected > 0 {
		return
	}

	row := messaging.MonthlyConsumption{
		TenantID:     tenantID,
		Month:        month,
		MessagesSent: count,
	}
	if err := database.DB.Create(&row).Error; err == nil {
		return
	}

	res = database.DB.Model(&messaging.MonthlyConsumption{}).
		Where("tenant_id = ? AND month = ?", tenantID, month).
		Update("messages_sent", gorm.Expr("messages_sent + ?", count))
	if res.Error != nil || res.RowsAffected == 0 {
		log.Error().Str("tenant_id", tenantID.String()).Str("month", month).Msg("failed to record consumption")
	}
}
