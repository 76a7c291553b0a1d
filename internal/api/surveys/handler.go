package surveys

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"feedback-app/database"
	"feedback-app/internal/app/http/middleware"
	"feedback-app/internal/domain/crm"
	"feedback-app/internal/domain/surveys"
	"feedback-app/internal/domain/vouchers"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Responses rated at or below this open a CRM follow-up task.
const followUpRatingThreshold = 2

func surveyToken() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func ListSurveys(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant not identified"})
		return
	}

	var list []surveys.Survey
	if err := database.DB.
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load surveys"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func CreateSurvey(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant not identified"})
		return
	}

	var input struct {
		Title            string `json:"title" binding:"required"`
		Question         string `json:"question" binding:"required"`
		WhatsAppTemplate string `json:"whatsapp_template"`
		RewardVoucher    bool   `json:"reward_voucher"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	survey := surveys.Survey{
		TenantID:         tenantID,
		Title:            input.Title,
		Question:         input.Question,
		Token:            surveyToken(),
		WhatsAppTemplate: input.WhatsAppTemplate,
		RewardVoucher:    input.RewardVoucher,
		Active:           true,
	}

	if err := database.DB.Create(&survey).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create survey"})
		return
	}

	c.JSON(http.StatusOK, survey)
}

func GetSurveyResponses(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant not identified"})
		return
	}

	surveyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid survey id"})
		return
	}

	var list []surveys.SurveyResponse
	if err := database.DB.
		Where("survey_id = ? AND tenant_id = ?", surveyID, tenantID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load responses"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// SubmitResponse is the public endpoint behind the WhatsApp survey link.
// No auth; the survey token scopes the write. Low ratings open a follow-up
// task and, when the survey rewards completion, a voucher is issued.
func SubmitResponse(c *gin.Context) {
	token := c.Param("token")

	var survey surveys.Survey
	if err := database.DB.Where("token = ? AND active = ?", token, true).First(&survey).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Survey not found"})
		return
	}

	var input struct {
		Rating        int    `json:"rating" binding:"required,min=1,max=5"`
		Comment       string `json:"comment"`
		CustomerName  string `json:"customer_name"`
		CustomerPhone string `json:"customer_phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response := surveys.SurveyResponse{
		SurveyID:      survey.ID,
		TenantID:      survey.TenantID,
		Rating:        input.Rating,
		Comment:       input.Comment,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
	}

	if err := database.DB.Create(&response).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save response"})
		return
	}

	if input.Rating <= followUpRatingThreshold {
		task := crm.FollowUpTask{
			TenantID:      survey.TenantID,
			ResponseID:    &response.ID,
			Title:         "Follow up on low rating (" + survey.Title + ")",
			Notes:         input.Comment,
			CustomerName:  input.CustomerName,
			CustomerPhone: input.CustomerPhone,
			Status:        crm.StatusOpen,
		}
		// Best effort: a failed task insert must not lose the response.
		_ = database.DB.Create(&task).Error
	}

	var voucherCode *string
	if survey.RewardVoucher && input.CustomerPhone != "" {
		code := strings.ToUpper(surveyToken()[:10])
		expires := time.Now().UTC().AddDate(0, 1, 0)
		voucher := vouchers.Voucher{
			TenantID:      survey.TenantID,
			Code:          code,
			Reward:        "Thank-you reward",
			CustomerPhone: input.CustomerPhone,
			ExpiresAt:     &expires,
		}
		if err := database.DB.Create(&voucher).Error; err == nil {
			voucherCode = &code
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Thank you for your feedback!",
		"voucher": voucherCode,
	})
}
