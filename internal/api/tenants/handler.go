package tenants

import (
	"net/http"

	"feedback-app/database"
	"feedback-app/internal/app/http/middleware"
	"feedback-app/internal/domain/tenants"

	"github.com/gin-gonic/gin"
)

func GetCurrentTenant(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant not identified"})
		return
	}

	var tenant tenants.Tenant
	if err := database.DB.Where("id = ?", tenantID).First(&tenant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
		return
	}

	c.JSON(http.StatusOK, tenant)
}

func UpdateCurrentTenant(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant not identified"})
		return
	}

	var input struct {
		Name           string  `json:"name"`
		WhatsAppNumber *string `json:"whatsapp_number"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.WhatsAppNumber != nil {
		updates["whatsapp_number"] = *input.WhatsAppNumber
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := database.DB.Model(&tenants.Tenant{}).
		Where("id = ?", tenantID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tenant"})
		return
	}

	var tenant tenants.Tenant
	database.DB.Where("id = ?", tenantID).First(&tenant)
	c.JSON(http.StatusOK, tenant)
}
