package vouchers

import (
	"net/http"
	"time"

	"feedback-app/database"
	"feedback-app/internal/app/http/middleware"
	"feedback-app/internal/domain/vouchers"

	"github.com/gin-gonic/gin"
)

func ListVouchers(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant not identified"})
		return
	}

	var list []vouchers.Voucher
	if err := database.DB.
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load vouchers"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// RedeemVoucher marks a voucher as used. Expired or already redeemed codes
// are rejected.
func RedeemVoucher(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant not identified"})
		return
	}

	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing voucher code"})
		return
	}

	var voucher vouchers.Voucher
	if err := database.DB.Where("code = ? AND tenant_id = ?", body.Code, tenantID).First(&voucher).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
		return
	}

	if voucher.Redeemed {
		c.JSON(http.StatusConflict, gin.H{"error": "Voucher already redeemed"})
		return
	}

	now := time.Now().UTC()
	if voucher.ExpiresAt != nil && now.After(*voucher.ExpiresAt) {
		c.JSON(http.StatusGone, gin.H{"error": "Voucher expired"})
		return
	}

	if err := database.DB.Model(&voucher).Updates(map[string]interface{}{
		"redeemed":    true,
		"redeemed_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem voucher"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Voucher redeemed", "reward": voucher.Reward})
}
