package users

import (
	"net/http"

	"feedback-app/database"
	accessapi "feedback-app/internal/api/access"
	"feedback-app/internal/domain/tenants"
	"feedback-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser returns the caller's profile, tenant and freshly computed
// access context in one payload.
func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.
		Where("email = ?", email).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var tenant *tenants.Tenant
	var t tenants.Tenant
	if err := database.DB.Where("id = ?", user.TenantID).First(&t).Error; err == nil {
		tenant = &t
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"name":        user.Name,
			"lastname":    user.Lastname,
			"role":        user.Role,
			"is_verified": user.IsVerified,
			"tenant_id":   user.TenantID,
		},
		"tenant":  tenant,
		"context": accessapi.LoadContext(user.TenantID),
	})
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	type Token struct {
		UserID int
	}
	var t Token
	if err := database.DB.Table("verification_tokens").Where("token = ?", token).First(&t).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", t.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	_ = database.DB.Exec("DELETE FROM verification_tokens WHERE token = ?", token)

	redirectURL := "http://localhost:5173/signin"
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
