package access

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feedback-app/internal/app/http/middleware"
	domain "feedback-app/internal/domain/access"
)

// RequireAccess blocks requests for tenants whose access state resolves to
// blocked. Billing problems map to 402, tenant problems to 403; the reason
// code is surfaced for UI branching (upgrade page vs. support page).
func RequireAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID, ok := middleware.TenantID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Tenant not identified"})
			return
		}

		ctx := LoadContext(tenantID)
		if !ctx.Access.Blocked {
			c.Next()
			return
		}

		status := http.StatusForbidden
		if ctx.Access.Reason == domain.ReasonTrialExpired || ctx.Access.Reason == domain.ReasonSubscriptionExpired {
			status = http.StatusPaymentRequired
		}

		c.AbortWithStatusJSON(status, gin.H{
			"error":  "Access blocked",
			"reason": ctx.Access.Reason,
			"access": ctx.Access,
		})
	}
}
