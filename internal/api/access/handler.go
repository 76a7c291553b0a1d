package access

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feedback-app/internal/app/http/middleware"
)

// GetAccessContext returns the full trial/access/subscription view for the
// caller's tenant. Recomputed on every call, never cached.
func GetAccessContext(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant not identified"})
		return
	}

	c.JSON(http.StatusOK, LoadContext(tenantID))
}
