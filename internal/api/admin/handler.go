package admin

import (
	"net/http"
	"time"

	"feedback-app/database"
	"feedback-app/internal/domain/billing"
	"feedback-app/internal/domain/surveys"
	"feedback-app/internal/domain/tenants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminTenant struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	PlanType         string     `json:"plan_type"`
	Status           string     `json:"status"`
	TrialStartDate   *time.Time `json:"trial_start_date,omitempty"`
	StripeCustomerID *string    `json:"stripe_customer_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type AdminStats struct {
	TotalTenants    int            `json:"total_tenants"`
	TotalResponses  int            `json:"total_responses"`
	TotalRevenue    float64        `json:"total_revenue"`
	RecentRevenue   float64        `json:"recent_revenue"`
	TenantsPerPlan  map[string]int `json:"tenants_per_plan"`
	RecentResponses int            `json:"recent_responses"`
}

func AdminDashboard(c *gin.Context) {
	var stats AdminStats

	var totalTenants int64
	var totalResponses int64
	var recentResponses int64
	var totalRevenue float64
	var recentRevenue float64

	database.DB.Model(&tenants.Tenant{}).Count(&totalTenants)
	database.DB.Model(&surveys.SurveyResponse{}).Count(&totalResponses)
	database.DB.Model(&billing.Payment{}).Where("status = ?", "paid").Select("COALESCE(SUM(amount_eur), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&billing.Payment{}).
		Where("status = ? AND created_at >= ?", "paid", thirtyDaysAgo).
		Select("COALESCE(SUM(amount_eur), 0)").Scan(&recentRevenue)
	database.DB.Model(&surveys.SurveyResponse{}).
		Where("created_at >= ?", thirtyDaysAgo).
		Count(&recentResponses)

	stats.TotalTenants = int(totalTenants)
	stats.TotalResponses = int(totalResponses)
	stats.RecentResponses = int(recentResponses)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	type PlanCount struct {
		PlanType string
		Count    int
	}
	var counts []PlanCount
	database.DB.
		Table("tenants").
		Select("plan_type, COUNT(id) as count").
		Group("plan_type").
		Scan(&counts)

	stats.TenantsPerPlan = map[string]int{}
	for _, pc := range counts {
		name := pc.PlanType
		if name == "" {
			name = "No Plan"
		}
		stats.TenantsPerPlan[name] = pc.Count
	}

	c.JSON(http.StatusOK, stats)
}

func ListAllTenants(c *gin.Context) {
	var list []tenants.Tenant
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tenants"})
		return
	}

	var result []AdminTenant
	for _, t := range list {
		result = append(result, AdminTenant{
			ID:               t.ID,
			Name:             t.Name,
			PlanType:         t.PlanType,
			Status:           t.Status,
			TrialStartDate:   t.TrialStartDate,
			StripeCustomerID: t.StripeCustomerID,
			CreatedAt:        t.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, result)
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	if err := database.DB.Preload("Tenant").Preload("Plan").Order("created_at DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

func GetTenantDetails(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant id"})
		return
	}

	var tenant tenants.Tenant
	if err := database.DB.Where("id = ?", tenantID).First(&tenant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.Preload("Plan").Where("tenant_id = ?", tenantID).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tenant":   tenant,
		"payments": payments,
	})
}

// SetTenantStatus lets platform admins suspend or reactivate a tenant. The
// raw status value flows into the access resolver unchanged.
func SetTenantStatus(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant id"})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status"})
		return
	}

	if err := database.DB.Model(&tenants.Tenant{}).
		Where("id = ?", tenantID).
		Update("status", body.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}
