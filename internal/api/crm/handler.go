package crm

import (
	"net/http"

	"feedback-app/database"
	"feedback-app/internal/app/http/middleware"
	"feedback-app/internal/domain/crm"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ListTasks(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant not identified"})
		return
	}

	q := database.DB.Where("tenant_id = ?", tenantID)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var tasks []crm.FollowUpTask
	if err := q.Order("created_at DESC").Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func CreateTask(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant not identified"})
		return
	}

	var input struct {
		Title         string `json:"title" binding:"required"`
		Notes         string `json:"notes"`
		CustomerName  string `json:"customer_name"`
		CustomerPhone string `json:"customer_phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := crm.FollowUpTask{
		TenantID:      tenantID,
		Title:         input.Title,
		Notes:         input.Notes,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Status:        crm.StatusOpen,
	}

	if err := database.DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func UpdateTask(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant not identified"})
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}

	var input struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch input.Status {
	case "", crm.StatusOpen, crm.StatusDone, crm.StatusSkipped:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var task crm.FollowUpTask
	if err := database.DB.Where("id = ? AND tenant_id = ?", taskID, tenantID).First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	updates := map[string]interface{}{}
	if input.Status != "" {
		updates["status"] = input.Status
	}
	if input.Notes != "" {
		updates["notes"] = input.Notes
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&task).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
			return
		}
	}

	c.JSON(http.StatusOK, task)
}
