package routes

import (
	accessapi "feedback-app/internal/api/access"
	adminapi "feedback-app/internal/api/admin"
	authapi "feedback-app/internal/api/auth"
	"feedback-app/internal/api/billing"
	crmapi "feedback-app/internal/api/crm"
	"feedback-app/internal/api/plans"
	stripewebhooks "feedback-app/internal/api/stripewebhook"
	surveysapi "feedback-app/internal/api/surveys"
	tenantsapi "feedback-app/internal/api/tenants"
	"feedback-app/internal/api/users"
	vouchersapi "feedback-app/internal/api/vouchers"
	"feedback-app/internal/api/webhooks"
	"feedback-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.POST("/webhooks/:tenant_id/feedback-request", webhooks.FeedbackRequest)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plans.ListPlans)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Public survey submission (linked from WhatsApp invites)
	public.POST("/s/:token/responses", surveysapi.SubmitResponse)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.GET("/access-context", accessapi.GetAccessContext)
	auth.GET("/tenant", tenantsapi.GetCurrentTenant)
	auth.PUT("/tenant", tenantsapi.UpdateCurrentTenant)
	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)
	auth.POST("/change-password", authapi.ChangePassword)

	// Product features are gated on the resolved access state
	gated := auth.Group("/")
	gated.Use(accessapi.RequireAccess())

	gated.GET("/surveys", surveysapi.ListSurveys)
	gated.POST("/surveys", surveysapi.CreateSurvey)
	gated.GET("/surveys/:id/responses", surveysapi.GetSurveyResponses)

	gated.GET("/tasks", crmapi.ListTasks)
	gated.POST("/tasks", crmapi.CreateTask)
	gated.PUT("/tasks/:id", crmapi.UpdateTask)

	gated.GET("/vouchers", vouchersapi.ListVouchers)
	gated.POST("/vouchers/redeem", vouchersapi.RedeemVoucher)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/tenants", adminapi.ListAllTenants)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.GET("/tenant/:id", adminapi.GetTenantDetails)
	admin.PUT("/tenant/:id/status", adminapi.SetTenantStatus)
	admin.POST("/sync-plans", plans.SyncPlansFromStripe)
}
