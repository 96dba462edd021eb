package routes

import (
	adminapi "dzairbox/internal/api/admin"
	authapi "dzairbox/internal/api/auth"
	"dzairbox/internal/api/billing"
	businessapi "dzairbox/internal/api/business"
	chatapi "dzairbox/internal/api/chat"
	pagesapi "dzairbox/internal/api/pages"
	"dzairbox/internal/api/plans"
	stripewebhooks "dzairbox/internal/api/stripewebhook"
	"dzairbox/internal/api/users"
	"dzairbox/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public catalog + rendered business pages
	r.GET("/templates", pagesapi.ListTemplates)
	r.GET("/templates/:key", pagesapi.GetTemplate)
	r.GET("/sites/:subdomain", pagesapi.GetPublicSite)

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

	// Authenticated (business owners)
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/businesses", businessapi.ListMyBusinesses)
	auth.POST("/businesses", businessapi.CreateBusiness)
	auth.GET("/businesses/:id", businessapi.GetBusiness)
	auth.PUT("/businesses/:id", businessapi.UpdateBusiness)

	auth.GET("/businesses/:id/page-config", pagesapi.GetPageConfig)
	auth.PUT("/businesses/:id/page-config", pagesapi.SavePageConfig)
	auth.POST("/businesses/:id/page/activate", pagesapi.ActivateCustomPage)

	auth.POST("/onboarding/chat", chatapi.OnboardingChat)

	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)

	// Subscribed owners
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequireActiveSubscription())
	subscribed.PUT("/businesses/:id/custom-domain", businessapi.SetCustomDomain)

	// Admin back-office
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/businesses", adminapi.ListBusinesses)
	admin.GET("/businesses/:id", adminapi.GetBusinessDetails)
	admin.POST("/businesses/:id/approve", adminapi.ApproveBusiness)
	admin.POST("/businesses/:id/reject", adminapi.RejectBusiness)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.POST("/sync-plans", plans.SyncPlansFromStripe)
}
