package admin

import (
	"net/http"
	"time"

	"dzairbox/database"
	"dzairbox/internal/domain/billing"
	"dzairbox/internal/domain/business"
	"dzairbox/internal/domain/users"
	"dzairbox/internal/infra/rendercache"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID                uint       `json:"id"`
	Name              string     `json:"name"`
	Lastname          string     `json:"lastname"`
	Tel               string     `json:"tel"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	IsVerified        bool       `json:"is_verified"`
	PlanName          *string    `json:"plan_name,omitempty"`
	StripeCustomerID  *string    `json:"stripe_customer_id,omitempty"`
	StripeSubID       *string    `json:"stripe_subscription_id,omitempty"`
	SubscriptionStart *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty"`
}

type AdminPayment struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email"`
	PlanName   *string `json:"plan_name,omitempty"`
	AmountDZD  float64 `json:"amount_dzd"`
	Status     string  `json:"status"`
	InvoiceID  *string `json:"invoice_id,omitempty"`
	ReceiptURL *string `json:"receipt_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers        int            `json:"total_users"`
	TotalBusinesses   int            `json:"total_businesses"`
	PendingModeration int            `json:"pending_moderation"`
	TotalRevenue      float64        `json:"total_revenue"`
	RecentRevenue     float64        `json:"recent_revenue"`
	BusinessesPerCity map[string]int `json:"businesses_per_city"`
}

func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers, totalBusinesses, pending int64
	var totalRevenue, recentRevenue float64

	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&business.Business{}).Count(&totalBusinesses)
	database.DB.Model(&business.Business{}).Where("is_active = ?", false).Count(&pending)

	database.DB.Model(&billing.Payment{}).
		Where("status = ?", "paid").
		Select("COALESCE(SUM(amount_dzd), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&billing.Payment{}).
		Where("status = ? AND created_at >= ?", "paid", thirtyDaysAgo).
		Select("COALESCE(SUM(amount_dzd), 0)").Scan(&recentRevenue)

	stats.TotalUsers = int(totalUsers)
	stats.TotalBusinesses = int(totalBusinesses)
	stats.PendingModeration = int(pending)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	type CityCount struct {
		City  string
		Count int
	}
	var counts []CityCount
	database.DB.
		Table("businesses").
		Select("city, COUNT(id) as count").
		Group("city").
		Scan(&counts)

	stats.BusinessesPerCity = map[string]int{}
	for _, cc := range counts {
		name := cc.City
		if name == "" {
			name = "Non renseignée"
		}
		stats.BusinessesPerCity[name] = cc.Count
	}

	c.JSON(http.StatusOK, stats)
}

func ListAllUsers(c *gin.Context) {
	var list []users.User
	if err := database.DB.Preload("Plan").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var adminUsers []AdminUser
	for _, u := range list {
		var planName *string
		if u.Plan != nil {
			planName = &u.Plan.Name
		}

		adminUsers = append(adminUsers, AdminUser{
			ID:                u.ID,
			Name:              u.Name,
			Lastname:          u.Lastname,
			Tel:               u.Tel,
			Email:             u.Email,
			Role:              u.Role,
			IsVerified:        u.IsVerified,
			PlanName:          planName,
			StripeCustomerID:  u.StripeCustomerID,
			StripeSubID:       u.SubscriptionId,
			SubscriptionStart: u.SubscriptionStart,
			SubscriptionEnd:   u.SubscriptionEnd,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

// GET /admin/businesses?status=pending|active|all
func ListBusinesses(c *gin.Context) {
	q := database.DB.Order("created_at DESC")
	switch c.DefaultQuery("status", "all") {
	case "pending":
		q = q.Where("is_active = ?", false)
	case "active":
		q = q.Where("is_active = ?", true)
	}

	var list []business.Business
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load businesses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": list})
}

func GetBusinessDetails(c *gin.Context) {
	var biz business.Business
	if err := database.DB.First(&biz, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	var owner users.User
	if err := database.DB.Preload("Plan").First(&owner, biz.UserID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load owner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business": biz,
		"owner": gin.H{
			"id":    owner.ID,
			"name":  owner.Name,
			"email": owner.Email,
		},
		"public_url": biz.PublicURL(),
	})
}

func ApproveBusiness(c *gin.Context) {
	setModeration(c, true)
}

func RejectBusiness(c *gin.Context) {
	setModeration(c, false)
}

func setModeration(c *gin.Context, approved bool) {
	var biz business.Business
	if err := database.DB.First(&biz, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	if err := database.DB.Model(&biz).Update("is_active", approved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update moderation status"})
		return
	}

	// Rejection must take a previously public page down immediately.
	rendercache.Pages.Invalidate(biz.PublicPath())

	c.JSON(http.StatusOK, gin.H{"success": true, "is_active": approved})
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	err := database.DB.Preload("User").Preload("Plan").Order("created_at DESC").Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	var result []AdminPayment
	for _, p := range payments {
		var planName *string
		if p.Plan != nil {
			planName = &p.Plan.Name
		}
		result = append(result, AdminPayment{
			ID:         p.ID,
			Email:      p.User.Email,
			PlanName:   planName,
			AmountDZD:  p.AmountDZD,
			Status:     p.Status,
			InvoiceID:  p.InvoiceID,
			ReceiptURL: p.ReceiptURL,
			CreatedAt:  p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, result)
}
