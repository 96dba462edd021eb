package businessapi

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"dzairbox/database"
	"dzairbox/internal/domain/access"
	"dzairbox/internal/domain/business"
	"dzairbox/internal/domain/users"
	"dzairbox/internal/infra/rendercache"

	"github.com/gin-gonic/gin"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func mustOwnedBusiness(c *gin.Context) (*business.Business, bool) {
	userID, ok := mustUserID(c)
	if !ok {
		return nil, false
	}

	var biz business.Business
	if err := database.DB.First(&biz, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return nil, false
	}
	if biz.UserID != userID && c.GetString("role") != "admin" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return nil, false
	}
	return &biz, true
}

// GET /businesses
func ListMyBusinesses(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []business.Business
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load businesses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": list})
}

// POST /businesses
func CreateBusiness(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subdomain, err := business.EnsureUniqueSubdomain(database.DB, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to allocate subdomain"})
		return
	}

	biz := business.Business{
		UserID:       userID,
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		Subdomain:    subdomain,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		City:         req.City,
		Wilaya:       req.Wilaya,
		Facebook:     req.Facebook,
		Instagram:    req.Instagram,
		TikTok:       req.TikTok,
		YouTube:      req.YouTube,
		OpeningHours: req.OpeningHours,
		// New listings wait for moderation before going public.
		IsActive: false,
	}
	if err := database.DB.Create(&biz).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create business"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"business":   biz,
		"public_url": biz.PublicURL(),
	})
}

// GET /businesses/:id
func GetBusiness(c *gin.Context) {
	biz, ok := mustOwnedBusiness(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"business":   biz,
		"public_url": biz.PublicURL(),
	})
}

// PUT /businesses/:id
func UpdateBusiness(c *gin.Context) {
	biz, ok := mustOwnedBusiness(c)
	if !ok {
		return
	}

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	setIf(updates, "name", req.Name)
	setIf(updates, "category", req.Category)
	setIf(updates, "description", req.Description)
	setIf(updates, "phone", req.Phone)
	setIf(updates, "email", req.Email)
	setIf(updates, "address", req.Address)
	setIf(updates, "city", req.City)
	setIf(updates, "wilaya", req.Wilaya)
	setIf(updates, "facebook", req.Facebook)
	setIf(updates, "instagram", req.Instagram)
	setIf(updates, "tiktok", req.TikTok)
	setIf(updates, "youtube", req.YouTube)
	setIf(updates, "opening_hours", req.OpeningHours)

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"business": biz})
		return
	}

	if err := database.DB.Model(biz).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update business"})
		return
	}

	// Contact details feed the public page even without a custom template.
	rendercache.Pages.Invalidate(biz.PublicPath())

	c.JSON(http.StatusOK, gin.H{"business": biz})
}

var customDomainPattern = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,}$`)

// PUT /businesses/:id/custom-domain (premium)
func SetCustomDomain(c *gin.Context) {
	biz, ok := mustOwnedBusiness(c)
	if !ok {
		return
	}

	var user users.User
	if err := database.DB.Preload("Plan").First(&user, biz.UserID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load account"})
		return
	}
	policy := access.ComputePolicy(time.Now(), user)
	if !hasCapability(policy.Capabilities, "custom_domain") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Custom domains require the Premium plan"})
		return
	}

	var req SetCustomDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	domain := strings.ToLower(strings.TrimSpace(req.Domain))
	if domain == "" {
		if err := database.DB.Model(biz).Update("custom_domain", nil).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to detach domain"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "custom_domain": nil})
		return
	}

	if !customDomainPattern.MatchString(domain) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid domain name"})
		return
	}

	var taken int64
	if err := database.DB.Model(&business.Business{}).
		Where("custom_domain = ? AND id <> ?", domain, biz.ID).
		Count(&taken).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check domain"})
		return
	}
	if taken > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Domain already in use"})
		return
	}

	if err := database.DB.Model(biz).Update("custom_domain", domain).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save domain"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "custom_domain": domain})
}

func setIf(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}

func hasCapability(caps []string, want string) bool {
	for _, capability := range caps {
		if capability == want {
			return true
		}
	}
	return false
}
