package pagesapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"dzairbox/database"
	"dzairbox/internal/domain/business"
	"dzairbox/internal/domain/pages"
	"dzairbox/internal/infra/rendercache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// mustOwnedBusiness loads the business from the :id param and checks
// the caller owns it (admins pass). Ownership failure answers 404, not
// 403, so probing cannot reveal which ids exist.
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

func toTemplateDTO(desc pages.TemplateDescriptor) TemplateDTO {
	return TemplateDTO{
		Key:              desc.Key,
		Name:             desc.Name,
		SidebarPosition:  desc.SidebarPosition,
		RequiredSections: desc.RequiredSections,
		OptionalSections: desc.OptionalSections,
	}
}

// GET /templates
func ListTemplates(c *gin.Context) {
	var rows []pages.Template
	if err := database.DB.
		Where("active = ?", true).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load templates"})
		return
	}

	out := GetTemplatesResponse{Templates: make([]TemplateDTO, 0, len(rows))}
	for _, row := range rows {
		if desc, ok := pages.Lookup(row.Key); ok {
			out.Templates = append(out.Templates, toTemplateDTO(desc))
		}
	}
	c.JSON(http.StatusOK, out)
}

// GET /templates/:key
func GetTemplate(c *gin.Context) {
	key := c.Param("key")

	var row pages.Template
	if err := database.DB.First(&row, "key = ? AND active = ?", key, true).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load template"})
		return
	}

	desc, ok := pages.Lookup(row.Key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	def, _ := pages.DefaultDocument(row.Key)

	c.JSON(http.StatusOK, GetTemplateResponse{
		Template: toTemplateDTO(desc),
		Default:  def,
	})
}

// GET /businesses/:id/page-config (auth, owner or admin)
func GetPageConfig(c *gin.Context) {
	biz, ok := mustOwnedBusiness(c)
	if !ok {
		return
	}

	cfg, err := pages.GetConfig(database.DB, biz.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page config"})
		return
	}

	resp := GetConfigResponse{UseCustomPage: biz.UseCustomPage}
	if cfg != nil {
		resp.HasConfig = true
		resp.ConfigVersion = cfg.ConfigVersion
		resp.PublishedAt = cfg.PublishedAt
		resp.Config = unmarshalDocument(cfg.Config)
		resp.Draft = unmarshalDocument(cfg.Draft)
	}
	c.JSON(http.StatusOK, resp)
}

// PUT /businesses/:id/page-config (auth, owner or admin)
func SavePageConfig(c *gin.Context) {
	biz, ok := mustOwnedBusiness(c)
	if !ok {
		return
	}

	var req SaveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := pages.SaveConfig(database.DB, rendercache.Pages, biz, req.Config, req.Publish)
	if err != nil {
		var verr *pages.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "Invalid page configuration",
				"kind":   verr.Kind,
				"fields": verr.Fields,
			})
		case errors.Is(err, pages.ErrTemplateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save page configuration"})
		}
		return
	}

	c.JSON(http.StatusOK, SaveConfigResponse{
		Success:   true,
		Published: req.Publish,
		ConfigID:  cfg.ID,
	})
}

// POST /businesses/:id/page/activate (auth, owner or admin)
func ActivateCustomPage(c *gin.Context) {
	biz, ok := mustOwnedBusiness(c)
	if !ok {
		return
	}

	var req ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pages.Activate(database.DB, rendercache.Pages, biz, req.Enabled, req.TemplateKey); err != nil {
		if errors.Is(err, pages.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page activation"})
		return
	}

	resp := ActivateResponse{Success: true, Enabled: biz.UseCustomPage}
	if req.Enabled {
		key := req.TemplateKey
		if key == "" {
			key = pages.DefaultTemplateKey
		}
		resp.TemplateKey = key
	}
	c.JSON(http.StatusOK, resp)
}

// GET /sites/:subdomain (public)
func GetPublicSite(c *gin.Context) {
	subdomain := c.Param("subdomain")
	path := "/sites/" + subdomain

	if cached, ok := rendercache.Pages.Get(path); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	var biz business.Business
	if err := database.DB.First(&biz, "subdomain = ? AND is_active = ?", subdomain, true).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	cfg, err := pages.GetConfig(database.DB, biz.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	doc, useCustom := pages.ResolvePublicConfig(&biz, cfg)
	resp := PublicSiteResponse{
		Subdomain: biz.Subdomain,
		Business: PublicBusinessDTO{
			Name:         biz.Name,
			Category:     biz.Category,
			Description:  biz.Description,
			Phone:        biz.Phone,
			Email:        biz.Email,
			Address:      biz.Address,
			City:         biz.City,
			Wilaya:       biz.Wilaya,
			Facebook:     biz.Facebook,
			Instagram:    biz.Instagram,
			TikTok:       biz.TikTok,
			YouTube:      biz.YouTube,
			OpeningHours: biz.OpeningHours,
			HeroImage:    biz.HeroImage,
		},
		UseCustomPage: useCustom,
		Config:        doc,
	}

	rendercache.Pages.Set(path, resp)
	c.JSON(http.StatusOK, resp)
}

func unmarshalDocument(raw json.RawMessage) *pages.ConfigDocument {
	if len(raw) == 0 {
		return nil
	}
	var doc pages.ConfigDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	return &doc
}
