package pagesapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dzairbox/database"
	"dzairbox/internal/domain/business"
	"dzairbox/internal/domain/pages"
	"dzairbox/internal/infra/rendercache"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&business.Business{},
		&pages.Template{},
		&pages.BusinessPageConfig{},
	))
	require.NoError(t, database.SeedTemplates(db))
	database.DB = db

	r := gin.New()
	r.GET("/templates", ListTemplates)
	r.GET("/templates/:key", GetTemplate)
	r.GET("/sites/:subdomain", GetPublicSite)
	return r
}

func publishedConfig(t *testing.T, businessID uint) {
	t.Helper()
	doc, ok := pages.DefaultDocument(pages.TemplateSidebarRight)
	require.True(t, ok)
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, database.DB.Create(&pages.BusinessPageConfig{
		BusinessID:    businessID,
		Config:        raw,
		ConfigVersion: doc.ConfigVersion,
		PublishedAt:   &now,
	}).Error)
}

func TestGetPublicSitePublished(t *testing.T) {
	r := setupTestRouter(t)

	biz := business.Business{
		UserID:        1,
		Name:          "Salon Amel",
		Category:      "beaute",
		Subdomain:     "salon-amel",
		City:          "Alger",
		IsActive:      true,
		UseCustomPage: true,
	}
	require.NoError(t, database.DB.Create(&biz).Error)
	publishedConfig(t, biz.ID)
	rendercache.Pages.Invalidate("/sites/salon-amel")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sites/salon-amel", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp PublicSiteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "salon-amel", resp.Subdomain)
	require.Equal(t, "Salon Amel", resp.Business.Name)
	require.True(t, resp.UseCustomPage)
	require.NotNil(t, resp.Config)
	require.Equal(t, pages.TemplateSidebarRight, resp.Config.TemplateKey)

	// second hit is served from the render cache
	_, cached := rendercache.Pages.Get("/sites/salon-amel")
	require.True(t, cached)
}

func TestGetPublicSiteUnmoderated(t *testing.T) {
	r := setupTestRouter(t)

	require.NoError(t, database.DB.Create(&business.Business{
		UserID:    1,
		Name:      "Kiosque Didouche",
		Category:  "commerce",
		Subdomain: "kiosque-didouche",
		IsActive:  false,
	}).Error)
	rendercache.Pages.Invalidate("/sites/kiosque-didouche")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sites/kiosque-didouche", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPublicSiteDraftOnlyFallsBack(t *testing.T) {
	r := setupTestRouter(t)

	biz := business.Business{
		UserID:        1,
		Name:          "Restaurant El Djazair",
		Category:      "restauration",
		Subdomain:     "restaurant-el-djazair",
		IsActive:      true,
		UseCustomPage: true,
	}
	require.NoError(t, database.DB.Create(&biz).Error)

	doc, _ := pages.DefaultDocument(pages.TemplateSidebarLeft)
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, database.DB.Create(&pages.BusinessPageConfig{
		BusinessID:    biz.ID,
		Draft:         raw,
		ConfigVersion: doc.ConfigVersion,
	}).Error)
	rendercache.Pages.Invalidate("/sites/restaurant-el-djazair")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sites/restaurant-el-djazair", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp PublicSiteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.UseCustomPage)
	require.Nil(t, resp.Config)
	require.Equal(t, "Restaurant El Djazair", resp.Business.Name)
}

func TestListTemplates(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp GetTemplatesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Templates, 3)

	keys := map[string]bool{}
	for _, tmpl := range resp.Templates {
		keys[tmpl.Key] = true
	}
	require.True(t, keys[pages.TemplateSidebarRight])
	require.True(t, keys[pages.TemplateSidebarLeft])
	require.True(t, keys[pages.TemplateHeroFull])
}

func TestGetTemplateDefault(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/templates/"+pages.TemplateHeroFull, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp GetTemplateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, pages.TemplateHeroFull, resp.Template.Key)
	require.Equal(t, pages.TemplateHeroFull, resp.Default.TemplateKey)
	require.Nil(t, resp.Default.Sidebar)
}

func TestGetTemplateUnknown(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/templates/mosaic", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
