package pages

import (
	"encoding/json"
	"testing"

	"dzairbox/internal/domain/business"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCache struct {
	invalidated []string
}

func (f *fakeCache) Invalidate(path string) {
	f.invalidated = append(f.invalidated, path)
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&business.Business{},
		&Template{},
		&BusinessPageConfig{},
	))

	for i, key := range Keys() {
		desc, _ := Lookup(key)
		require.NoError(t, db.Create(&Template{
			ID:      uint(i + 1),
			Key:     desc.Key,
			Name:    desc.Name,
			Version: 1,
			Active:  true,
		}).Error)
	}

	return db
}

func testBusiness(t *testing.T, db *gorm.DB) *business.Business {
	t.Helper()

	biz := &business.Business{
		UserID:    1,
		Name:      "Salon Amel",
		Category:  "beaute",
		Subdomain: "salon-amel",
		IsActive:  true,
	}
	require.NoError(t, db.Create(biz).Error)
	return biz
}

func TestSaveDraftDoesNotTouchPublished(t *testing.T) {
	db := testDB(t)
	biz := testBusiness(t, db)
	cache := &fakeCache{}

	doc := validDoc(TemplateSidebarRight)
	cfg, err := SaveConfig(db, cache, biz, doc, false)
	require.NoError(t, err)
	require.NotNil(t, cfg.Draft)
	require.Nil(t, cfg.Config)
	require.Nil(t, cfg.PublishedAt)
	require.Empty(t, cache.invalidated, "saving a draft must not invalidate the public page")

	var stored BusinessPageConfig
	require.NoError(t, db.First(&stored, "business_id = ?", biz.ID).Error)
	require.Nil(t, stored.PublishedAt)
	require.Empty(t, stored.Config)
	require.NotEmpty(t, stored.Draft)
}

func TestPublishWithoutPriorDraft(t *testing.T) {
	db := testDB(t)
	biz := testBusiness(t, db)
	cache := &fakeCache{}

	doc := validDoc(TemplateSidebarLeft)
	cfg, err := SaveConfig(db, cache, biz, doc, true)
	require.NoError(t, err)
	require.NotNil(t, cfg.PublishedAt)
	require.NotEmpty(t, cfg.Config)
	require.Equal(t, []string{"/sites/salon-amel"}, cache.invalidated)

	var stored BusinessPageConfig
	require.NoError(t, db.First(&stored, "business_id = ?", biz.ID).Error)
	require.NotNil(t, stored.PublishedAt)
	require.Empty(t, stored.Draft, "publish must not fabricate a draft")
}

func TestHeroImageSync(t *testing.T) {
	db := testDB(t)
	biz := testBusiness(t, db)

	doc := validDoc(TemplateSidebarRight)
	doc.Hero.BackgroundImage = strPtr("https://cdn.example.com/y.png")
	_, err := SaveConfig(db, &fakeCache{}, biz, doc, true)
	require.NoError(t, err)

	var stored business.Business
	require.NoError(t, db.First(&stored, biz.ID).Error)
	require.NotNil(t, stored.HeroImage)
	require.Equal(t, "https://cdn.example.com/y.png", *stored.HeroImage)

	// Publishing without a background image clears the mirror.
	doc.Hero.BackgroundImage = nil
	_, err = SaveConfig(db, &fakeCache{}, biz, doc, true)
	require.NoError(t, err)

	require.NoError(t, db.First(&stored, biz.ID).Error)
	require.Nil(t, stored.HeroImage)
}

func TestTemplateIDTracksLatestSave(t *testing.T) {
	db := testDB(t)
	biz := testBusiness(t, db)

	_, err := SaveConfig(db, &fakeCache{}, biz, validDoc(TemplateSidebarRight), true)
	require.NoError(t, err)

	var right Template
	require.NoError(t, db.First(&right, "key = ?", TemplateSidebarRight).Error)
	var stored business.Business
	require.NoError(t, db.First(&stored, biz.ID).Error)
	require.NotNil(t, stored.TemplateID)
	require.Equal(t, right.ID, *stored.TemplateID)

	// A draft save with another template moves the assignment too.
	_, err = SaveConfig(db, &fakeCache{}, biz, validDoc(TemplateHeroFull), false)
	require.NoError(t, err)

	var hero Template
	require.NoError(t, db.First(&hero, "key = ?", TemplateHeroFull).Error)
	require.NoError(t, db.First(&stored, biz.ID).Error)
	require.Equal(t, hero.ID, *stored.TemplateID)
}

func TestInvalidDocumentWritesNothing(t *testing.T) {
	db := testDB(t)
	biz := testBusiness(t, db)
	cache := &fakeCache{}

	doc := validDoc(TemplateSidebarLeft)
	doc.Sidebar.Position = PositionRight // mismatched side

	_, err := SaveConfig(db, cache, biz, doc, true)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, KindTemplateConstraint, verr.Kind)

	var count int64
	require.NoError(t, db.Model(&BusinessPageConfig{}).Count(&count).Error)
	require.Zero(t, count, "validation failure must not touch the store")
	require.Empty(t, cache.invalidated)
}

func TestActivateSeedsDefaultUnpublished(t *testing.T) {
	db := testDB(t)
	biz := testBusiness(t, db)
	cache := &fakeCache{}

	require.NoError(t, Activate(db, cache, biz, true, ""))
	require.True(t, biz.UseCustomPage)
	require.Equal(t, []string{"/sites/salon-amel"}, cache.invalidated)

	cfg, err := GetConfig(db, biz.ID)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Nil(t, cfg.PublishedAt, "the activation seed is not auto-published")

	var doc ConfigDocument
	require.NoError(t, json.Unmarshal(cfg.Config, &doc))
	require.Equal(t, TemplateSidebarRight, doc.TemplateKey)
	require.Equal(t, 1, doc.ConfigVersion)
	require.NotNil(t, doc.Sidebar)
	require.Equal(t, PositionRight, doc.Sidebar.Position)
}

func TestActivateUnknownTemplate(t *testing.T) {
	db := testDB(t)
	biz := testBusiness(t, db)

	err := Activate(db, &fakeCache{}, biz, true, "three-columns")
	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestDeactivateKeepsConfigRow(t *testing.T) {
	db := testDB(t)
	biz := testBusiness(t, db)
	cache := &fakeCache{}

	require.NoError(t, Activate(db, cache, biz, true, TemplateHeroFull))
	require.NoError(t, Activate(db, cache, biz, false, ""))
	require.False(t, biz.UseCustomPage)

	cfg, err := GetConfig(db, biz.ID)
	require.NoError(t, err)
	require.NotNil(t, cfg, "disabling is reversible: the row survives")
	require.Len(t, cache.invalidated, 2)
}

func TestActivateExistingConfigNotReseeded(t *testing.T) {
	db := testDB(t)
	biz := testBusiness(t, db)

	_, err := SaveConfig(db, &fakeCache{}, biz, validDoc(TemplateSidebarLeft), true)
	require.NoError(t, err)

	require.NoError(t, Activate(db, &fakeCache{}, biz, true, TemplateSidebarLeft))

	cfg, err := GetConfig(db, biz.ID)
	require.NoError(t, err)
	require.NotNil(t, cfg.PublishedAt, "activation must not overwrite an existing config")
}

func TestResolvePublicConfigReadContract(t *testing.T) {
	db := testDB(t)
	biz := testBusiness(t, db)

	// Enabled but only a draft saved: public render falls back.
	require.NoError(t, Activate(db, &fakeCache{}, biz, true, TemplateSidebarRight))
	_, err := SaveConfig(db, &fakeCache{}, biz, validDoc(TemplateSidebarRight), false)
	require.NoError(t, err)

	cfg, err := GetConfig(db, biz.ID)
	require.NoError(t, err)
	_, ok := ResolvePublicConfig(biz, cfg)
	require.False(t, ok, "a draft alone must not be served publicly")

	// After publish the custom page is served.
	_, err = SaveConfig(db, &fakeCache{}, biz, validDoc(TemplateSidebarRight), true)
	require.NoError(t, err)

	cfg, err = GetConfig(db, biz.ID)
	require.NoError(t, err)
	doc, ok := ResolvePublicConfig(biz, cfg)
	require.True(t, ok)
	require.Equal(t, TemplateSidebarRight, doc.TemplateKey)

	// Disabled system ignores the published config.
	biz.UseCustomPage = false
	_, ok = ResolvePublicConfig(biz, cfg)
	require.False(t, ok)
}
