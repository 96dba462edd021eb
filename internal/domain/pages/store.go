package pages

import (
	"encoding/json"
	"time"

	"dzairbox/internal/domain/business"

	"gorm.io/gorm"
)

// Invalidator drops cached public renders. Satisfied by the render
// cache; tests pass a recording fake.
type Invalidator interface {
	Invalidate(path string)
}

// GetConfig loads the config row of a business, or nil when the
// business never touched the customization system.
//
// IMPORTANT: pass db in, do NOT import dzairbox/database here (avoids import cycle).
func GetConfig(db *gorm.DB, businessID uint) (*BusinessPageConfig, error) {
	var cfg BusinessPageConfig
	err := db.First(&cfg, "business_id = ?", businessID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig validates the document and writes it into the draft slot,
// or into the published slot when publish is true. Draft and published
// documents are independent: saving a draft never touches Config or
// PublishedAt, and publishing accepts a document that was never a
// draft.
//
// Both paths keep the Business row in sync inside the same
// transaction: TemplateID tracks the most recently saved key, and
// HeroImage mirrors hero.backgroundImage (cleared when absent).
// Nothing is written when validation fails.
func SaveConfig(db *gorm.DB, cache Invalidator, biz *business.Business, doc ConfigDocument, publish bool) (*BusinessPageConfig, error) {
	normalized, verr := Validate(doc)
	if verr != nil {
		return nil, verr
	}

	raw, err := json.Marshal(normalized)
	if err != nil {
		return nil, err
	}

	var cfg BusinessPageConfig
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(BusinessPageConfig{BusinessID: biz.ID}).
			FirstOrCreate(&cfg).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"config_version": normalized.ConfigVersion,
		}
		if publish {
			now := time.Now()
			updates["config"] = json.RawMessage(raw)
			updates["published_at"] = now
			cfg.Config = raw
			cfg.PublishedAt = &now
		} else {
			updates["draft"] = json.RawMessage(raw)
			cfg.Draft = raw
		}
		cfg.ConfigVersion = normalized.ConfigVersion

		if err := tx.Model(&BusinessPageConfig{}).
			Where("id = ?", cfg.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		return syncBusinessRow(tx, biz, normalized)
	})
	if err != nil {
		return nil, err
	}

	if publish && cache != nil {
		cache.Invalidate(biz.PublicPath())
	}
	return &cfg, nil
}

// Activate flips the custom-page system on or off. Enabling resolves
// the template (defaulting to sidebar-right) and lazily seeds an
// unpublished default document so the editor has a valid starting
// point. Disabling only clears the flag; the config row stays.
func Activate(db *gorm.DB, cache Invalidator, biz *business.Business, enabled bool, templateKey string) error {
	if !enabled {
		if err := db.Model(&business.Business{}).
			Where("id = ?", biz.ID).
			Update("use_custom_page", false).Error; err != nil {
			return err
		}
		biz.UseCustomPage = false
		if cache != nil {
			cache.Invalidate(biz.PublicPath())
		}
		return nil
	}

	if templateKey == "" {
		templateKey = DefaultTemplateKey
	}

	seed, ok := DefaultDocument(templateKey)
	if !ok {
		return ErrTemplateNotFound
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		tmpl, err := activeTemplate(tx, templateKey)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&BusinessPageConfig{}).
			Where("business_id = ?", biz.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			raw, err := json.Marshal(seed)
			if err != nil {
				return err
			}
			cfg := BusinessPageConfig{
				BusinessID:    biz.ID,
				Config:        raw,
				ConfigVersion: seed.ConfigVersion,
				// PublishedAt stays nil: the seed is a starting point,
				// not a published page.
			}
			if err := tx.Create(&cfg).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&business.Business{}).
			Where("id = ?", biz.ID).
			Updates(map[string]interface{}{
				"use_custom_page": true,
				"template_id":     tmpl.ID,
			}).Error; err != nil {
			return err
		}
		biz.UseCustomPage = true
		biz.TemplateID = &tmpl.ID
		return nil
	})
	if err != nil {
		return err
	}

	if cache != nil {
		cache.Invalidate(biz.PublicPath())
	}
	return nil
}

// ResolvePublicConfig is the public read contract: the custom page is
// served only when the system is enabled AND a published document
// exists. A draft alone never leaks to visitors; callers fall back to
// the legacy rendering.
func ResolvePublicConfig(biz *business.Business, cfg *BusinessPageConfig) (*ConfigDocument, bool) {
	if !biz.UseCustomPage || cfg == nil || cfg.PublishedAt == nil || len(cfg.Config) == 0 {
		return nil, false
	}

	var doc ConfigDocument
	if err := json.Unmarshal(cfg.Config, &doc); err != nil {
		return nil, false
	}
	return &doc, true
}

func syncBusinessRow(tx *gorm.DB, biz *business.Business, doc ConfigDocument) error {
	tmpl, err := activeTemplate(tx, doc.TemplateKey)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if biz.TemplateID == nil || *biz.TemplateID != tmpl.ID {
		updates["template_id"] = tmpl.ID
		biz.TemplateID = &tmpl.ID
	}

	// HeroImage always mirrors the most recently saved document,
	// draft or published; absent clears it.
	updates["hero_image"] = doc.Hero.BackgroundImage
	biz.HeroImage = doc.Hero.BackgroundImage

	return tx.Model(&business.Business{}).
		Where("id = ?", biz.ID).
		Updates(updates).Error
}

func activeTemplate(tx *gorm.DB, key string) (*Template, error) {
	var tmpl Template
	err := tx.First(&tmpl, "key = ? AND active = ?", key, true).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}
