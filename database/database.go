package database

import (
	"fmt"
	"log"
	"os"

	"dzairbox/internal/chat/domain"
	"dzairbox/internal/domain/billing"
	"dzairbox/internal/domain/business"
	"dzairbox/internal/domain/pages"
	"dzairbox/internal/domain/plans"
	"dzairbox/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&users.VerificationToken{},
		&plans.Plan{},
		&billing.Payment{},

		// directory
		&business.Business{},

		// pages
		&pages.Template{},
		&pages.BusinessPageConfig{},

		// onboarding chat
		&domain.OnboardingSession{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	if err := SeedTemplates(DB); err != nil {
		log.Fatal("Template seed error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}

// SeedTemplates mirrors the closed template catalog into the templates
// table. Upsert by key, full replacement: a template's row never
// drifts from its catalog descriptor.
func SeedTemplates(db *gorm.DB) error {
	for _, key := range pages.Keys() {
		desc, _ := pages.Lookup(key)

		var existing pages.Template
		err := db.First(&existing, "key = ?", desc.Key).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&pages.Template{
				Key:     desc.Key,
				Name:    desc.Name,
				Version: 1,
				Active:  true,
			}).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		existing.Name = desc.Name
		if err := db.Save(&existing).Error; err != nil {
			return err
		}
	}
	return nil
}
