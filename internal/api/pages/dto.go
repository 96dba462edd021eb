package pagesapi

import (
	"time"

	"dzairbox/internal/domain/pages"
)

type TemplateDTO struct {
	Key              string   `json:"key"`
	Name             string   `json:"name"`
	SidebarPosition  string   `json:"sidebar_position,omitempty"`
	RequiredSections []string `json:"required_sections"`
	OptionalSections []string `json:"optional_sections"`
}

type GetTemplatesResponse struct {
	Templates []TemplateDTO `json:"templates"`
}

type GetTemplateResponse struct {
	Template TemplateDTO          `json:"template"`
	Default  pages.ConfigDocument `json:"default_config"`
}

type GetConfigResponse struct {
	HasConfig     bool                  `json:"has_config"`
	Config        *pages.ConfigDocument `json:"config,omitempty"`
	Draft         *pages.ConfigDocument `json:"draft,omitempty"`
	ConfigVersion int                   `json:"config_version"`
	PublishedAt   *time.Time            `json:"published_at,omitempty"`
	UseCustomPage bool                  `json:"use_custom_page"`
}

type SaveConfigRequest struct {
	Publish bool                 `json:"publish"`
	Config  pages.ConfigDocument `json:"config" binding:"required"`
}

type SaveConfigResponse struct {
	Success   bool `json:"success"`
	Published bool `json:"published"`
	ConfigID  uint `json:"config_id"`
}

type ActivateRequest struct {
	Enabled     bool   `json:"enabled"`
	TemplateKey string `json:"template_key"`
}

type ActivateResponse struct {
	Success     bool   `json:"success"`
	Enabled     bool   `json:"enabled"`
	TemplateKey string `json:"template_key,omitempty"`
}

// PublicBusinessDTO is the legacy-render subset of business data that
// ships with every public page, templated or not.
type PublicBusinessDTO struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Description  string  `json:"description,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	Email        string  `json:"email,omitempty"`
	Address      string  `json:"address,omitempty"`
	City         string  `json:"city,omitempty"`
	Wilaya       string  `json:"wilaya,omitempty"`
	Facebook     string  `json:"facebook,omitempty"`
	Instagram    string  `json:"instagram,omitempty"`
	TikTok       string  `json:"tiktok,omitempty"`
	YouTube      string  `json:"youtube,omitempty"`
	OpeningHours string  `json:"opening_hours,omitempty"`
	HeroImage    *string `json:"hero_image,omitempty"`
}

type PublicSiteResponse struct {
	Subdomain     string                `json:"subdomain"`
	Business      PublicBusinessDTO     `json:"business"`
	UseCustomPage bool                  `json:"use_custom_page"`
	Config        *pages.ConfigDocument `json:"config"`
}
