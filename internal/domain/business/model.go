package business

import (
	"time"

	"dzairbox/config"
)

// Business is a local-service listing owned by a user. IsActive is the
// admin moderation flag; UseCustomPage toggles the template system for
// the public page independently of moderation.
type Business struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Category    string `gorm:"not null;index" json:"category"`
	Description string `json:"description"`

	Subdomain string `gorm:"not null;uniqueIndex" json:"subdomain"`

	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Wilaya  string `json:"wilaya"`

	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	YouTube   string `json:"youtube,omitempty"`

	// Opening hours as free-form text per day, edited by the owner.
	OpeningHours string `json:"opening_hours,omitempty"`

	TemplateID    *uint   `gorm:"index" json:"template_id,omitempty"`
	UseCustomPage bool    `gorm:"not null;default:false" json:"use_custom_page"`
	HeroImage     *string `json:"hero_image,omitempty"`

	IsActive bool `gorm:"not null;default:false;index" json:"is_active"`

	// Premium features (subscription-gated).
	CustomDomain  *string    `gorm:"uniqueIndex" json:"custom_domain,omitempty"`
	FeaturedUntil *time.Time `json:"featured_until,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicPath is the cacheable path of the business's public page.
func (b *Business) PublicPath() string {
	return "/sites/" + b.Subdomain
}

// PublicURL builds the subdomain URL served to visitors.
// Example: "salon-amel" -> "https://salon-amel.dzairbox.dz"
func (b *Business) PublicURL() string {
	return "https://" + b.Subdomain + "." + config.BASE_DOMAIN
}
