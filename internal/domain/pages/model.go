package pages

import (
	"encoding/json"
	"time"
)

// Template is the persisted mirror of a catalog entry. Rows are seeded
// at startup and upserted by key, never patched, so the validation
// rules a key implies cannot drift while documents reference it.
type Template struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Key     string `gorm:"not null;uniqueIndex" json:"key"`
	Name    string `gorm:"not null" json:"name"`
	Version int    `gorm:"not null;default:1" json:"version"`
	Active  bool   `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BusinessPageConfig holds the two independent document slots of a
// business page: the published document served publicly and the
// in-progress draft visible to the owner only. PublishedAt being set is
// the authoritative signal that Config drives public rendering.
type BusinessPageConfig struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"not null;uniqueIndex" json:"business_id"`

	Config json.RawMessage `gorm:"type:jsonb" json:"config,omitempty"`
	Draft  json.RawMessage `gorm:"type:jsonb" json:"draft,omitempty"`

	ConfigVersion int        `gorm:"not null;default:1" json:"config_version"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
