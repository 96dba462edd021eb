package business

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

/*
	Subdomain helpers
	-----------------
	- Responsible ONLY for:
	  • slugifying business names
	  • finding a free subdomain (bounded retry)
	- No moderation logic, no page logic here
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// Subdomains that must never be claimed by a business.
var reservedSubdomains = map[string]bool{
	"www":   true,
	"api":   true,
	"admin": true,
	"app":   true,
	"mail":  true,
}

// maxSubdomainAttempts bounds the uniqueness retry loop.
const maxSubdomainAttempts = 20

// MakeSubdomain generates a URL-safe base slug from a business name.
// Example: "Salon Amel — Alger" -> "salon-amel-alger"
func MakeSubdomain(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" || reservedSubdomains[base] {
		base = "business"
	}
	return base
}

// EnsureUniqueSubdomain returns the base slug if free, otherwise tries
// numeric suffixes (base-2, base-3, ...) up to maxSubdomainAttempts.
func EnsureUniqueSubdomain(db *gorm.DB, name string) (string, error) {
	if db == nil {
		return "", fmt.Errorf("db is nil")
	}

	base := MakeSubdomain(name)

	for i := 1; i <= maxSubdomainAttempts; i++ {
		candidate := base
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}

		var count int64
		if err := db.Model(&Business{}).
			Where("subdomain = ?", candidate).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no free subdomain for %q after %d attempts", base, maxSubdomainAttempts)
}
