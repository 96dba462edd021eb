package plans

import "strings"

// Tier constants (single source of truth)
const (
	TierNone    = "none"
	TierGratuit = "gratuit"
	TierPro     = "pro"
	TierPremium = "premium"
)

// PlanTier returns the effective tier for a plan.
// Priority:
// 1. Explicit Tier stored in DB
// 2. Fallback inference by price (legacy safety net)
func PlanTier(p *Plan) string {
	if p == nil {
		return TierNone
	}

	tier := strings.ToLower(strings.TrimSpace(p.Tier))
	switch tier {
	case TierGratuit, TierPro, TierPremium:
		return tier
	}

	return inferTierFromPrice(p.PriceDZD)
}

// inferTierFromPrice exists ONLY as a backward-compatibility fallback
// for plans synced before the tier metadata existed.
func inferTierFromPrice(priceDZD float64) string {
	switch {
	case priceDZD >= 5000:
		return TierPremium
	case priceDZD >= 2000:
		return TierPro
	default:
		return TierGratuit
	}
}
