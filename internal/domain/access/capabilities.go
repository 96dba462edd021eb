package access

import (
	"dzairbox/internal/domain/plans"
)

func CapabilitiesFor(state AccessState, plan *plans.Plan) []string {
	base := []string{"listing", "custom_page"}

	if state != AccessActive && state != AccessPastDue {
		return base
	}

	switch plans.PlanTier(plan) {
	case plans.TierPro:
		return append(base, "featured_listing")
	case plans.TierPremium:
		return append(base, "featured_listing", "custom_domain")
	default:
		return base
	}
}
