package access

import (
	"time"

	"dzairbox/internal/domain/users"
	"dzairbox/internal/infra/stripe"
)

// ComputeAccessState derives the effective premium state of an owner
// account from its Stripe subscription fields.
func ComputeAccessState(now time.Time, u users.User) AccessState {
	// No subscription at all
	if u.SubscriptionId == nil || *u.SubscriptionId == "" {
		return AccessFree
	}

	switch stripe.NormalizeStripeStatus(u.StripeSubscriptionStatus) {
	case "active", "trialing":
		return AccessActive

	case "past_due":
		return AccessPastDue

	case "canceled":
		// Paid-through access until the end of the billing period.
		if u.CurrentPeriodEnd != nil && now.Before(*u.CurrentPeriodEnd) {
			return AccessActive
		}
		return AccessExpired

	default:
		return AccessExpired
	}
}
