package users

import (
	"dzairbox/internal/domain/business"
	"dzairbox/internal/domain/plans"
	"dzairbox/internal/domain/users"
	"dzairbox/internal/infra/stripe"
)

func BuildPlanDTO(p *plans.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:            p.ID,
		Key:           p.Name,
		Tier:          plans.PlanTier(p),
		Interval:      p.Interval,
		PriceDZD:      p.PriceDZD,
		StripePriceID: p.StripePriceID,
	}
}

func BuildSubscriptionDTO(u users.User) *SubscriptionDTO {
	if u.SubscriptionId == nil || *u.SubscriptionId == "" {
		return nil
	}
	return &SubscriptionDTO{
		Status:               stripe.NormalizeStripeStatus(u.StripeSubscriptionStatus),
		StartsAt:             u.SubscriptionStart,
		CurrentPeriodEnd:     u.CurrentPeriodEnd,
		StripeSubscriptionID: u.SubscriptionId,
	}
}

func BuildBusinessDTOs(list []business.Business) []BusinessDTO {
	out := make([]BusinessDTO, 0, len(list))
	for i := range list {
		b := &list[i]
		out = append(out, BusinessDTO{
			ID:            b.ID,
			Name:          b.Name,
			Category:      b.Category,
			Subdomain:     b.Subdomain,
			PublicURL:     b.PublicURL(),
			IsActive:      b.IsActive,
			UseCustomPage: b.UseCustomPage,
			CustomDomain:  b.CustomDomain,
		})
	}
	return out
}
