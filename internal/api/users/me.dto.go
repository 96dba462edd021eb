package users

import "time"

type MeResponse struct {
	User       UserDTO       `json:"user"`
	Billing    BillingDTO    `json:"billing"`
	Access     AccessDTO     `json:"access"`
	Businesses []BusinessDTO `json:"businesses"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Lastname   string  `json:"lastname"`
	Tel        *string `json:"tel"`
	Role       string  `json:"role"`
	IsVerified bool    `json:"is_verified"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Plan         *PlanDTO         `json:"plan"`
	Subscription *SubscriptionDTO `json:"subscription"`
}

type PlanDTO struct {
	ID            uint    `json:"id"`
	Key           string  `json:"key"`
	Tier          string  `json:"tier"`
	Interval      string  `json:"interval"`
	PriceDZD      float64 `json:"price_dzd"`
	StripePriceID string  `json:"stripe_price_id"`
}

type SubscriptionDTO struct {
	Status               string     `json:"status"`
	StartsAt             *time.Time `json:"starts_at"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	State        string   `json:"state"` // free|active|past_due|expired
	Capabilities []string `json:"capabilities"`
}

/* ---------- BUSINESSES ---------- */

type BusinessDTO struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Subdomain     string  `json:"subdomain"`
	PublicURL     string  `json:"public_url"`
	IsActive      bool    `json:"is_active"`
	UseCustomPage bool    `json:"use_custom_page"`
	CustomDomain  *string `json:"custom_domain"`
}
