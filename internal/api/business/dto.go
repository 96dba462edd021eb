package businessapi

type CreateBusinessRequest struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Description  string `json:"description"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Wilaya       string `json:"wilaya"`
	Facebook     string `json:"facebook"`
	Instagram    string `json:"instagram"`
	TikTok       string `json:"tiktok"`
	YouTube      string `json:"youtube"`
	OpeningHours string `json:"opening_hours"`
}

// UpdateBusinessRequest uses pointers so absent fields stay untouched.
// Subdomain and moderation status are deliberately not editable here.
type UpdateBusinessRequest struct {
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	Description  *string `json:"description"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Wilaya       *string `json:"wilaya"`
	Facebook     *string `json:"facebook"`
	Instagram    *string `json:"instagram"`
	TikTok       *string `json:"tiktok"`
	YouTube      *string `json:"youtube"`
	OpeningHours *string `json:"opening_hours"`
}

type SetCustomDomainRequest struct {
	// Empty string detaches the current custom domain.
	Domain string `json:"domain"`
}
