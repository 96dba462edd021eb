package domain

import (
	"encoding/json"
	"time"
)

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

type ChatResponse struct {
	SessionID string            `json:"session_id"`
	Reply     string            `json:"reply"`
	Business  ExtractedBusiness `json:"business"`
	Complete  bool              `json:"complete"`
}

// ExtractedBusiness is the structured data the LLM agent pulls out of
// the conversation, accumulated across turns.
type ExtractedBusiness struct {
	Name        string `json:"name,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Wilaya      string `json:"wilaya,omitempty"`
}

// Merge overlays non-empty fields from a newer extraction. Later turns
// win; empty fields never erase earlier answers.
func (e *ExtractedBusiness) Merge(in ExtractedBusiness) {
	if in.Name != "" {
		e.Name = in.Name
	}
	if in.Category != "" {
		e.Category = in.Category
	}
	if in.Description != "" {
		e.Description = in.Description
	}
	if in.Phone != "" {
		e.Phone = in.Phone
	}
	if in.Email != "" {
		e.Email = in.Email
	}
	if in.Address != "" {
		e.Address = in.Address
	}
	if in.City != "" {
		e.City = in.City
	}
	if in.Wilaya != "" {
		e.Wilaya = in.Wilaya
	}
}

// IsComplete reports whether enough data exists to prefill the
// business creation form.
func (e ExtractedBusiness) IsComplete() bool {
	return e.Name != "" && e.Category != "" && e.Phone != "" && e.City != ""
}

// OnboardingSession persists the accumulated extraction between turns.
type OnboardingSession struct {
	ID     string `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`

	Data json.RawMessage `gorm:"type:jsonb" json:"data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Agent wire contract (external LLM service).

type AgentRequest struct {
	Message string            `json:"message"`
	Known   ExtractedBusiness `json:"known"`
}

type AgentResponse struct {
	Reply string `json:"reply"`
}
