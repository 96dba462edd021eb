package chatapi

import (
	"encoding/json"
	"net/http"

	"dzairbox/database"
	chatdomain "dzairbox/internal/chat/domain"
	"dzairbox/internal/chat/infra"
	"dzairbox/internal/chat/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /onboarding/chat (auth)
func OnboardingChat(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req chatdomain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := loadOrCreateSession(userID, req.SessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load onboarding session"})
		return
	}

	var known chatdomain.ExtractedBusiness
	if len(session.Data) > 0 {
		if err := json.Unmarshal(session.Data, &known); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Corrupt onboarding session"})
			return
		}
	}

	svc := service.NewOnboardingService(infra.NewChatAgentClient())
	reply, err := svc.ProcessMessage(c.Request.Context(), &known, req.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant unavailable", "details": err.Error()})
		return
	}

	raw, err := json.Marshal(known)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store session"})
		return
	}
	if err := database.DB.Model(&chatdomain.OnboardingSession{}).
		Where("id = ?", session.ID).
		Update("data", json.RawMessage(raw)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store session"})
		return
	}

	c.JSON(http.StatusOK, chatdomain.ChatResponse{
		SessionID: session.ID,
		Reply:     reply,
		Business:  known,
		Complete:  known.IsComplete(),
	})
}

func loadOrCreateSession(userID uint, sessionID string) (*chatdomain.OnboardingSession, error) {
	if sessionID != "" {
		var existing chatdomain.OnboardingSession
		err := database.DB.First(&existing, "id = ? AND user_id = ?", sessionID, userID).Error
		if err == nil {
			return &existing, nil
		}
		// unknown/foreign session id: fall through and start fresh
	}

	session := chatdomain.OnboardingSession{
		ID:     uuid.NewString(),
		UserID: userID,
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}
