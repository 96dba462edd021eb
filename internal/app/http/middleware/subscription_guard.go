package middleware

import (
	"net/http"
	"time"

	"dzairbox/database"
	"dzairbox/internal/domain/access"
	"dzairbox/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireActiveSubscription gates premium features (custom domain,
// featured listing) behind a paid subscription in good standing.
func RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		var user users.User

		if err := database.DB.Preload("Plan").Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Subscription not found or expired",
			})
			return
		}

		switch access.ComputeAccessState(time.Now(), user) {
		case access.AccessActive, access.AccessPastDue:
			c.Next()
		default:
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "An active subscription is required for this feature",
			})
		}
	}
}
