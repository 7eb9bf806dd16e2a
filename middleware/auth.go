package middleware

import (
	"net/http"

	"github.com/rishen2486/wheels-up-booking-suite/utils"

	"github.com/gin-gonic/gin"
)

const ContextUserID = "userId"

// RequireAuth rejects requests without a valid bearer token and puts
// the user id in the context. Scope resolution (superuser or not)
// happens against the profiles table per request, never from the token.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.ParseAuth(c.GetHeader("Authorization"), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// OptionalAuth sets the user id when a valid token is present and lets
// the request through either way. Booking forms accept guests.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth := c.GetHeader("Authorization"); auth != "" {
			if userID, err := utils.ParseAuth(auth, secret); err == nil {
				c.Set(ContextUserID, userID)
			}
		}
		c.Next()
	}
}

// UserID pulls the authenticated user id out of the context.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}
