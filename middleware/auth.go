package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares.
const (
	ContextUserID         = "userID"
	ContextBookerOverride = "bookerOverride"
)

// FirebaseAuthMiddleware verifies the Firebase ID token in the Authorization
// header and stores the caller's subject id. When required is false an
// anonymous request passes through with no userID set (read-only routes
// show public data).
func FirebaseAuthMiddleware(authClient *auth.Client, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
				return
			}
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := authClient.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextUserID, token.UID)

		// Impersonation: acting as a specific booker suspends admin
		// privilege downstream.
		if override := c.GetHeader("X-Booker-Override"); override != "" {
			c.Set(ContextBookerOverride, override)
		}
		c.Next()
	}
}

// UserID returns the verified auth subject for this request, "" if none.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// BookerOverride returns the impersonation selection, "" if none.
func BookerOverride(c *gin.Context) string {
	return c.GetString(ContextBookerOverride)
}
