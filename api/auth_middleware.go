package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pitchside/turf-booking-backend/user"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")

	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:]
	}

	return ""
}

// Auth requires a valid bearer token and attaches the authenticated user to
// the request context.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		if len(token) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		authUser, err := user.ParseToken(token, secret)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("user", authUser)
	}
}

// OptionalAuth attaches the authenticated user when a valid token is present
// but lets anonymous requests through. Routes that only tailor their response
// to the requester use this.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		if len(token) == 0 {
			return
		}

		if authUser, err := user.ParseToken(token, secret); err == nil {
			c.Set("user", authUser)
		}
	}
}

// OwnerOnly rejects requests from accounts without the owner role. Must run
// after Auth.
func OwnerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		authUser := c.MustGet("user").(user.AuthUser)

		if authUser.Role != user.RoleOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}

// currentUser returns the authenticated user, if any.
func currentUser(c *gin.Context) (user.AuthUser, bool) {
	value, exists := c.Get("user")

	if !exists {
		return user.AuthUser{}, false
	}

	authUser, ok := value.(user.AuthUser)

	return authUser, ok
}
