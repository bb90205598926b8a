package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/keita-f/scrimmage/pkg/token"
)

const (
	// SessionCookieName is the http-only cookie carrying the session JWT.
	SessionCookieName = "auth_token"

	AuthUserIDKey    = "auth_user_id"
	AuthUserNameKey  = "auth_user_name"
	AuthUserEmailKey = "auth_user_email"
)

// AuthMiddleware authenticates the request from the session cookie, falling
// back to a bearer token for non-browser clients. Absent, expired or
// tampered credentials abort with 401; they are never treated as a server
// error.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := token.ValidateJWT(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set(AuthUserIDKey, claims.UserID)
		c.Set(AuthUserNameKey, claims.Name)
		c.Set(AuthUserEmailKey, claims.Email)
		c.Next()
	}
}

// OptionalAuth populates the context identity when a valid session is
// present but lets anonymous requests through. Used on listing endpoints
// that only scope results differently for signed-in users.
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := sessionToken(c); tokenString != "" {
			if claims, err := token.ValidateJWT(tokenString, jwtSecret); err == nil {
				c.Set(AuthUserIDKey, claims.UserID)
				c.Set(AuthUserNameKey, claims.Name)
				c.Set(AuthUserEmailKey, claims.Email)
			}
		}
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

// GetUserIDFromContext extracts the authenticated user's id from the Gin
// context. Client-supplied ids are never trusted; every mutating operation
// re-derives the actor from here.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	uid, ok := userID.(uint)
	if !ok {
		return 0, fmt.Errorf("user ID has unexpected type: %T", userID)
	}
	return uid, nil
}
