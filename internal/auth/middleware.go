package auth

import (
	"net/http"
	"realestate/server/internal/models"
	"strings"

	"github.com/gin-gonic/gin"
)

const userKey = "auth_user"

// UserLookup resolves the user a token was issued to
type UserLookup interface {
	GetUser(id int64) (models.User, bool)
}

// RequireUser rejects requests without a valid bearer token for an
// existing user. The user is stored on the context for CurrentUser.
func RequireUser(tokens *Manager, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, status, msg := authenticate(c, tokens, users)
		if status != 0 {
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// OptionalUser attaches the user when a valid token is present and lets
// anonymous requests through. A present but invalid token is still rejected.
func OptionalUser(tokens *Manager, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		user, status, msg := authenticate(c, tokens, users)
		if status != 0 {
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// RequireRole must run after RequireUser
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

func authenticate(c *gin.Context, tokens *Manager, users UserLookup) (models.User, int, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return models.User{}, http.StatusUnauthorized, "Authorization header is required"
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return models.User{}, http.StatusUnauthorized, "Invalid authorization header format"
	}

	claims, err := tokens.Parse(tokenParts[1])
	if err != nil {
		return models.User{}, http.StatusUnauthorized, "Invalid token"
	}

	user, ok := users.GetUser(claims.UserID)
	if !ok {
		return models.User{}, http.StatusUnauthorized, "User no longer exists"
	}
	return user, 0, ""
}
