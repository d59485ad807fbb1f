package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/you/tradeops/domain"
)

// Context keys set for downstream handlers.
const (
	ContextUserKey      = "user"
	ContextUserIDKey    = "user_id"
	ContextPrincipalKey = "principal"
)

// AuthMiddleware guards routes with a bearer token. Every failure mode
// (missing header, bad format, expired, bad signature, unknown subject)
// collapses into the same 401 so the response leaks nothing about which
// check failed.
func AuthMiddleware(authSvc domain.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
			unauthorized(c)
			return
		}

		user, err := authSvc.Authenticate(c.Request.Context(), tokenParts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextPrincipalKey, user.Email)

		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing bearer token"})
	c.Abort()
}

// CurrentUser returns the authenticated user placed in the context by
// AuthMiddleware.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
