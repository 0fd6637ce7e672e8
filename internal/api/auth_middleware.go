package api

import (
	"miniblog/internal/authz"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const currentActorContextKey = "current-actor"

// AuthMiddleware validates the Bearer token and stores the acting identity
// in the request context. The claims are trusted as-is for the token's
// lifetime; the role is not re-derived from the store per request, so a
// mid-session role change only takes effect after re-authentication.
func (h *HTTPHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "missing authorization header",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "invalid authorization header format",
			})
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "missing bearer token",
			})
			return
		}

		claims, err := h.authManager.ParseToken(tokenString)
		if err != nil {
			logrus.WithError(err).Warn("failed to parse jwt token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeSessionExpired,
				Message: "token invalid or expired",
			})
			return
		}

		actor := &authz.Actor{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     authz.ParseRole(claims.Role),
		}

		c.Set(currentActorContextKey, actor)
		c.Next()
	}
}

// RequireAdmin guards the admin-only route group.
func (h *HTTPHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := CurrentActor(c)
		if err := authz.RequireAdmin(actor); err != nil {
			c.Abort()
			DenialResponse(c, err)
			return
		}
		c.Next()
	}
}

// CurrentActor returns the authenticated identity of the request, or nil.
func CurrentActor(c *gin.Context) *authz.Actor {
	value, exists := c.Get(currentActorContextKey)
	if !exists {
		return nil
	}
	actor, ok := value.(*authz.Actor)
	if !ok {
		return nil
	}
	return actor
}
