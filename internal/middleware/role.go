package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"staykedarnath/internal/pkg/response"
)

// RoleResolver looks up the caller's effective role. Admin claims are
// cross-checked against the allow-list table, so a stale token alone never
// grants admin routes.
type RoleResolver interface {
	ResolveRole(ctx context.Context, userID int64, email string) (string, error)
}

func RequireRole(resolver RoleResolver, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		email := c.GetString("email")
		if userID == 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		role, err := resolver.ResolveRole(c.Request.Context(), userID, email)
		if err != nil {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Could not resolve role")
			c.Abort()
			return
		}
		if role != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Set("role", role)
		c.Next()
	}
}

// AdminOnly requires the resolved admin role.
func AdminOnly(resolver RoleResolver) gin.HandlerFunc {
	return RequireRole(resolver, "admin")
}
