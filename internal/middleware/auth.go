package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "staykedarnath/internal/pkg/jwt"
	"staykedarnath/internal/pkg/response"
)

// Auth validates the bearer token and stores the caller's identity on the
// context.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, jwt)
		if !ok {
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// OptionalAuth resolves the acting user when a valid bearer token is present
// and lets anonymous requests through untouched. Used by order creation.
func OptionalAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			if claims, err := jwt.ValidateToken(tokenStr); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("email", claims.Email)
				c.Set("role", claims.Role)
			}
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, jwt *jwtsvc.Service) (*jwtsvc.Claims, bool) {
	h := c.GetHeader("Authorization")
	if h == "" {
		abortUnauthorized(c, "Missing Authorization header")
		return nil, false
	}
	if !strings.HasPrefix(h, "Bearer ") {
		abortUnauthorized(c, "Invalid Authorization header")
		return nil, false
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if tokenStr == "" {
		abortUnauthorized(c, "Empty token")
		return nil, false
	}
	claims, err := jwt.ValidateToken(tokenStr)
	if err != nil {
		abortUnauthorized(c, "Invalid token")
		return nil, false
	}
	return claims, true
}

func abortUnauthorized(c *gin.Context, msg string) {
	response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", msg)
	c.Abort()
}
