package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inkstone-blog/core/internal/models"
	"github.com/inkstone-blog/core/internal/pkg/jwt"
	"github.com/inkstone-blog/core/internal/pkg/response"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "user_email"
	ContextKeyRole   = "user_role"
)

// Auth enforces bearer-token authentication on admin-scoped routes.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(ExtractToken(c))
		if err != nil {
			response.Unauthorized(c, "Unauthorized")
			return
		}
		c.Set(ContextKeyUserID, claims.Subject)
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}

// AdminOnly requires the admin role on top of Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentRole(c) != models.RoleAdmin {
			response.Unauthorized(c, "Admin access required")
			return
		}
		c.Next()
	}
}

// OptionalAuth sets the user identity if a valid token is present, but does
// not block the request.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := jwt.Parse(ExtractToken(c)); err == nil {
			c.Set(ContextKeyUserID, claims.Subject)
			c.Set(ContextKeyEmail, claims.Email)
			c.Set(ContextKeyRole, claims.Role)
		}
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentRole extracts the authenticated user role from context.
func CurrentRole(c *gin.Context) string {
	v, _ := c.Get(ContextKeyRole)
	role, _ := v.(string)
	return role
}

// IsAuthenticated returns true if the request carries a valid token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != ""
}

// ExtractToken pulls the bearer token from the Authorization header.
func ExtractToken(c *gin.Context) string {
	token := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
