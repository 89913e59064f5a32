package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/restomart/restomart/internal/audit"
	"github.com/restomart/restomart/internal/domain/model"
	pkgAuth "github.com/restomart/restomart/internal/pkg/auth"
)

const (
	// ActorContextKey is a gin context key for the authenticated account identifier.
	ActorContextKey = "actorID"
	// RoleContextKey is a gin context key for the authenticated account role.
	RoleContextKey = "actorRole"

	authCookieName = "restomart_token"
)

// TokenParser validates auth tokens and yields the actor id and role.
type TokenParser interface {
	ParseToken(token string) (int64, model.Role, error)
}

// AuthRequired ensures the caller is authenticated. On success the actor is
// bound to the request context, so audit stamping downstream sees it for
// exactly this request and nothing else.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		actorID, role, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(ActorContextKey, actorID)
		c.Set(RoleContextKey, role)
		c.Request = c.Request.WithContext(audit.WithActor(c.Request.Context(), actorID))
		c.Next()
	}
}

// RequireRole gates a route group to one role. Must run after AuthRequired.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(RoleContextKey)
		if !ok || val.(model.Role) != role {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
