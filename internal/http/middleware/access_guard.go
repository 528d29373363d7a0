package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cheskazzzz/portal-master/domain"
)

// sessionKey is the gin context key the guard stores the SessionInfo under
const sessionKey = "session"

// AccessGuard authorizes requests: it validates the session cookie and
// enforces allowed-role lists, auditing every denial.
type AccessGuard struct {
	sessionSvc domain.SessionService
	roleDir    domain.RoleDirectory
	audit      domain.AuditService
	cookie     CookieConfig
}

// NewAccessGuard creates a new access guard
func NewAccessGuard(sessionSvc domain.SessionService, roleDir domain.RoleDirectory, audit domain.AuditService, cookie CookieConfig) *AccessGuard {
	return &AccessGuard{
		sessionSvc: sessionSvc,
		roleDir:    roleDir,
		audit:      audit,
		cookie:     cookie,
	}
}

// SessionFrom returns the validated session placed in the context by
// RequireAuth
func SessionFrom(c *gin.Context) (*domain.SessionInfo, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	info, ok := value.(*domain.SessionInfo)
	return info, ok
}

// RequireAuth rejects the request with 401 unless the session cookie
// holds a valid token. A stale cookie is cleared on the way out.
func (g *AccessGuard) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(g.cookie.Name)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		info, err := g.sessionSvc.Validate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrSessionNotFound),
				errors.Is(err, domain.ErrSessionExpired),
				errors.Is(err, domain.ErrUserInactive):
				ClearSessionCookie(c, g.cookie)
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			c.Abort()
			return
		}

		c.Set(sessionKey, info)
		c.Next()
	}
}

// RequireRole rejects the request with 403 unless the session's role
// name is in the allowed set. Every denial emits exactly one
// ACCESS_DENIED audit record before the failure is signaled. Must run
// after RequireAuth.
func (g *AccessGuard) RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, ok := SessionFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		roleName, err := g.roleDir.RoleName(c.Request.Context(), info.RoleID)
		if err != nil && !errors.Is(err, domain.ErrRoleNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}

		for _, name := range allowed {
			if roleName == name {
				c.Next()
				return
			}
		}

		g.audit.Record(c.Request.Context(), domain.AuditEvent{
			ActorID:   info.UserID,
			Action:    domain.ActionAccessDenied,
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Details: map[string]any{
				"attemptedRole": roleName,
				"requiredRoles": allowed,
			},
		})

		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		c.Abort()
	}
}
