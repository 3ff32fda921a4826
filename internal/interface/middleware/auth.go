package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prakash-Banjade/smart-tutor/internal/session"
	"github.com/Prakash-Banjade/smart-tutor/pkg/helpers"
	"github.com/Prakash-Banjade/smart-tutor/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxSessionIDKey = "sessionID"
	CtxUserNameKey  = "userName"
	CtxUserEmailKey = "userEmail"
	CtxUserRoleKey  = "userRole"
)

// Auth validates the access token and restores the session record behind it.
// It sets userID, sessionID, userName and userRole in the Gin context on
// success.
func Auth(sessions *session.Service, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", err.Error())
			c.Abort()
			return
		}

		mgr := sessions.ManagerFor(claims.SessionID)
		u, err := mgr.Restore(c.Request.Context())
		if err != nil {
			response.Error[any](c, http.StatusServiceUnavailable, "session store unavailable", nil)
			c.Abort()
			return
		}
		if u == nil {
			response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxSessionIDKey, claims.SessionID)
		c.Set(CtxUserNameKey, u.Name)
		c.Set(CtxUserEmailKey, u.Email)
		c.Set(CtxUserRoleKey, string(u.Role))
		c.Next()
	}
}

// RequireRole rejects requests whose session role does not match. Must run
// after Auth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserRoleKey) != role {
			response.Error[any](c, http.StatusForbidden, "insufficient role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
