package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/tournament_portal/internal/model"
)

const sessionKey = "session"

// TokenParser verifies a bearer token.
type TokenParser interface {
	Parse(token string) (model.Session, error)
}

// RequireSession rejects requests without a valid "Authorization: Bearer"
// session token and stores the session for handlers.
func RequireSession(parser TokenParser, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing or invalid authorization header")
			return
		}

		s, err := parser.Parse(strings.TrimSpace(token))
		if err != nil {
			logger.Debugw("Rejected session token", "error", err, "path", c.Request.URL.Path)
			abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "session expired or invalid")
			return
		}

		c.Set(sessionKey, s)
		c.Next()
	}
}

// RequirePasswordChanged blocks sessions flagged for a forced password
// change. Mount it after RequireSession.
func RequirePasswordChanged() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s, ok := SessionFrom(c); ok && s.MustChangePassword {
			abort(c, http.StatusForbidden, "PASSWORD_CHANGE_REQUIRED", "password must be changed before continuing")
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session stored by RequireSession.
func SessionFrom(c *gin.Context) (model.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return model.Session{}, false
	}
	s, ok := v.(model.Session)
	return s, ok
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
