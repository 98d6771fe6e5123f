package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"rentacar/internal/handler/httperr"
	"rentacar/internal/infra/store"
	"rentacar/internal/pkg/cookie"
	"rentacar/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the session cookie (or bearer token) into the
// live server-side session.
type AuthMiddleware struct {
	auth usecase.AuthUseCase
}

const ctxSessionKey = "session"

func NewAuthMiddleware(auth usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth rejects requests without a resolvable session.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrSessionNotFound, "Please log in to continue", nil)
			return
		}

		sess, err := m.auth.SessionFromToken(c.Request.Context(), token)
		if err != nil {
			slog.Warn("session resolution failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session", nil)
			return
		}

		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

// OptionalAuth attaches the session when a valid token is present but never
// aborts. The booking wizard is usable logged-out until confirmation.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		sess, err := m.auth.SessionFromToken(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetSession returns the resolved session, if any.
func GetSession(c *gin.Context) (store.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return store.Session{}, false
	}
	sess, ok := v.(store.Session)
	return sess, ok
}
