package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"rental-storefront/internal/handler/httperr"
	"rental-storefront/internal/pkg/config"
	"rental-storefront/internal/pkg/cookie"
	"rental-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SessionMiddleware struct {
	sessions usecase.SessionUseCase
	cookie   config.CookieConfig
	logger   *slog.Logger
}

const (
	ctxSessionKey = "session"
	ctxUserIDKey  = "user_id"
	ctxRoleKey    = "user_role"
)

func NewSessionMiddleware(sessions usecase.SessionUseCase, cfg config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		cookie:   cfg.Cookie,
		logger:   logger,
	}
}

// SessionIDFromRequest reads the session id from the cookie, falling back to a bearer header.
func SessionIDFromRequest(c *gin.Context) string {
	if id := cookie.GetSessionID(c); id != "" {
		return id
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// Attach resolves the caller's session. Visitors without a usable session get
// a fresh anonymous one and a cookie for it.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := SessionIDFromRequest(c)

		if id != "" {
			info, err := m.sessions.Current(ctx, id)
			switch {
			case err == nil:
				SetSession(c, info)
				c.Next()
				return
			case errors.Is(err, usecase.ErrSessionNotFound), errors.Is(err, usecase.ErrSessionExpired):
				m.logger.Debug("replacing unusable session", slog.String("error", err.Error()))
			default:
				httperr.Abort(c, err)
				return
			}
		}

		info, err := m.sessions.CreateAnonymous(ctx)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		cookie.SetSessionCookie(c, m.cookie, info.ID, info.ExpiresAt)
		SetSession(c, info)
		c.Next()
	}
}

// RequireUser must run after Attach.
func (m *SessionMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		info, ok := GetSession(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
			return
		}
		if !info.State.Authenticated() {
			httperr.Abort(c, usecase.ErrNotAuthenticated)
			return
		}
		c.Next()
	}
}

func SetSession(c *gin.Context, info usecase.SessionInfo) {
	c.Set(ctxSessionKey, info)
	if u := info.State.User; u != nil {
		c.Set(ctxUserIDKey, u.ID())
		c.Set(ctxRoleKey, u.Role().String())
	} else {
		c.Set(ctxUserIDKey, "")
		c.Set(ctxRoleKey, "")
	}
}

func GetSession(c *gin.Context) (usecase.SessionInfo, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return usecase.SessionInfo{}, false
	}
	info, ok := v.(usecase.SessionInfo)
	return info, ok
}

func GetSessionID(c *gin.Context) string {
	info, _ := GetSession(c)
	return info.ID
}

func GetUserID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}
