package cookie

import (
	"net/http"
	"time"

	"rental-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "session_id"

// SetSessionCookie makes the browser drop the cookie when the session expires.
func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, sessionID string, expiresAt time.Time) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	maxAge := max(int(time.Until(expiresAt).Seconds()), 1)
	c.SetCookie(
		SessionCookieName,
		sessionID,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetSessionID(c *gin.Context) string {
	id, _ := c.Cookie(SessionCookieName)
	return id
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
