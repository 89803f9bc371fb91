//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"rental-storefront/internal/handler/dto/request"
	"rental-storefront/internal/pkg/cookie"
	"rental-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser signs in through the API and returns the session cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "Session cookie not found")
	require.NotEmpty(t, sessionCookie.Value, "Session cookie is empty")

	return sessionCookie
}
