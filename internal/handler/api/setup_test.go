//go:build unit

package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"rental-storefront/internal/handler/middleware"
	"rental-storefront/internal/usecase"
	"rental-storefront/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func signedInSession(favorites ...string) usecase.SessionInfo {
	usr := builder.NewUserBuilder().MustBuildDomain()
	return usecase.SessionInfo{
		ID:        "sess-1",
		State:     usecase.AppState{}.Apply(usecase.LoggedIn{User: usr, Token: "tok", Favorites: favorites}),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func anonymousSession() usecase.SessionInfo {
	return usecase.SessionInfo{
		ID:        "anon-1",
		State:     usecase.AppState{}.Apply(usecase.LoggedOut{}),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// withSession stands in for SessionMiddleware.Attach.
func withSession(info usecase.SessionInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetSession(c, info)
		c.Next()
	}
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
