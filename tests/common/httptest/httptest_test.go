//go:build unit

package httptest

import (
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type echoed struct {
	ContentType string `json:"contentType"`
	Auth        string `json:"auth"`
	Cookie      string `json:"cookie"`
	Body        string `json:"body"`
}

func echoRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Any("/echo", func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		sid, _ := c.Cookie("sid")
		c.JSON(http.StatusOK, echoed{
			ContentType: c.GetHeader("Content-Type"),
			Auth:        c.GetHeader("Authorization"),
			Cookie:      sid,
			Body:        string(raw),
		})
	})
	return r
}

func TestPerformRequest(t *testing.T) {
	router := echoRouter()

	t.Run("json body and bearer token", func(t *testing.T) {
		w := PerformRequest(t, router, http.MethodPost, "/echo", map[string]string{"q": "bajo"}, "tok")
		var got echoed
		AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "application/json", got.ContentType)
		assert.Equal(t, "Bearer tok", got.Auth)
		assert.JSONEq(t, `{"q":"bajo"}`, got.Body)
		assert.Empty(t, got.Cookie)
	})

	t.Run("no body sends no content type", func(t *testing.T) {
		w := PerformRequest(t, router, http.MethodGet, "/echo", nil, "")
		var got echoed
		AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Empty(t, got.ContentType)
		assert.Empty(t, got.Auth)
		assert.Empty(t, got.Body)
	})

	t.Run("cookies are forwarded", func(t *testing.T) {
		w := PerformRequestWithCookies(t, router, http.MethodGet, "/echo", nil,
			[]*http.Cookie{{Name: "sid", Value: "sess-1"}}, "")
		var got echoed
		AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "sess-1", got.Cookie)
	})
}
