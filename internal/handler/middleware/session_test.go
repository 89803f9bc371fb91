//go:build unit

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"rental-storefront/internal/handler/middleware"
	"rental-storefront/internal/pkg/config"
	"rental-storefront/internal/pkg/cookie"
	"rental-storefront/internal/usecase"
	"rental-storefront/tests/common/builder"
	"rental-storefront/tests/common/httptest"
	usecasemock "rental-storefront/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionMiddlewareTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockSessions *usecasemock.MockSessionUseCase
}

func TestSessionMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(SessionMiddlewareTestSuite))
}

func (s *SessionMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessions = usecasemock.NewMockSessionUseCase(s.mockCtrl)

	sm := middleware.NewSessionMiddleware(s.mockSessions, config.NewTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	echo := func(c *gin.Context) {
		info, _ := middleware.GetSession(c)
		c.JSON(http.StatusOK, gin.H{"sessionId": info.ID, "userId": middleware.GetUserID(c)})
	}
	s.router.GET("/open", sm.Attach(), echo)
	s.router.GET("/private", sm.Attach(), sm.RequireUser(), echo)
}

func (s *SessionMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func signedIn(id string) usecase.SessionInfo {
	return usecase.SessionInfo{
		ID:        id,
		State:     usecase.AppState{}.Apply(usecase.LoggedIn{User: builder.NewUserBuilder().MustBuildDomain(), Token: "tok"}),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func anonymous(id string) usecase.SessionInfo {
	return usecase.SessionInfo{ID: id, State: usecase.AppState{}.Apply(usecase.LoggedOut{}), ExpiresAt: time.Now().Add(time.Hour)}
}

func (s *SessionMiddlewareTestSuite) TestAttach() {
	s.Run("cookie session", func() {
		s.mockSessions.EXPECT().Current(gomock.Any(), "sess-1").Return(signedIn("sess-1"), nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/open", nil,
			[]*http.Cookie{{Name: cookie.SessionCookieName, Value: "sess-1"}}, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"sessionId":"sess-1","userId":"42"}`, rec.Body.String())
		s.Nil(httptest.ExtractCookie(rec, cookie.SessionCookieName), "existing session keeps its cookie")
	})

	s.Run("bearer session", func() {
		s.mockSessions.EXPECT().Current(gomock.Any(), "sess-2").Return(signedIn("sess-2"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/open", nil, "sess-2")
		s.JSONEq(`{"sessionId":"sess-2","userId":"42"}`, rec.Body.String())
	})

	s.Run("new visitor gets an anonymous session", func() {
		s.mockSessions.EXPECT().CreateAnonymous(gomock.Any()).Return(anonymous("anon-1"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/open", nil, "")
		s.JSONEq(`{"sessionId":"anon-1","userId":""}`, rec.Body.String())
		c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(c)
		s.Equal("anon-1", c.Value)
	})

	s.Run("expired session is replaced", func() {
		s.mockSessions.EXPECT().Current(gomock.Any(), "old").Return(usecase.SessionInfo{}, usecase.ErrSessionExpired)
		s.mockSessions.EXPECT().CreateAnonymous(gomock.Any()).Return(anonymous("anon-2"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/open", nil, "old")
		s.JSONEq(`{"sessionId":"anon-2","userId":""}`, rec.Body.String())
	})
}

func (s *SessionMiddlewareTestSuite) TestRequireUser() {
	s.Run("anonymous is rejected", func() {
		s.mockSessions.EXPECT().Current(gomock.Any(), "anon-1").Return(anonymous("anon-1"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "anon-1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Login required")
	})

	s.Run("signed in passes", func() {
		s.mockSessions.EXPECT().Current(gomock.Any(), "sess-1").Return(signedIn("sess-1"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "sess-1")
		s.Equal(http.StatusOK, rec.Code)
	})
}
