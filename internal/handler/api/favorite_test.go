//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"rental-storefront/internal/domain/favorite"
	"rental-storefront/internal/domain/product"
	"rental-storefront/internal/handler/api"
	resdto "rental-storefront/internal/handler/dto/response"
	"rental-storefront/internal/infra/backend"
	"rental-storefront/internal/pkg/config"
	"rental-storefront/internal/pkg/errs"
	"rental-storefront/internal/usecase"
	"rental-storefront/tests/common/builder"
	"rental-storefront/tests/common/httptest"
	usecasemock "rental-storefront/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FavoriteHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockFavorites *usecasemock.MockFavoriteUseCase
	mockCatalog   *usecasemock.MockCatalogUseCase
}

func (s *FavoriteHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockFavorites = usecasemock.NewMockFavoriteUseCase(s.mockCtrl)
	s.mockCatalog = usecasemock.NewMockCatalogUseCase(s.mockCtrl)
	h := api.NewFavoriteHandler(s.mockFavorites, s.mockCatalog, config.NewTestConfig())

	g := s.router.Group("/api/favorites", withSession(signedInSession()))
	g.GET("", h.List)
	g.GET("/:productId", h.Status)
	g.POST("/:productId/toggle", h.Toggle)
}

func (s *FavoriteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFavoriteHandlerSuite(t *testing.T) {
	suite.Run(t, new(FavoriteHandlerTestSuite))
}

func (s *FavoriteHandlerTestSuite) TestToggle() {
	url := "/api/favorites/7/toggle"

	s.Run("success: confirmed", func() {
		s.mockFavorites.EXPECT().Toggle(gomock.Any(), "sess-1", "7").
			Return(usecase.ToggleResult{ProductID: "7", IsFavorite: true, Phase: favorite.Confirmed}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		var res resdto.ToggleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.IsFavorite)
		s.Equal(favorite.Confirmed.String(), res.Phase)
	})

	s.Run("error: rollback reports the restored state", func() {
		s.mockFavorites.EXPECT().Toggle(gomock.Any(), "sess-1", "7").
			Return(usecase.ToggleResult{ProductID: "7", IsFavorite: false, Phase: favorite.RolledBack},
				errs.Mark(errs.Wrap(&backend.APIError{Status: http.StatusInternalServerError, Message: "boom"}, "toggle favorite"), usecase.ErrFavoriteSyncFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Could not update favorites")

		body := decodeError(s.T(), rec)
		var detail resdto.ToggleResponse
		s.Require().NoError(json.Unmarshal(body.Detail, &detail))
		s.False(detail.IsFavorite)
		s.Equal(favorite.RolledBack.String(), detail.Phase)
		s.Equal("boom", detail.Error)
	})

	s.Run("error: toggle already in flight", func() {
		s.mockFavorites.EXPECT().Toggle(gomock.Any(), "sess-1", "7").
			Return(usecase.ToggleResult{}, usecase.ErrToggleInFlight)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: anonymous session with attached backend", func() {
		s.mockFavorites.EXPECT().Toggle(gomock.Any(), "sess-1", "7").
			Return(usecase.ToggleResult{ProductID: "7"}, usecase.ErrNotAuthenticated)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Login required")
	})
}

func (s *FavoriteHandlerTestSuite) TestList() {
	s.Run("empty list is not null", func() {
		s.mockFavorites.EXPECT().List(gomock.Any(), "sess-1").Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/favorites", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"favorites":[],"products":[]}`, rec.Body.String())
	})

	s.Run("favorites resolve to catalog products", func() {
		p, err := builder.NewProductBuilder().BuildDomain()
		s.Require().NoError(err)
		s.mockFavorites.EXPECT().List(gomock.Any(), "sess-1").Return([]string{"7", "99"}, nil)
		s.mockCatalog.EXPECT().Product("7").Return(p, nil)
		s.mockCatalog.EXPECT().Product("99").Return(product.Product{}, usecase.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/favorites", nil, "")
		var res resdto.FavoritesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal([]string{"7", "99"}, res.Favorites)
		s.Require().Len(res.Products, 1)
		s.Equal("7", res.Products[0].ID)
		s.True(res.Products[0].IsFavorite)
	})

	s.Run("status", func() {
		s.mockFavorites.EXPECT().IsFavorite(gomock.Any(), "sess-1", "9").Return(true, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/favorites/9", nil, "")
		s.JSONEq(`{"productId":"9","isFavorite":true}`, rec.Body.String())
	})
}
