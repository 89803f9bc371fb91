package api

import (
	"net/http"

	resdto "rental-storefront/internal/handler/dto/response"
	"rental-storefront/internal/handler/httperr"
	"rental-storefront/internal/handler/middleware"
	"rental-storefront/internal/pkg/config"
	"rental-storefront/internal/pkg/errs"
	"rental-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favorites usecase.FavoriteUseCase
	catalog   usecase.CatalogUseCase
	baseURL   string
}

func NewFavoriteHandler(favorites usecase.FavoriteUseCase, catalog usecase.CatalogUseCase, cfg config.Config) *FavoriteHandler {
	return &FavoriteHandler{
		favorites: favorites,
		catalog:   catalog,
		baseURL:   cfg.Backend.BaseURL,
	}
}

func alwaysFavorite(string) bool { return true }

// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {object} resdto.FavoritesResponse
// @Router /api/favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	ids, err := h.favorites.List(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	products := make([]resdto.ProductResponse, 0, len(ids))
	for _, id := range ids {
		p, err := h.catalog.Product(id)
		if err != nil {
			continue
		}
		products = append(products, resdto.FromProduct(p, h.baseURL, alwaysFavorite))
	}
	c.JSON(http.StatusOK, resdto.FavoritesResponse{Favorites: ids, Products: products})
}

// @Summary Favorite status
// @Tags favorites
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.FavoriteStatusResponse
// @Router /api/favorites/{productId} [get]
func (h *FavoriteHandler) Status(c *gin.Context) {
	productID := c.Param("productId")
	fav, err := h.favorites.IsFavorite(c.Request.Context(), middleware.GetSessionID(c), productID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FavoriteStatusResponse{ProductID: productID, IsFavorite: fav})
}

// @Summary Toggle favorite
// @Description Flip favorite membership. A backend failure restores the previous value and answers 502 with the restored state.
// @Tags favorites
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.ToggleResponse
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/favorites/{productId}/toggle [post]
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	result, err := h.favorites.Toggle(c.Request.Context(), middleware.GetSessionID(c), c.Param("productId"))
	if err != nil {
		if errs.Is(err, usecase.ErrFavoriteSyncFailed) {
			status, msg := httperr.Classify(err)
			res := resdto.FromToggle(result)
			if remote, ok := usecase.RemoteMessage(err); ok {
				res.Error = remote
			}
			httperr.AbortWithError(c, status, err, msg, res)
			return
		}
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromToggle(result))
}
