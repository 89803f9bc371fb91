package api

import (
	"net/http"

	reqdto "rental-storefront/internal/handler/dto/request"
	resdto "rental-storefront/internal/handler/dto/response"
	"rental-storefront/internal/handler/httperr"
	"rental-storefront/internal/handler/middleware"
	"rental-storefront/internal/pkg/config"
	"rental-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog usecase.CatalogUseCase
	baseURL string
}

func NewCatalogHandler(catalog usecase.CatalogUseCase, cfg config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		baseURL: cfg.Backend.BaseURL,
	}
}

func favoriteLookup(c *gin.Context) func(string) bool {
	info, ok := middleware.GetSession(c)
	if !ok {
		return nil
	}
	return info.State.IsFavorite
}

// @Summary List products
// @Description Search the catalog by name and category, paginated
// @Tags catalog
// @Produce json
// @Param q query string false "Name contains (case-insensitive)"
// @Param category query string false "Category id"
// @Param page query int false "Page, 1-based"
// @Param perPage query int false "Items per page"
// @Success 200 {object} resdto.ProductPageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/catalog/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var q reqdto.ProductQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	page := h.catalog.Search(q.ToFilter())
	c.JSON(http.StatusOK, resdto.FromPage(page, h.baseURL, favoriteLookup(c)))
}

// @Summary Get product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /api/catalog/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.catalog.Product(c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProduct(p, h.baseURL, favoriteLookup(c)))
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /api/catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCategories(h.catalog.Categories()))
}

// @Summary Refresh catalog
// @Description Reload products and categories from the backend. The previous snapshot is kept on failure.
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.CatalogStatusResponse
// @Failure 502 {object} httperr.Response
// @Router /api/catalog/refresh [post]
func (h *CatalogHandler) Refresh(c *gin.Context) {
	if err := h.catalog.Refresh(c.Request.Context()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CatalogStatusResponse{
		Products:    len(h.catalog.Products()),
		Categories:  len(h.catalog.Categories()),
		RefreshedAt: h.catalog.RefreshedAt(),
	})
}
