package api

import (
	"net/http"
	"time"

	"rental-storefront/internal/pkg/config"
	"rental-storefront/internal/pkg/ptr"
	"rental-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	catalog  usecase.CatalogUseCase
	attached bool
}

func NewHealthHandler(catalog usecase.CatalogUseCase, cfg config.Config) *HealthHandler {
	return &HealthHandler{catalog: catalog, attached: cfg.Backend.Attached()}
}

type HealthResponse struct {
	Status             string     `json:"status"`
	BackendAttached    bool       `json:"backendAttached"`
	CatalogRefreshedAt *time.Time `json:"catalogRefreshedAt,omitempty"`
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:             "ok",
		BackendAttached:    h.attached,
		CatalogRefreshedAt: ptr.TimeOrNil(h.catalog.RefreshedAt()),
	})
}
