//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"rental-storefront/internal/handler/api"
	"rental-storefront/internal/pkg/config"
	"rental-storefront/tests/common/httptest"
	usecasemock "rental-storefront/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealthCheck(t *testing.T) {
	refreshed := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		baseURL       string
		refreshedAt   time.Time
		wantAttached  bool
		wantRefreshed bool
	}{
		{name: "detached before first refresh", baseURL: "", refreshedAt: time.Time{}},
		{name: "attached with catalog", baseURL: "http://backend:8081", refreshedAt: refreshed, wantAttached: true, wantRefreshed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			catalog := usecasemock.NewMockCatalogUseCase(ctrl)
			catalog.EXPECT().RefreshedAt().Return(tt.refreshedAt)

			cfg := config.NewTestConfig()
			cfg.Backend.BaseURL = tt.baseURL
			h := api.NewHealthHandler(catalog, cfg)

			router := newTestRouter()
			router.GET("/health", h.Check)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil, "")
			var res api.HealthResponse
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)

			assert.Equal(t, "ok", res.Status)
			assert.Equal(t, tt.wantAttached, res.BackendAttached)
			if tt.wantRefreshed {
				require.NotNil(t, res.CatalogRefreshedAt)
				assert.True(t, refreshed.Equal(*res.CatalogRefreshedAt))
			} else {
				assert.Nil(t, res.CatalogRefreshedAt)
			}
		})
	}
}
