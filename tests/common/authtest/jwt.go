//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"rental-storefront/internal/pkg/config"
	"rental-storefront/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// JWTHelper issues tokens the way the rental backend does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID, role string, ttl time.Duration) string {
	t.Helper()
	return h.sign(t, userID, role, time.Now().Add(ttl))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID, role string) string {
	t.Helper()
	return h.sign(t, userID, role, time.Now().Add(-time.Minute))
}

func (h *JWTHelper) sign(t *testing.T, userID, role string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: gojwt.NewNumericDate(expiresAt),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return token
}
