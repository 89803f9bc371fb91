package usecase

import (
	"errors"
	"strings"
	"time"

	"rental-storefront/internal/pkg/jwt"
)

type TokenInfo struct {
	Subject   string
	Role      string
	ExpiresAt *time.Time
	Opaque    bool
}

// TokenValidator checks backend-issued tokens before a session is trusted.
type TokenValidator interface {
	ValidateToken(tokenString string) (*TokenInfo, error)
}

type tokenValidatorImpl struct {
	decoder *jwt.Decoder
}

func NewTokenValidator(decoder *jwt.Decoder) TokenValidator {
	return &tokenValidatorImpl{
		decoder: decoder,
	}
}

// Without a signing secret, tokens that are not JWTs at all are accepted as opaque.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*TokenInfo, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrAuthenticationFailed
	}

	claims, err := t.decoder.Decode(tokenString)
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return nil, ErrSessionExpired
	case err != nil && !t.decoder.Verifying():
		return &TokenInfo{Opaque: true}, nil
	case err != nil:
		return nil, ErrAuthenticationFailed
	}

	return &TokenInfo{
		Subject:   claims.SubjectID(),
		Role:      claims.Role,
		ExpiresAt: claims.Expiry(),
	}, nil
}
