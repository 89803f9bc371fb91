package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims issued by the rental backend. Older builds put the user id in "id".
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	ID     string `json:"id,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) SubjectID() string {
	switch {
	case c.UserID != "":
		return c.UserID
	case c.ID != "":
		return c.ID
	default:
		return c.RegisteredClaims.Subject
	}
}

func (c *Claims) Expiry() *time.Time {
	if c.ExpiresAt == nil {
		return nil
	}
	t := c.ExpiresAt.Time
	return &t
}

// Decoder reads tokens issued by the backend. The BFF never issues tokens itself.
type Decoder struct {
	secretKey []byte
	now       func() time.Time
}

func NewDecoder(secretKey string) *Decoder {
	return &Decoder{
		secretKey: []byte(secretKey),
		now:       time.Now,
	}
}

func (d *Decoder) Verifying() bool {
	return len(d.secretKey) > 0
}

func (d *Decoder) Decode(tokenString string) (*Claims, error) {
	if !d.Verifying() {
		return d.decodeUnverified(tokenString)
	}

	parser := jwt.NewParser(jwt.WithTimeFunc(d.now))
	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return d.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (d *Decoder) decodeUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}

	if claims.ExpiresAt != nil && !d.now().Before(claims.ExpiresAt.Time) {
		return nil, ErrExpiredToken
	}
	return claims, nil
}
