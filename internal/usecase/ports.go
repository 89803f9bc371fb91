package usecase

import (
	"context"
	"errors"
	"time"

	"rental-storefront/internal/domain/product"
	"rental-storefront/internal/domain/reservation"
	"rental-storefront/internal/domain/user"
)

// UserRecord is the serializable form of a signed-in user, as returned by the
// backend and as persisted with a session.
type UserRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func (r UserRecord) ToDomain() (*user.User, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		// Unknown roles are treated as customers
		role = user.RoleCustomer
	}
	return user.NewUser(r.ID, email, role, user.Profile{
		Name:    r.Name,
		Surname: r.Surname,
		Email:   r.Email,
		Address: r.Address,
		Phone:   r.Phone,
	})
}

func UserRecordFrom(u *user.User) *UserRecord {
	if u == nil {
		return nil
	}
	p := u.Profile()
	return &UserRecord{
		ID:      u.ID(),
		Name:    p.Name,
		Surname: p.Surname,
		Email:   p.Email,
		Role:    u.Role().String(),
		Phone:   p.Phone,
		Address: p.Address,
	}
}

type LoginResult struct {
	Token string
	User  UserRecord
}

type RegisterInput struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

type ReservationRequest struct {
	UserID    string
	ProductID string
	StartDate time.Time
	EndDate   time.Time
}

// Remote API ports, one per concern so services only depend on what they call.

type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]product.Product, error)
	ListCategories(ctx context.Context) ([]product.Category, error)
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Register(ctx context.Context, in RegisterInput) (*UserRecord, error)
}

type FavoritesAPI interface {
	// Attached is false when no backend is configured.
	Attached() bool
	ListFavorites(ctx context.Context, token, userID string) ([]string, error)
	AddFavorite(ctx context.Context, token, userID, productID string) error
	RemoveFavorite(ctx context.Context, token, userID, productID string) error
}

type ReservationAPI interface {
	CreateReservation(ctx context.Context, token string, req ReservationRequest) (reservation.Confirmation, error)
	ReservationHistory(ctx context.Context, token, userID string) ([]reservation.Record, error)
}

type Backend interface {
	CatalogAPI
	AuthAPI
	FavoritesAPI
	ReservationAPI
}

// RemoteError is implemented by errors coming back from the backend.
type RemoteError interface {
	error
	StatusCode() int
	UserMessage() string
}

// RemoteMessage extracts the user-facing message of a backend error, if any.
func RemoteMessage(err error) (string, bool) {
	var re RemoteError
	if errors.As(err, &re) && re.UserMessage() != "" {
		return re.UserMessage(), true
	}
	return "", false
}

// SessionRecord is what a SessionStore persists. Workflows are not persisted.
type SessionRecord struct {
	ID        string      `json:"id"`
	User      *UserRecord `json:"user,omitempty"`
	Token     string      `json:"token,omitempty"`
	Favorites []string    `json:"favorites"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

func (r SessionRecord) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}

var ErrSessionNotFound = errors.New("session not found")

type SessionStore interface {
	Save(ctx context.Context, rec SessionRecord) error
	// Load returns ErrSessionNotFound for unknown or expired ids.
	Load(ctx context.Context, id string) (*SessionRecord, error)
	Delete(ctx context.Context, id string) error
}
