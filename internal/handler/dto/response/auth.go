package response

import (
	"time"

	"rental-storefront/internal/domain/user"
	"rental-storefront/internal/usecase"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func FromUser(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	res := &UserResponse{}
	_ = copier.Copy(res, u.Profile())
	res.ID = u.ID()
	res.Role = u.Role().String()
	return res
}

func FromUserRecord(r *usecase.UserRecord) *UserResponse {
	if r == nil {
		return nil
	}
	res := &UserResponse{}
	_ = copier.Copy(res, r)
	return res
}

type SessionResponse struct {
	SessionID     string        `json:"sessionId"`
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
	Favorites     []string      `json:"favorites"`
	ExpiresAt     time.Time     `json:"expiresAt"`
}

func FromSession(info usecase.SessionInfo) SessionResponse {
	return SessionResponse{
		SessionID:     info.ID,
		Authenticated: info.State.Authenticated(),
		User:          FromUser(info.State.User),
		Favorites:     info.State.Favorites.IDs(),
		ExpiresAt:     info.ExpiresAt,
	}
}

type RegisterResponse struct {
	User *UserResponse `json:"user,omitempty"`
}
