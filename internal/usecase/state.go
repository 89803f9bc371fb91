package usecase

import (
	"rental-storefront/internal/domain/favorite"
	"rental-storefront/internal/domain/user"
)

// AppState is the immutable per-session view: who is signed in and what they favorited.
type AppState struct {
	User      *user.User
	Token     string
	Favorites favorite.Set
}

func (s AppState) Authenticated() bool {
	return s.User != nil
}

func (s AppState) IsFavorite(productID string) bool {
	return s.Favorites.Has(productID)
}

// Apply is the only way state changes.
func (s AppState) Apply(e Event) AppState {
	return e.apply(s)
}

type Event interface {
	apply(AppState) AppState
}

type LoggedIn struct {
	User      *user.User
	Token     string
	Favorites []string
}

func (e LoggedIn) apply(AppState) AppState {
	return AppState{User: e.User, Token: e.Token, Favorites: favorite.NewSet(e.Favorites...)}
}

type LoggedOut struct{}

func (LoggedOut) apply(AppState) AppState {
	return AppState{Favorites: favorite.NewSet()}
}

type FavoriteChanged struct {
	Toggle favorite.Toggle
}

func (e FavoriteChanged) apply(s AppState) AppState {
	s.Favorites = s.Favorites.Apply(e.Toggle)
	return s
}
