package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"rental-storefront/internal/domain/favorite"
	"rental-storefront/internal/domain/user"
	"rental-storefront/internal/pkg/errs"
)

type SessionUseCase interface {
	CreateAnonymous(ctx context.Context) (SessionInfo, error)
	Login(ctx context.Context, email, password string) (SessionInfo, error)
	Register(ctx context.Context, in RegisterInput) (*UserRecord, error)
	Logout(ctx context.Context, sessionID string) error
	Current(ctx context.Context, sessionID string) (SessionInfo, error)
}

type sessionUseCaseImpl struct {
	registry  *SessionRegistry
	auth      AuthAPI
	favorites FavoritesAPI
	tokens    TokenValidator
	logger    *slog.Logger
}

func NewSessionUseCase(registry *SessionRegistry, auth AuthAPI, favorites FavoritesAPI, tokens TokenValidator, logger *slog.Logger) SessionUseCase {
	return &sessionUseCaseImpl{
		registry:  registry,
		auth:      auth,
		favorites: favorites,
		tokens:    tokens,
		logger:    logger,
	}
}

func (u *sessionUseCaseImpl) CreateAnonymous(ctx context.Context) (SessionInfo, error) {
	s, err := u.registry.Create(ctx, AppState{Favorites: favorite.NewSet()}, nil)
	if err != nil {
		return SessionInfo{}, err
	}
	return s.Info(), nil
}

func (u *sessionUseCaseImpl) Login(ctx context.Context, email, password string) (SessionInfo, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return SessionInfo{}, errs.Mark(ErrInvalidCredentials, errs.ErrValidation)
	}

	res, err := u.auth.Login(ctx, email, password)
	if err != nil {
		var re RemoteError
		if errors.As(err, &re) && (re.StatusCode() == http.StatusUnauthorized || re.StatusCode() == http.StatusBadRequest) {
			return SessionInfo{}, errs.Mark(err, ErrInvalidCredentials)
		}
		return SessionInfo{}, errs.Wrap(err, "login")
	}

	usr, err := res.User.ToDomain()
	if err != nil {
		return SessionInfo{}, errs.Mark(errs.Wrap(err, "login user"), ErrAuthenticationFailed)
	}

	info, err := u.tokens.ValidateToken(res.Token)
	if err != nil {
		return SessionInfo{}, err
	}

	favs := u.loadFavorites(ctx, res.Token, usr)

	s, err := u.registry.Create(ctx, AppState{}.Apply(LoggedIn{User: usr, Token: res.Token, Favorites: favs}), info.ExpiresAt)
	if err != nil {
		return SessionInfo{}, err
	}

	u.logger.Info("user logged in",
		slog.String("session_id", s.ID()),
		slog.String("user_id", usr.ID()),
		slog.Int("favorites", len(favs)))
	return s.Info(), nil
}

// loadFavorites never fails the login; the session starts empty instead.
func (u *sessionUseCaseImpl) loadFavorites(ctx context.Context, token string, usr *user.User) []string {
	ids, err := u.favorites.ListFavorites(ctx, token, usr.ID())
	if err != nil {
		u.logger.Warn("failed to load favorites",
			slog.String("user_id", usr.ID()),
			slog.String("error", err.Error()))
		return nil
	}
	return ids
}

func (u *sessionUseCaseImpl) Register(ctx context.Context, in RegisterInput) (*UserRecord, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Surname = strings.TrimSpace(in.Surname)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)

	verr := &InputError{}
	for _, f := range []struct{ name, value string }{
		{"name", in.Name},
		{"surname", in.Surname},
		{"email", in.Email},
		{"password", in.Password},
	} {
		if f.value == "" {
			verr.MissingFields = append(verr.MissingFields, f.name)
		}
	}
	if in.Email != "" && !user.IsValidEmail(in.Email) {
		verr.InvalidFields = append(verr.InvalidFields, "email")
	}
	if len(verr.MissingFields) > 0 || len(verr.InvalidFields) > 0 {
		return nil, errs.Mark(verr, errs.ErrValidation)
	}

	rec, err := u.auth.Register(ctx, in)
	if err != nil {
		return nil, errs.Wrap(err, "register")
	}
	return rec, nil
}

// Logout clears the session state, including any open reservation workflows, then forgets it.
func (u *sessionUseCaseImpl) Logout(ctx context.Context, sessionID string) error {
	s, err := u.registry.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrSessionExpired) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.state = s.state.Apply(LoggedOut{})
	for id, w := range s.workflows {
		w.Close()
		delete(s.workflows, id)
	}
	s.mu.Unlock()

	u.registry.Drop(ctx, sessionID)
	return nil
}

func (u *sessionUseCaseImpl) Current(ctx context.Context, sessionID string) (SessionInfo, error) {
	s, err := u.registry.Get(ctx, sessionID)
	if err != nil {
		return SessionInfo{}, err
	}
	return s.Info(), nil
}
