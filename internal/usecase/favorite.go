package usecase

import (
	"context"
	"log/slog"

	"rental-storefront/internal/domain/favorite"
	"rental-storefront/internal/pkg/errs"
)

type ToggleResult struct {
	ProductID  string
	IsFavorite bool
	Phase      favorite.Phase
	LocalOnly  bool
}

type FavoriteUseCase interface {
	Toggle(ctx context.Context, sessionID, productID string) (ToggleResult, error)
	IsFavorite(ctx context.Context, sessionID, productID string) (bool, error)
	List(ctx context.Context, sessionID string) ([]string, error)
}

type favoriteUseCaseImpl struct {
	registry *SessionRegistry
	remote   FavoritesAPI
	logger   *slog.Logger
}

func NewFavoriteUseCase(registry *SessionRegistry, remote FavoritesAPI, logger *slog.Logger) FavoriteUseCase {
	return &favoriteUseCaseImpl{
		registry: registry,
		remote:   remote,
		logger:   logger,
	}
}

// Toggle flips membership optimistically, then confirms it remotely. A remote
// failure rolls the flip back and returns ErrFavoriteSyncFailed alongside the
// restored result. Anonymous sessions get ErrNotAuthenticated while a backend
// is attached and only change local state when none is configured.
func (u *favoriteUseCaseImpl) Toggle(ctx context.Context, sessionID, productID string) (ToggleResult, error) {
	if productID == "" {
		return ToggleResult{}, errs.Mark(ErrProductNotFound, errs.ErrValidation)
	}
	s, err := u.registry.Get(ctx, sessionID)
	if err != nil {
		return ToggleResult{}, err
	}

	attached := u.remote.Attached()

	s.mu.Lock()
	if s.state.User == nil && attached {
		s.mu.Unlock()
		return ToggleResult{ProductID: productID}, ErrNotAuthenticated
	}
	if _, busy := s.inFlight[productID]; busy {
		s.mu.Unlock()
		return ToggleResult{}, ErrToggleInFlight
	}
	tg := favorite.Begin(s.state.Favorites, productID)
	s.state = s.state.Apply(FavoriteChanged{Toggle: tg})
	s.inFlight[productID] = struct{}{}
	usr, token := s.state.User, s.state.Token
	s.mu.Unlock()

	var remoteErr error
	localOnly := usr == nil
	if !localOnly {
		if tg.Target() {
			remoteErr = u.remote.AddFavorite(ctx, token, usr.ID(), productID)
		} else {
			remoteErr = u.remote.RemoveFavorite(ctx, token, usr.ID(), productID)
		}
	}
	settled := tg.Settle(remoteErr)

	s.mu.Lock()
	delete(s.inFlight, productID)
	// A logout during the call makes this toggle irrelevant.
	current := s.state.User == usr
	if current {
		s.state = s.state.Apply(FavoriteChanged{Toggle: settled})
	}
	s.mu.Unlock()

	if settled.Phase == favorite.RolledBack {
		u.logger.Warn("favorite toggle rolled back",
			slog.String("session_id", sessionID),
			slog.String("product_id", productID),
			slog.String("error", remoteErr.Error()))
	}

	if !current {
		return ToggleResult{ProductID: productID, Phase: settled.Phase, LocalOnly: localOnly}, nil
	}
	if err := u.registry.Persist(ctx, s); err != nil {
		u.logger.Error("failed to persist favorites",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))
	}

	result := ToggleResult{
		ProductID:  productID,
		IsFavorite: settled.Membership(),
		Phase:      settled.Phase,
		LocalOnly:  localOnly,
	}
	if settled.Phase == favorite.RolledBack {
		return result, errs.Mark(errs.Wrap(remoteErr, "toggle favorite"), ErrFavoriteSyncFailed)
	}
	return result, nil
}

func (u *favoriteUseCaseImpl) IsFavorite(ctx context.Context, sessionID, productID string) (bool, error) {
	s, err := u.registry.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return s.Snapshot().IsFavorite(productID), nil
}

func (u *favoriteUseCaseImpl) List(ctx context.Context, sessionID string) ([]string, error) {
	s, err := u.registry.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.Snapshot().Favorites.IDs(), nil
}
