//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"rental-storefront/internal/domain/favorite"
	"rental-storefront/internal/pkg/errs"
	"rental-storefront/internal/usecase"
	usecasemock "rental-storefront/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FavoriteUseCaseTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	fixture  *sessionFixture
	remote   *usecasemock.MockFavoritesAPI
	sessions usecase.SessionUseCase
	useCase  usecase.FavoriteUseCase
}

func TestFavoriteUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(FavoriteUseCaseTestSuite))
}

func (s *FavoriteUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fixture = newSessionFixture(s.T(), s.ctrl)
	s.fixture.allowPersistence()
	s.remote = usecasemock.NewMockFavoritesAPI(s.ctrl)
	s.remote.EXPECT().Attached().Return(true).AnyTimes()
	s.sessions = usecase.NewSessionUseCase(s.fixture.registry, usecasemock.NewMockAuthAPI(s.ctrl), s.remote, s.fixture.tokens, discardLogger())
	s.useCase = usecase.NewFavoriteUseCase(s.fixture.registry, s.remote, discardLogger())
}

func (s *FavoriteUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FavoriteUseCaseTestSuite) TestToggleConfirmed() {
	ctx := context.Background()
	sid := s.fixture.loggedIn(s.T())

	s.remote.EXPECT().AddFavorite(gomock.Any(), "tok", "42", "7").
		DoAndReturn(func(ctx context.Context, _, _, _ string) error {
			fav, err := s.useCase.IsFavorite(ctx, sid, "7")
			s.Require().NoError(err)
			s.True(fav, "flip is visible before the backend answers")
			return nil
		})

	res, err := s.useCase.Toggle(ctx, sid, "7")
	s.Require().NoError(err)
	s.True(res.IsFavorite)
	s.Equal(favorite.Confirmed, res.Phase)
	s.False(res.LocalOnly)

	ids, err := s.useCase.List(ctx, sid)
	s.Require().NoError(err)
	s.Equal([]string{"7"}, ids)
}

func (s *FavoriteUseCaseTestSuite) TestToggleRemoveConfirmed() {
	ctx := context.Background()
	sid := s.fixture.loggedIn(s.T(), "3", "7")

	s.remote.EXPECT().RemoveFavorite(gomock.Any(), "tok", "42", "7").Return(nil)

	res, err := s.useCase.Toggle(ctx, sid, "7")
	s.Require().NoError(err)
	s.False(res.IsFavorite)

	ids, err := s.useCase.List(ctx, sid)
	s.Require().NoError(err)
	s.Equal([]string{"3"}, ids)
}

func (s *FavoriteUseCaseTestSuite) TestToggleOfflineRollsBack() {
	ctx := context.Background()
	sid := s.fixture.loggedIn(s.T())
	offline := errors.New("dial tcp: connection refused")

	s.remote.EXPECT().AddFavorite(gomock.Any(), "tok", "42", "7").
		DoAndReturn(func(ctx context.Context, _, _, _ string) error {
			fav, err := s.useCase.IsFavorite(ctx, sid, "7")
			s.Require().NoError(err)
			s.True(fav)
			return offline
		})

	res, err := s.useCase.Toggle(ctx, sid, "7")
	s.Require().Error(err)
	s.True(errs.Is(err, usecase.ErrFavoriteSyncFailed))
	s.ErrorIs(err, offline)
	s.False(res.IsFavorite)
	s.Equal(favorite.RolledBack, res.Phase)

	fav, err := s.useCase.IsFavorite(ctx, sid, "7")
	s.Require().NoError(err)
	s.False(fav, "pre-toggle value is restored")
}

func (s *FavoriteUseCaseTestSuite) TestToggleSameProductWhileInFlight() {
	ctx := context.Background()
	sid := s.fixture.loggedIn(s.T())

	s.remote.EXPECT().AddFavorite(gomock.Any(), "tok", "42", "8").Return(nil)
	s.remote.EXPECT().AddFavorite(gomock.Any(), "tok", "42", "7").
		DoAndReturn(func(ctx context.Context, _, _, _ string) error {
			_, err := s.useCase.Toggle(ctx, sid, "7")
			s.ErrorIs(err, usecase.ErrToggleInFlight)

			other, err := s.useCase.Toggle(ctx, sid, "8")
			s.Require().NoError(err, "other products toggle independently")
			s.True(other.IsFavorite)
			return nil
		})

	res, err := s.useCase.Toggle(ctx, sid, "7")
	s.Require().NoError(err)
	s.True(res.IsFavorite)

	ids, err := s.useCase.List(ctx, sid)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"7", "8"}, ids)
}

func (s *FavoriteUseCaseTestSuite) TestAnonymousToggleRequiresLogin() {
	ctx := context.Background()
	sid := s.fixture.anonymous(s.T())

	res, err := s.useCase.Toggle(ctx, sid, "7")
	s.ErrorIs(err, usecase.ErrNotAuthenticated)
	s.False(res.IsFavorite)
	s.False(res.LocalOnly)

	fav, err := s.useCase.IsFavorite(ctx, sid, "7")
	s.Require().NoError(err)
	s.False(fav, "rejected toggle leaves state untouched")
}

func (s *FavoriteUseCaseTestSuite) TestDetachedAnonymousToggleIsLocal() {
	ctx := context.Background()
	sid := s.fixture.anonymous(s.T())

	detached := usecasemock.NewMockFavoritesAPI(s.ctrl)
	detached.EXPECT().Attached().Return(false).AnyTimes()
	useCase := usecase.NewFavoriteUseCase(s.fixture.registry, detached, discardLogger())

	res, err := useCase.Toggle(ctx, sid, "7")
	s.Require().NoError(err)
	s.True(res.LocalOnly)
	s.True(res.IsFavorite)

	res, err = useCase.Toggle(ctx, sid, "7")
	s.Require().NoError(err)
	s.False(res.IsFavorite)
}

func (s *FavoriteUseCaseTestSuite) TestLogoutDuringToggle() {
	ctx := context.Background()
	sid := s.fixture.loggedIn(s.T(), "1")

	s.remote.EXPECT().AddFavorite(gomock.Any(), "tok", "42", "7").
		DoAndReturn(func(ctx context.Context, _, _, _ string) error {
			s.Require().NoError(s.sessions.Logout(ctx, sid))
			return nil
		})

	res, err := s.useCase.Toggle(ctx, sid, "7")
	s.Require().NoError(err)
	s.Equal("7", res.ProductID)
	s.False(res.IsFavorite)
}

func (s *FavoriteUseCaseTestSuite) TestUnknownSession() {
	s.fixture.store.EXPECT().Load(gomock.Any(), "missing").Return(nil, usecase.ErrSessionNotFound)

	_, err := s.useCase.Toggle(context.Background(), "missing", "7")
	s.ErrorIs(err, usecase.ErrSessionNotFound)
}
