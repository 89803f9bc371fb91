//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"rental-storefront/internal/domain/favorite"
	"rental-storefront/internal/pkg/clock"
	"rental-storefront/internal/pkg/jwt"
	"rental-storefront/internal/usecase"
	"rental-storefront/tests/common/builder"
	usecasemock "rental-storefront/tests/mock/usecase"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sessionFixture wires a registry over a permissive mock store.
type sessionFixture struct {
	store    *usecasemock.MockSessionStore
	clock    *clock.MockClock
	tokens   usecase.TokenValidator
	registry *usecase.SessionRegistry
}

func newSessionFixture(t *testing.T, ctrl *gomock.Controller) *sessionFixture {
	t.Helper()
	f := &sessionFixture{
		store:  usecasemock.NewMockSessionStore(ctrl),
		clock:  clock.NewMockClock(testNow),
		tokens: usecase.NewTokenValidator(jwt.NewDecoder("")),
	}
	f.registry = usecase.NewSessionRegistry(f.store, f.tokens, f.clock, time.Hour, discardLogger())
	return f
}

func (f *sessionFixture) allowPersistence() {
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f *sessionFixture) loggedIn(t *testing.T, favorites ...string) string {
	t.Helper()
	usr := builder.NewUserBuilder().MustBuildDomain()
	s, err := f.registry.Create(context.Background(),
		usecase.AppState{}.Apply(usecase.LoggedIn{User: usr, Token: "tok", Favorites: favorites}), nil)
	require.NoError(t, err)
	return s.ID()
}

func (f *sessionFixture) anonymous(t *testing.T) string {
	t.Helper()
	s, err := f.registry.Create(context.Background(), usecase.AppState{Favorites: favorite.NewSet()}, nil)
	require.NoError(t, err)
	return s.ID()
}
