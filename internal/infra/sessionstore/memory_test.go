//go:build unit

package sessionstore_test

import (
	"context"
	"testing"
	"time"

	"rental-storefront/internal/infra/sessionstore"
	"rental-storefront/internal/pkg/clock"
	"rental-storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	newRecord := func(id string) usecase.SessionRecord {
		return usecase.SessionRecord{
			ID:        id,
			User:      &usecase.UserRecord{ID: "42", Email: "ana@example.com", Role: "CUSTOMER"},
			Token:     "tok",
			Favorites: []string{"1", "2"},
			CreatedAt: now,
			ExpiresAt: now.Add(time.Hour),
		}
	}

	t.Run("save and load", func(t *testing.T) {
		store := sessionstore.NewMemoryStore(clock.NewMockClock(now))
		require.NoError(t, store.Save(ctx, newRecord("s1")))

		got, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, newRecord("s1"), *got)
	})

	t.Run("loaded record is a copy", func(t *testing.T) {
		store := sessionstore.NewMemoryStore(clock.NewMockClock(now))
		require.NoError(t, store.Save(ctx, newRecord("s1")))

		got, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		got.Favorites[0] = "changed"
		got.User.Name = "changed"

		again, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, again.Favorites)
		assert.Empty(t, again.User.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		store := sessionstore.NewMemoryStore(clock.NewMockClock(now))
		_, err := store.Load(ctx, "missing")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})

	t.Run("expired session is not found", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		store := sessionstore.NewMemoryStore(clk)
		require.NoError(t, store.Save(ctx, newRecord("s1")))

		clk.Add(time.Hour)
		_, err := store.Load(ctx, "s1")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		store := sessionstore.NewMemoryStore(clock.NewMockClock(now))
		require.NoError(t, store.Save(ctx, newRecord("s1")))
		require.NoError(t, store.Delete(ctx, "s1"))

		_, err := store.Load(ctx, "s1")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
		assert.NoError(t, store.Delete(ctx, "s1"))
	})

	t.Run("purge expired", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		store := sessionstore.NewMemoryStore(clk)
		short := newRecord("short")
		short.ExpiresAt = now.Add(time.Minute)
		require.NoError(t, store.Save(ctx, short))
		require.NoError(t, store.Save(ctx, newRecord("long")))

		clk.Add(2 * time.Minute)
		n, err := store.PurgeExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		_, err = store.Load(ctx, "long")
		assert.NoError(t, err)
	})
}
