//go:build e2e

package sessionstore_test

import (
	"context"
	"testing"
	"time"

	"rental-storefront/internal/infra/db"
	"rental-storefront/internal/infra/sessionstore"
	"rental-storefront/internal/pkg/clock"
	"rental-storefront/internal/pkg/config"
	"rental-storefront/internal/usecase"
	"rental-storefront/tests/common/dbtest"
	"rental-storefront/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var baseTime = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newRecord(expiresIn time.Duration) usecase.SessionRecord {
	return usecase.SessionRecord{
		ID: uuid.NewString(),
		User: &usecase.UserRecord{
			ID: "42", Name: "Ana", Surname: "Pérez", Email: "ana@example.com", Role: "CUSTOMER",
		},
		Token:     "backend-token",
		Favorites: []string{"7", "8"},
		CreatedAt: baseTime,
		ExpiresAt: baseTime.Add(expiresIn),
	}
}

// storeSuite runs the same contract against every persistent store.
type storeSuite struct {
	suite.Suite
	clock *clock.MockClock
	store usecase.SessionStore
}

func (s *storeSuite) TestSaveAndLoad() {
	ctx := context.Background()
	rec := newRecord(time.Hour)

	require.NoError(s.T(), s.store.Save(ctx, rec))

	got, err := s.store.Load(ctx, rec.ID)
	require.NoError(s.T(), err)
	if diff := cmp.Diff(rec, *got); diff != "" {
		s.T().Errorf("loaded record mismatch (-want +got):\n%s", diff)
	}
}

func (s *storeSuite) TestSaveOverwrites() {
	ctx := context.Background()
	rec := newRecord(time.Hour)
	require.NoError(s.T(), s.store.Save(ctx, rec))

	rec.Favorites = []string{"9"}
	rec.User = nil
	rec.Token = ""
	require.NoError(s.T(), s.store.Save(ctx, rec))

	got, err := s.store.Load(ctx, rec.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"9"}, got.Favorites)
	assert.Nil(s.T(), got.User)
	assert.Empty(s.T(), got.Token)
}

func (s *storeSuite) TestLoadUnknown() {
	_, err := s.store.Load(context.Background(), uuid.NewString())
	assert.ErrorIs(s.T(), err, usecase.ErrSessionNotFound)
}

func (s *storeSuite) TestLoadExpired() {
	ctx := context.Background()
	rec := newRecord(time.Hour)
	require.NoError(s.T(), s.store.Save(ctx, rec))

	s.clock.Add(time.Hour)

	_, err := s.store.Load(ctx, rec.ID)
	assert.ErrorIs(s.T(), err, usecase.ErrSessionNotFound)
}

func (s *storeSuite) TestDelete() {
	ctx := context.Background()
	rec := newRecord(time.Hour)
	require.NoError(s.T(), s.store.Save(ctx, rec))

	require.NoError(s.T(), s.store.Delete(ctx, rec.ID))
	require.NoError(s.T(), s.store.Delete(ctx, rec.ID), "deleting twice is not an error")

	_, err := s.store.Load(ctx, rec.ID)
	assert.ErrorIs(s.T(), err, usecase.ErrSessionNotFound)
}

type postgresStoreSuite struct {
	storeSuite
	pool    dbtest.DBLike
	pgStore *sessionstore.PostgresStore
}

func TestPostgresStore(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(postgresStoreSuite))
}

func (s *postgresStoreSuite) SetupSuite() {
	s.pool = e2e.NewTestDatabase(s.T())
}

func (s *postgresStoreSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.pool))
	s.clock = clock.NewMockClock(baseTime)
	s.pgStore = sessionstore.NewPostgresStore(s.pool, s.clock)
	s.store = s.pgStore
}

func (s *postgresStoreSuite) TestPurgeExpired() {
	ctx := context.Background()
	short := newRecord(time.Minute)
	long := newRecord(time.Hour)
	require.NoError(s.T(), s.store.Save(ctx, short))
	require.NoError(s.T(), s.store.Save(ctx, long))

	s.clock.Add(10 * time.Minute)

	purged, err := s.pgStore.PurgeExpired(ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), purged)
	assert.Equal(s.T(), 1, dbtest.CountSessions(s.T(), s.pool))

	_, err = s.store.Load(ctx, long.ID)
	assert.NoError(s.T(), err)
}

type redisStoreSuite struct {
	storeSuite
}

func TestRedisStore(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(redisStoreSuite))
}

func (s *redisStoreSuite) SetupTest() {
	client, cleanup, err := db.ConnectRedis(config.RedisConfig{Addr: e2e.StartRedis(s.T())})
	require.NoError(s.T(), err)
	s.T().Cleanup(cleanup)
	require.NoError(s.T(), client.FlushDB(context.Background()).Err())

	s.clock = clock.NewMockClock(baseTime)
	s.store = sessionstore.NewRedisStore(client, s.clock)
}

func (s *redisStoreSuite) TestKeyCarriesTTL() {
	ctx := context.Background()
	client, cleanup, err := db.ConnectRedis(config.RedisConfig{Addr: e2e.StartRedis(s.T())})
	require.NoError(s.T(), err)
	defer cleanup()

	rec := newRecord(time.Hour)
	require.NoError(s.T(), s.store.Save(ctx, rec))

	ttl, err := client.TTL(ctx, "storefront:session:"+rec.ID).Result()
	require.NoError(s.T(), err)
	assert.InDelta(s.T(), time.Hour.Seconds(), ttl.Seconds(), 5)
}
