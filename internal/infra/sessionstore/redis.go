package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"rental-storefront/internal/infra"
	"rental-storefront/internal/pkg/clock"
	"rental-storefront/internal/usecase"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "storefront:session:"

// RedisStore relies on key expiry for session lifetime.
type RedisStore struct {
	client redis.Cmdable
	clock  clock.Clock
}

var _ usecase.SessionStore = (*RedisStore)(nil)

func NewRedisStore(client redis.Cmdable, c clock.Clock) *RedisStore {
	return &RedisStore{client: client, clock: c}
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

func (s *RedisStore) Save(ctx context.Context, rec usecase.SessionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return infra.WrapRepoErr("failed to encode session", err, infra.KindEncoding)
	}
	if err := s.client.Set(ctx, redisKey(rec.ID), data, ttlFrom(rec, s.clock.Now())).Err(); err != nil {
		return infra.WrapRepoErr("failed to save session", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (*usecase.SessionRecord, error) {
	data, err := s.client.Get(ctx, redisKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, infra.WrapRepoErr("failed to load session", err)
	}

	var rec usecase.SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, infra.WrapRepoErr("failed to decode session", err, infra.KindEncoding)
	}
	if rec.Expired(s.clock.Now()) {
		return nil, usecase.ErrSessionNotFound
	}
	return &rec, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete session", err)
	}
	return nil
}

// ttlFrom is the remaining lifetime of a record, never below one second.
func ttlFrom(rec usecase.SessionRecord, now time.Time) time.Duration {
	if rec.ExpiresAt.IsZero() {
		return 0
	}
	ttl := rec.ExpiresAt.Sub(now)
	if ttl < time.Second {
		ttl = time.Second
	}
	return ttl
}
