package sessionstore

import (
	"context"
	"slices"
	"sync"

	"rental-storefront/internal/pkg/clock"
	"rental-storefront/internal/usecase"
)

// MemoryStore keeps sessions in process. Sessions are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]usecase.SessionRecord
	clock    clock.Clock
}

var _ usecase.SessionStore = (*MemoryStore)(nil)

func NewMemoryStore(c clock.Clock) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]usecase.SessionRecord),
		clock:    c,
	}
}

func (s *MemoryStore) Save(_ context.Context, rec usecase.SessionRecord) error {
	rec.Favorites = slices.Clone(rec.Favorites)
	if rec.User != nil {
		u := *rec.User
		rec.User = &u
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[rec.ID] = rec
	return nil
}

func (s *MemoryStore) Load(_ context.Context, id string) (*usecase.SessionRecord, error) {
	s.mu.RLock()
	rec, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, usecase.ErrSessionNotFound
	}
	if rec.Expired(s.clock.Now()) {
		_ = s.Delete(context.Background(), id)
		return nil, usecase.ErrSessionNotFound
	}

	rec.Favorites = slices.Clone(rec.Favorites)
	if rec.User != nil {
		u := *rec.User
		rec.User = &u
	}
	return &rec, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// PurgeExpired drops expired sessions and reports how many were removed.
func (s *MemoryStore) PurgeExpired(_ context.Context) (int64, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, rec := range s.sessions {
		if rec.Expired(now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}
