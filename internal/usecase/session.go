package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"rental-storefront/internal/domain/favorite"
	"rental-storefront/internal/domain/reservation"
	"rental-storefront/internal/pkg/clock"
	"rental-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// Session owns one visitor's state. mu guards state, inFlight and workflows and
// is never held across a network call.
type Session struct {
	id        string
	createdAt time.Time
	expiresAt time.Time

	mu        sync.Mutex
	state     AppState
	inFlight  map[string]struct{}
	workflows map[uuid.UUID]*reservation.Workflow

	// saveMu serializes persistence so the last write carries the latest state.
	saveMu sync.Mutex
}

func newSession(id string, createdAt, expiresAt time.Time, state AppState) *Session {
	return &Session{
		id:        id,
		createdAt: createdAt,
		expiresAt: expiresAt,
		state:     state,
		inFlight:  make(map[string]struct{}),
		workflows: make(map[uuid.UUID]*reservation.Workflow),
	}
}

func (s *Session) ID() string           { return s.id }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

func (s *Session) Snapshot() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) record() SessionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionRecord{
		ID:        s.id,
		User:      UserRecordFrom(s.state.User),
		Token:     s.state.Token,
		Favorites: s.state.Favorites.IDs(),
		CreatedAt: s.createdAt,
		ExpiresAt: s.expiresAt,
	}
}

// SessionInfo is what callers outside the usecase layer see of a session.
type SessionInfo struct {
	ID        string
	State     AppState
	ExpiresAt time.Time
}

func (s *Session) Info() SessionInfo {
	return SessionInfo{ID: s.id, State: s.Snapshot(), ExpiresAt: s.expiresAt}
}

// expiredSessionPurger is implemented by stores that can drop expired rows in bulk.
type expiredSessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// SessionRegistry keeps live sessions in process and mirrors them to a SessionStore.
type SessionRegistry struct {
	store  SessionStore
	tokens TokenValidator
	clock  clock.Clock
	ttl    time.Duration
	logger *slog.Logger

	mu   sync.Mutex
	live map[string]*Session
}

func NewSessionRegistry(store SessionStore, tokens TokenValidator, c clock.Clock, ttl time.Duration, logger *slog.Logger) *SessionRegistry {
	return &SessionRegistry{
		store:  store,
		tokens: tokens,
		clock:  c,
		ttl:    ttl,
		logger: logger,
		live:   make(map[string]*Session),
	}
}

// Create starts a session. A token expiring before the TTL shortens the session.
func (r *SessionRegistry) Create(ctx context.Context, state AppState, tokenExpiry *time.Time) (*Session, error) {
	now := r.clock.Now()
	expiresAt := now.Add(r.ttl)
	if tokenExpiry != nil && tokenExpiry.Before(expiresAt) {
		expiresAt = *tokenExpiry
	}

	s := newSession(uuid.NewString(), now, expiresAt, state)
	if err := r.Persist(ctx, s); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.live[s.id] = s
	r.mu.Unlock()
	return s, nil
}

// Get returns ErrSessionNotFound for unknown ids and ErrSessionExpired for
// sessions past their lifetime.
func (r *SessionRegistry) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}
	now := r.clock.Now()

	r.mu.Lock()
	s, ok := r.live[id]
	r.mu.Unlock()
	if ok {
		if !now.Before(s.expiresAt) {
			r.Drop(ctx, id)
			return nil, ErrSessionExpired
		}
		return s, nil
	}

	rec, err := r.store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, errs.Wrap(err, "load session")
	}
	if rec.Expired(now) {
		r.Drop(ctx, id)
		return nil, ErrSessionExpired
	}

	s, err = r.rehydrate(rec)
	if err != nil {
		r.logger.Warn("discarding unreadable session",
			slog.String("session_id", id),
			slog.String("error", err.Error()))
		r.Drop(ctx, id)
		return nil, err
	}

	r.mu.Lock()
	if existing, ok := r.live[id]; ok {
		s = existing
	} else {
		r.live[id] = s
	}
	r.mu.Unlock()
	return s, nil
}

func (r *SessionRegistry) rehydrate(rec *SessionRecord) (*Session, error) {
	state := AppState{Favorites: favorite.NewSet(rec.Favorites...)}
	if rec.User != nil {
		if _, err := r.tokens.ValidateToken(rec.Token); err != nil {
			return nil, err
		}
		u, err := rec.User.ToDomain()
		if err != nil {
			return nil, errs.Mark(err, ErrAuthenticationFailed)
		}
		state = state.Apply(LoggedIn{User: u, Token: rec.Token, Favorites: rec.Favorites})
	}
	return newSession(rec.ID, rec.CreatedAt, rec.ExpiresAt, state), nil
}

func (r *SessionRegistry) Persist(ctx context.Context, s *Session) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := r.store.Save(ctx, s.record()); err != nil {
		return errs.Wrap(err, "persist session")
	}
	return nil
}

// Drop forgets a session locally and in the store. Store failures are logged.
func (r *SessionRegistry) Drop(ctx context.Context, id string) {
	r.mu.Lock()
	delete(r.live, id)
	r.mu.Unlock()

	if err := r.store.Delete(ctx, id); err != nil {
		r.logger.Warn("failed to delete session",
			slog.String("session_id", id),
			slog.String("error", err.Error()))
	}
}

// PurgeExpired evicts expired live sessions and asks the store to do the same.
func (r *SessionRegistry) PurgeExpired(ctx context.Context) (int, error) {
	now := r.clock.Now()

	r.mu.Lock()
	evicted := 0
	for id, s := range r.live {
		if !now.Before(s.expiresAt) {
			delete(r.live, id)
			evicted++
		}
	}
	r.mu.Unlock()

	if p, ok := r.store.(expiredSessionPurger); ok {
		n, err := p.PurgeExpired(ctx)
		if err != nil {
			return evicted, err
		}
		if int(n) > evicted {
			evicted = int(n)
		}
	}
	return evicted, nil
}
