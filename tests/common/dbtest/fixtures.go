//go:build unit || e2e

package dbtest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, "TRUNCATE TABLE sessions")
	return err
}

func CountSessions(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM sessions").Scan(&n)
	require.NoError(t, err)
	return n
}

// StoredSession is the persisted view of one session row.
type StoredSession struct {
	UserID    *string
	Favorites []string
	ExpiresAt time.Time
}

// LoadSession returns nil when the row does not exist.
func LoadSession(t *testing.T, db DBLike, id string) *StoredSession {
	t.Helper()

	var s StoredSession
	err := db.QueryRow(context.Background(),
		"SELECT user_id, favorites, expires_at FROM sessions WHERE id = $1", id).
		Scan(&s.UserID, &s.Favorites, &s.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	require.NoError(t, err)
	return &s
}

// ExpireSession moves a session's expiry into the past.
func ExpireSession(t *testing.T, db DBLike, id string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE sessions SET expires_at = now() - interval '1 minute' WHERE id = $1", id)
	require.NoError(t, err)
}
