package sessionstore

import (
	"context"
	"encoding/json"

	"rental-storefront/internal/infra"
	"rental-storefront/internal/pkg/clock"
	"rental-storefront/internal/pkg/pgconv"
	"rental-storefront/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const upsertSession = `
INSERT INTO sessions (id, user_id, user_data, token, favorites, created_at, expires_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
    user_id    = EXCLUDED.user_id,
    user_data  = EXCLUDED.user_data,
    token      = EXCLUDED.token,
    favorites  = EXCLUDED.favorites,
    expires_at = EXCLUDED.expires_at,
    updated_at = EXCLUDED.updated_at`

const selectSession = `
SELECT id, user_data, token, favorites, created_at, expires_at
FROM sessions
WHERE id = $1 AND expires_at > $2`

const deleteSession = `DELETE FROM sessions WHERE id = $1`

const deleteExpiredSessions = `DELETE FROM sessions WHERE expires_at <= $1`

type PostgresStore struct {
	db    DBTX
	clock clock.Clock
}

var _ usecase.SessionStore = (*PostgresStore)(nil)

func NewPostgresStore(db DBTX, c clock.Clock) *PostgresStore {
	return &PostgresStore{db: db, clock: c}
}

func (s *PostgresStore) Save(ctx context.Context, rec usecase.SessionRecord) error {
	var (
		userID   pgtype.Text
		userData []byte
	)
	if rec.User != nil {
		b, err := json.Marshal(rec.User)
		if err != nil {
			return infra.WrapRepoErr("failed to encode session user", err, infra.KindEncoding)
		}
		userData = b
		userID = pgconv.StringToPgtype(rec.User.ID)
	}

	favorites := rec.Favorites
	if favorites == nil {
		favorites = []string{}
	}

	_, err := s.db.Exec(ctx, upsertSession,
		rec.ID,
		userID,
		userData,
		pgconv.StringToPgtype(rec.Token),
		favorites,
		pgconv.TimeToPgtype(rec.CreatedAt),
		pgconv.TimeToPgtype(rec.ExpiresAt),
		pgconv.TimeToPgtype(s.clock.Now()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save session", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, id string) (*usecase.SessionRecord, error) {
	var (
		rec       usecase.SessionRecord
		userData  []byte
		token     pgtype.Text
		createdAt pgtype.Timestamptz
		expiresAt pgtype.Timestamptz
	)

	err := s.db.QueryRow(ctx, selectSession, id, pgconv.TimeToPgtype(s.clock.Now())).
		Scan(&rec.ID, &userData, &token, &rec.Favorites, &createdAt, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, infra.WrapRepoErr("failed to load session", err)
	}

	if len(userData) > 0 {
		var u usecase.UserRecord
		if err := json.Unmarshal(userData, &u); err != nil {
			return nil, infra.WrapRepoErr("failed to decode session user", err, infra.KindEncoding)
		}
		rec.User = &u
	}
	rec.Token = pgconv.StringFromPgtype(token)
	rec.CreatedAt = pgconv.TimeFromPgtype(createdAt).UTC()
	rec.ExpiresAt = pgconv.TimeFromPgtype(expiresAt).UTC()
	return &rec, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.Exec(ctx, deleteSession, id); err != nil {
		return infra.WrapRepoErr("failed to delete session", err)
	}
	return nil
}

func (s *PostgresStore) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, deleteExpiredSessions, pgconv.TimeToPgtype(s.clock.Now()))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge expired sessions", err)
	}
	return tag.RowsAffected(), nil
}
