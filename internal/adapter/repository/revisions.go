package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

// RevisionStore keeps an append-only history of saved snapshots in
// Postgres. It is best-effort: a nil pool disables it and every
// method becomes a no-op, so the file stores remain the source of
// truth when no database is configured.
type RevisionStore struct {
	pool *pgxpool.Pool
}

func NewRevisionStore(pool *pgxpool.Pool) *RevisionStore {
	return &RevisionStore{pool: pool}
}

// Kinds of persisted snapshots.
const (
	RevisionCV      = "cv"
	RevisionEmpleos = "empleos"
)

// SaveRevision appends one revision row for the given snapshot kind.
func (r *RevisionStore) SaveRevision(ctx context.Context, kind string, payload []byte) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO snapshot_revisions (id, kind, payload, created_at)
		VALUES ($1, $2, $3, $4)`,
		uuid.New(), kind, payload, time.Now())
	return err
}

// LatestRevision returns the most recent payload of a kind, or nil
// when the history is empty.
func (r *RevisionStore) LatestRevision(ctx context.Context, kind string) ([]byte, error) {
	if r.pool == nil {
		return nil, nil
	}
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM snapshot_revisions
		WHERE kind = $1 ORDER BY created_at DESC LIMIT 1`, kind).Scan(&payload)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
