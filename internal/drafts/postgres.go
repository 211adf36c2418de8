package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository keeps the draft blob in a single jsonb row, upserted
// whole on every save. Durable multi-host storage without giving up the
// one-blob persistence contract.
type PostgresRepository struct {
	pool *pgxpool.Pool
	key  string
}

func NewPostgresRepository(pool *pgxpool.Pool, key string) *PostgresRepository {
	if key == "" {
		key = DefaultBlobKey
	}
	return &PostgresRepository{pool: pool, key: key}
}

// EnsureSchema creates the blob table if it does not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS draft_blobs (
			blob_key   TEXT PRIMARY KEY,
			blob       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := r.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("drafts/postgres: ensure schema: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Load(ctx context.Context) (Store, error) {
	const query = `SELECT blob FROM draft_blobs WHERE blob_key = $1`
	var data []byte
	if err := r.pool.QueryRow(ctx, query, r.key).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Store{}, ErrNotFound
		}
		return Store{}, fmt.Errorf("drafts/postgres: select %s: %w", r.key, err)
	}
	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return Store{}, fmt.Errorf("drafts/postgres: decode %s: %w", r.key, err)
	}
	return store, nil
}

func (r *PostgresRepository) Save(ctx context.Context, store Store) error {
	data, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("drafts/postgres: encode: %w", err)
	}
	const query = `
		INSERT INTO draft_blobs (blob_key, blob, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (blob_key) DO UPDATE SET blob = EXCLUDED.blob, updated_at = now()`
	if _, err := r.pool.Exec(ctx, query, r.key, data); err != nil {
		return fmt.Errorf("drafts/postgres: upsert %s: %w", r.key, err)
	}
	return nil
}
