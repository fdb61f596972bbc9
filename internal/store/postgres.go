package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PostgresStore persists records in a single records table keyed by
// (collection, key), with the record body as jsonb. Schema is managed by
// cmd/migrate.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore returns a store backed by the given database.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Read(ctx context.Context, collection, key string, v any) error {
	var b []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM records WHERE collection = $1 AND key = $2`,
		collection, key,
	).Scan(&b)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("store: read %s/%s: %w", collection, key, err)
	}
	return json.Unmarshal(b, v)
}

func (s *PostgresStore) Create(ctx context.Context, collection, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO records (collection, key, data) VALUES ($1, $2, $3)
		 ON CONFLICT (collection, key) DO NOTHING`,
		collection, key, b,
	)
	if err != nil {
		return fmt.Errorf("store: create %s/%s: %w", collection, key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: create %s/%s: %w", collection, key, err)
	}
	if n == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, collection, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE records SET data = $3 WHERE collection = $1 AND key = $2`,
		collection, key, b,
	)
	if err != nil {
		return fmt.Errorf("store: update %s/%s: %w", collection, key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: update %s/%s: %w", collection, key, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection, key string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE collection = $1 AND key = $2`,
		collection, key,
	)
	if err != nil {
		return fmt.Errorf("store: delete %s/%s: %w", collection, key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %s/%s: %w", collection, key, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
