package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists games in a single table with a version column. The
// compare-and-set is one UPDATE guarded by the expected version: zero rows
// affected means another writer got there first.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Schema for the games table. Applied by the operator or a migration tool.
const Schema = `
CREATE TABLE IF NOT EXISTS caida_games (
	id      UUID PRIMARY KEY,
	version BIGINT NOT NULL,
	state   JSONB NOT NULL
);`

// NewPostgresStore wraps an existing connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the games table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, Schema)
	return err
}

// Create stores a new game at version 1.
func (s *PostgresStore) Create(ctx context.Context, rec *Record) error {
	rec.Version = 1
	state, err := json.Marshal(&rec.State)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO caida_games (id, version, state) VALUES ($1, $2, $3)`,
		rec.ID, rec.Version, state)
	if err != nil {
		// 23505 is unique_violation.
		var pgErr interface{ SQLState() string }
		if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Load returns the current record.
func (s *PostgresStore) Load(ctx context.Context, id uuid.UUID) (*Record, error) {
	rec := &Record{ID: id}
	var state []byte

	err := s.pool.QueryRow(ctx,
		`SELECT version, state FROM caida_games WHERE id = $1`, id).
		Scan(&rec.Version, &state)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(state, &rec.State); err != nil {
		return nil, err
	}
	return rec, nil
}

// Save applies the version-guarded UPDATE.
func (s *PostgresStore) Save(ctx context.Context, rec *Record) error {
	state, err := json.Marshal(&rec.State)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE caida_games SET version = version + 1, state = $1
		 WHERE id = $2 AND version = $3`,
		state, rec.ID, rec.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// Either the game is gone or the version moved on.
		if _, loadErr := s.Load(ctx, rec.ID); errors.Is(loadErr, ErrNotFound) {
			return ErrNotFound
		}
		return ErrStaleState
	}
	rec.Version++
	return nil
}

// Delete removes the game.
func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM caida_games WHERE id = $1`, id)
	return err
}
