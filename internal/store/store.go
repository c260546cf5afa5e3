// Package store persists game state between actions. Every backend offers
// the same compare-and-set contract: Save succeeds only against the version
// it was loaded with, so two coordinators racing on one game cannot clobber
// each other. Conflicts surface as ErrStaleState and are retried with a
// fresh read.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/deikotec/caida-game/engine"
)

var (
	// ErrNotFound is returned when no game exists under the given ID.
	ErrNotFound = errors.New("store: game not found")
	// ErrStaleState is returned by Save when the stored version no longer
	// matches the loaded one.
	ErrStaleState = errors.New("store: stale state")
	// ErrAlreadyExists is returned by Create for a duplicate game ID.
	ErrAlreadyExists = errors.New("store: game already exists")
)

// Record is one persisted game: the engine state plus the version counter
// backing the compare-and-set.
type Record struct {
	ID      uuid.UUID         `json:"id"`
	Version int64             `json:"version"`
	State   engine.RoundState `json:"state"`
}

// Store is the persistence contract shared by all backends.
type Store interface {
	// Create stores a new game at version 1.
	Create(ctx context.Context, rec *Record) error
	// Load returns the current record for the game.
	Load(ctx context.Context, id uuid.UUID) (*Record, error)
	// Save writes the record if its version still matches the stored one,
	// then bumps the version. Returns ErrStaleState on a mismatch.
	Save(ctx context.Context, rec *Record) error
	// Delete removes the game. Deleting a missing game is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// maxApplyRetries bounds the optimistic-concurrency retry loop.
const maxApplyRetries = 16

// Apply runs fn against the current state and saves the result, retrying
// with a fresh read whenever the save hits a stale version. fn must be pure
// over its input state: it may run several times.
func Apply(ctx context.Context, s Store, id uuid.UUID, fn func(state *engine.RoundState) error) error {
	for attempt := 0; attempt < maxApplyRetries; attempt++ {
		rec, err := s.Load(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(&rec.State); err != nil {
			return err
		}
		err = s.Save(ctx, rec)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrStaleState) {
			return err
		}
	}
	return ErrStaleState
}
