package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps games in process memory. The default backend for tests
// and single-node play.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[uuid.UUID]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{games: make(map[uuid.UUID]Record)}
}

// Create stores a new game at version 1.
func (s *MemoryStore) Create(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[rec.ID]; ok {
		return ErrAlreadyExists
	}
	rec.Version = 1
	s.games[rec.ID] = *rec
	return nil
}

// Load returns a copy of the current record.
func (s *MemoryStore) Load(ctx context.Context, id uuid.UUID) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

// Save applies the compare-and-set against the stored version.
func (s *MemoryStore) Save(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.games[rec.ID]
	if !ok {
		return ErrNotFound
	}
	if cur.Version != rec.Version {
		return ErrStaleState
	}
	rec.Version++
	s.games[rec.ID] = *rec
	return nil
}

// Delete removes the game.
func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}
