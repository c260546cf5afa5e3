package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore persists games as JSON values in Redis. The compare-and-set
// runs as a WATCH/MULTI/EXEC transaction on the game key, so a concurrent
// write between Load and Save aborts the EXEC and reports stale state.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing Redis client. A zero ttl keeps games
// forever; finished games are expected to be Deleted by the caller.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func gameKey(id uuid.UUID) string {
	return "caida:game:" + id.String()
}

// Create stores a new game at version 1.
func (s *RedisStore) Create(ctx context.Context, rec *Record) error {
	rec.Version = 1
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	ok, err := s.client.SetNX(ctx, gameKey(rec.ID), data, s.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyExists
	}
	return nil
}

// Load returns the current record.
func (s *RedisStore) Load(ctx context.Context, id uuid.UUID) (*Record, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Save applies the compare-and-set inside a WATCH transaction.
func (s *RedisStore) Save(ctx context.Context, rec *Record) error {
	key := gameKey(rec.ID)

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var cur Record
		if err := json.Unmarshal(data, &cur); err != nil {
			return err
		}
		if cur.Version != rec.Version {
			return ErrStaleState
		}

		next := *rec
		next.Version = rec.Version + 1
		payload, err := json.Marshal(&next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})
		return err
	}, key)

	// A write squeezing in between GET and EXEC aborts the transaction.
	if errors.Is(err, redis.TxFailedErr) {
		return ErrStaleState
	}
	if err != nil {
		return err
	}
	rec.Version++
	return nil
}

// Delete removes the game.
func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, gameKey(id)).Err()
}
