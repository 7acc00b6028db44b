package session

import (
	"context"
	"errors"
	"time"

	"github.com/GayaStar/adaptiveChess/internal/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a token is unknown or has expired.
var ErrNotFound = errors.New("session not found")

const keyPrefix = "session:"

// Store keeps login sessions in redis, one opaque token per login. Expiry is
// redis TTL, so stale sessions disappear without a cleanup job.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{
		rdb: rdb,
		ttl: ttl,
		log: logger.Default().WithPrefix("session"),
	}
}

// Create issues a fresh token bound to the username.
func (s *Store) Create(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, keyPrefix+token, username, s.ttl).Err(); err != nil {
		s.log.Error("failed to store session for %s: %v", username, err)
		return "", err
	}
	s.log.Debug("session created for %s", username)
	return token, nil
}

// Get resolves a token back to its username and refreshes the TTL, so active
// users aren't logged out mid-game.
func (s *Store) Get(ctx context.Context, token string) (string, error) {
	username, err := s.rdb.GetEx(ctx, keyPrefix+token, s.ttl).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

// Delete revokes a token. Deleting an unknown token is not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
