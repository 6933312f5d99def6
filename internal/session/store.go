// Package session implements server-side session identity: an opaque token
// handed to the browser in a cookie, mapped to a user id in redis.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"sharebnb/internal/config"
)

const keyPrefix = "session:"

// NewRedisClient connects to redis using the service configuration and
// verifies the connection before returning.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// Store maps session tokens to user ids with a fixed TTL. There is no
// rotation or multi-session invalidation; logout deletes the single token.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Create binds a fresh opaque token to userID and returns the token.
func (s *Store) Create(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	err := s.client.Set(ctx, keyPrefix+token, strconv.FormatUint(uint64(userID), 10), s.ttl).Err()
	if err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// UserID resolves a token to the bound user id. The second return value
// reports whether the session exists.
func (s *Store) UserID(ctx context.Context, token string) (uint, bool, error) {
	value, err := s.client.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to load session: %w", err)
	}

	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt session value %q: %w", value, err)
	}
	return uint(id), true, nil
}

// Destroy removes the session binding. Destroying an unknown token is not
// an error.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
