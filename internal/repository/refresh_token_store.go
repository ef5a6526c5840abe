package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "refresh:"

// RefreshTokenStore tracks live refresh token ids. A refresh token is
// honored only while its id is present; rotation deletes the old id so a
// replayed token fails.
type RefreshTokenStore interface {
	Put(ctx context.Context, tokenID, userID string, ttl time.Duration) error
	UserID(ctx context.Context, tokenID string) (string, bool, error)
	Delete(ctx context.Context, tokenID string) error
}

type refreshTokenStore struct {
	client *redis.Client
}

// NewRefreshTokenStore returns a Redis-backed implementation.
func NewRefreshTokenStore(client *redis.Client) RefreshTokenStore {
	return &refreshTokenStore{client: client}
}

func (s *refreshTokenStore) Put(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKeyPrefix+tokenID, userID, ttl).Err()
}

func (s *refreshTokenStore) UserID(ctx context.Context, tokenID string) (string, bool, error) {
	val, err := s.client.Get(ctx, refreshKeyPrefix+tokenID).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *refreshTokenStore) Delete(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, refreshKeyPrefix+tokenID).Err()
}
