package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Cheskazzzz/portal-master/domain"
)

// TokenRepositoryImpl implements domain.TokenRepository using Redis.
// Entries expire on their own; Delete makes consumption single-use.
type TokenRepositoryImpl struct {
	client *redis.Client
	prefix string
}

// NewTokenRepository creates a token repository under the given key prefix
func NewTokenRepository(client *redis.Client, prefix string) domain.TokenRepository {
	return &TokenRepositoryImpl{client: client, prefix: prefix}
}

// Set implements domain.TokenRepository
func (r *TokenRepositoryImpl) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, r.prefix+token, userID, ttl).Err()
}

// Get implements domain.TokenRepository; an absent or expired token is
// domain.ErrTokenInvalid
func (r *TokenRepositoryImpl) Get(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, r.prefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrTokenInvalid
		}
		return "", err
	}
	return userID, nil
}

// Delete implements domain.TokenRepository
func (r *TokenRepositoryImpl) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.prefix+token).Err()
}
