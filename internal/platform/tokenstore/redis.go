// Package tokenstore backs the bearer-token allow-list and password-reset
// tokens with Redis.
package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"upsc_portal/internal/common"
	"upsc_portal/internal/common/security"
	"upsc_portal/internal/domain/repository"
	"upsc_portal/internal/platform/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	authTokenPrefix  = "authtoken:"
	resetTokenPrefix = "resettoken:"
)

// Connect opens and pings the Redis client all stores share.
func Connect(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("tokenstore.Connect: %w", err)
	}
	return rdb, nil
}

type redisTokenStore struct {
	rdb    *redis.Client
	issuer *security.TokenIssuer
}

// NewRedisTokenStore builds a TokenStore that signs tokens with issuer and
// records them without expiry. Revocation is the only way out.
func NewRedisTokenStore(rdb *redis.Client, issuer *security.TokenIssuer) repository.TokenStore {
	return &redisTokenStore{rdb: rdb, issuer: issuer}
}

func (s *redisTokenStore) Issue(ctx context.Context, principalID string) (string, error) {
	token, err := s.issuer.Sign(principalID)
	if err != nil {
		return "", fmt.Errorf("redisTokenStore.Issue: %w", err)
	}
	if err := s.rdb.Set(ctx, authTokenPrefix+token, principalID, 0).Err(); err != nil {
		return "", fmt.Errorf("redisTokenStore.Issue: %w", err)
	}
	return token, nil
}

func (s *redisTokenStore) IsValid(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, authTokenPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("redisTokenStore.IsValid: %w", err)
	}
	return n > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, token string) error {
	n, err := s.rdb.Del(ctx, authTokenPrefix+token).Result()
	if err != nil {
		return fmt.Errorf("redisTokenStore.Revoke: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

type redisResetTokenStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisResetTokenStore(rdb *redis.Client, ttl time.Duration) repository.ResetTokenStore {
	return &redisResetTokenStore{rdb: rdb, ttl: ttl}
}

func (s *redisResetTokenStore) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, resetTokenPrefix+token, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("redisResetTokenStore.Create: %w", err)
	}
	return token, nil
}

func (s *redisResetTokenStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.GetDel(ctx, resetTokenPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("redisResetTokenStore.Consume: %w", err)
	}
	return userID, nil
}
