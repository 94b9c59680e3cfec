package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key prefix keeps the revocation ledger apart from other keys on a
// shared instance.
const bannedTokenKeyPrefix = "banned_token:"

// BannedTokenStore records revoked tokens as TTL'd redis keys, so
// revocation entries never outlive the token they revoke.
type BannedTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBannedTokenStore(client *redis.Client, ttl time.Duration) *BannedTokenStore {
	return &BannedTokenStore{client: client, ttl: ttl}
}

func (s *BannedTokenStore) AddToken(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, bannedTokenKey(token), true, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set banned token: %w", err)
	}

	return nil
}

func (s *BannedTokenStore) HasToken(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, bannedTokenKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check banned token: %w", err)
	}

	return n > 0, nil
}

func bannedTokenKey(token string) string {
	return bannedTokenKeyPrefix + token
}
