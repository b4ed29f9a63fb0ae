// File: ziplay/utils/auth_session.go
package utils

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// CacheAuthToken stores the hash of an issued token so it can be checked and
// revoked. One active session per user.
func CacheAuthToken(client *redis.Client, userID, token string) error {
	ctx := context.Background()
	if err := client.Set(ctx, AuthCachePrefix+userID, HashToken(token), AuthTokenTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache auth token: %w", err)
	}
	return nil
}

// VerifyAuthToken reports whether the presented token matches the cached
// session for the user.
func VerifyAuthToken(client *redis.Client, userID, token string) (bool, error) {
	ctx := context.Background()
	cached, err := client.Get(ctx, AuthCachePrefix+userID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read auth cache: %w", err)
	}
	return cached == HashToken(token), nil
}

// RevokeAuthToken removes the cached session for the user.
func RevokeAuthToken(client *redis.Client, userID string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthCachePrefix+userID).Err()
}
