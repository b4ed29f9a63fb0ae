// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"ziplay/config"

	"github.com/go-redis/redis/v8"
)

var (
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// CheckoutCacheClient holds in-flight checkout attempts.
	CheckoutCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	CheckoutCacheClient = newRedisClient(config.AppConfig.RedisCheckoutDB)
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetCheckoutCacheClient returns the Redis client for checkout attempts.
func GetCheckoutCacheClient() *redis.Client {
	if CheckoutCacheClient == nil {
		CheckoutCacheClient = newRedisClient(config.AppConfig.RedisCheckoutDB)
	}
	return CheckoutCacheClient
}
