package utils

import (
	"context"
	"log"
	"time"

	"labtrack/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated Redis client for auth token caching.
var AuthCacheClient *redis.Client

const authTokenPrefix = "authToken:"

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// SaveAuthToken records a live token hash for a user so it can be checked and
// revoked before its JWT expiry.
func SaveAuthToken(client *redis.Client, userID, tokenHash string, ttl time.Duration) error {
	ctx := context.Background()
	return client.Set(ctx, authTokenPrefix+tokenHash, userID, ttl).Err()
}

// AuthTokenLive reports whether the token hash is still live (not revoked).
func AuthTokenLive(client *redis.Client, tokenHash string) (bool, error) {
	ctx := context.Background()
	_, err := client.Get(ctx, authTokenPrefix+tokenHash).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RevokeAuthToken drops a token hash so the bearer token stops working.
func RevokeAuthToken(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, authTokenPrefix+tokenHash).Err()
}
