// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"fieldcal/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient stores calendar sessions.
var SessionCacheClient *redis.Client

// InitSessionCache connects to the Redis DB reserved for calendar sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the session client, connecting on first use.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
