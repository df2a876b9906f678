package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether every dependency answered.
func (h HealthStatus) Healthy() bool {
	return h.Mongo && h.Redis
}

// CheckHealth pings Redis and Mongo once. A nil client counts as down.
func CheckHealth(ctx context.Context, redisClient *redis.Client, mongoClient *mongo.Client) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	if redisClient != nil {
		status.Redis = redisClient.Ping(ctx).Err() == nil
	}
	if mongoClient != nil {
		status.Mongo = mongoClient.Ping(ctx, nil) == nil
	}
	return status
}
