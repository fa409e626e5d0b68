package database

import (
	"context"
	"dentaflow-service/internal/app/config"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisConnectTimeout = 5 * time.Second

// NewRedisClient connects the store behind approval locks, webhook
// deduplication and the AI analysis quota.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password:     driverConfig.Redis.Password,
		DB:           driverConfig.Redis.DB,
		PoolSize:     driverConfig.Redis.PoolSize,
		DialTimeout:  redisConnectTimeout,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis at %s (db %d): %v", rdb.Options().Addr, driverConfig.Redis.DB, err)
	}

	log.Printf("Successfully connected to redis db %d", driverConfig.Redis.DB)
	return rdb
}
