package database

import (
	"context"
	"fmt"
	"log"
	"proacolhe-service/internal/app/config"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// NewRedisClient backs sessions, login throttling and the reset and backup
// locks. The service does not start without it.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	addr := fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to redis at %s: %v", addr, err)
	}

	log.Printf("Successfully connected to redis at %s (db %d)", addr, driverConfig.Redis.DB)
	return rdb
}
