package database

import (
	"context"
	"invest/config"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is the global redis client, used by the API rate limiter
var Redis *redis.Client

// ConnectRedis establishes the redis connection used for request counters
func ConnectRedis() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis not reachable (%v). API rate limiting is disabled.", err)
		return
	}

	Redis = client
}
