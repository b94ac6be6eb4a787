package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		panic(fmt.Sprintf("❌ invalid REDIS_URL: %v", err))
	}

	RedisClient = redis.NewClient(opt)

	res, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		// the site keeps serving without rate limiting
		log.Printf("⚠️  Redis unavailable, rate limiting disabled: %v", err)
		RedisClient = nil
		return
	}
	log.Println("✅ Connected to Redis:", res)
}

// PingRedis reports Redis health; a disabled client is not an error.
func PingRedis(ctx context.Context) error {
	if RedisClient == nil {
		return nil
	}
	return RedisClient.Ping(ctx).Err()
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
		log.Println("✅ Redis connection closed")
	}
}
