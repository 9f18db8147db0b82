package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis wires the optional competition-list cache. A missing
// REDIS_ADDR simply leaves Redis nil and the cache disabled.
func ConnectRedis(cfg *Config) {
	if cfg.RedisAddr == "" {
		log.Println("[INFO] REDIS_ADDR not set, competition cache disabled")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if _, err := Redis.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Redis unreachable, competition cache disabled: %v", err)
		Redis = nil
		return
	}

	log.Println("✅ Redis connected")
}
