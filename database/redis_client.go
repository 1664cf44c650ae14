package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"nft-asset-bridge/conf"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	ctx         = context.Background()
)

// InitRedis initialize Redis client
func InitRedis() error {
	if !conf.Cfg.Redis.Enabled {
		log.Println("Redis cache is disabled")
		return nil
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.Cfg.Redis.Host, conf.Cfg.Redis.Port),
		Password: conf.Cfg.Redis.Password,
		DB:       conf.Cfg.Redis.DB,
	})

	// Test connection
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Redis cache will be disabled")
		RedisClient = nil
		return err
	}

	log.Printf("Redis connected successfully: %s:%d (DB: %d, TTL: %ds)",
		conf.Cfg.Redis.Host, conf.Cfg.Redis.Port, conf.Cfg.Redis.DB, conf.Cfg.Redis.CacheTTL)
	return nil
}

// CloseRedis close Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// SetCache set cache with TTL. Committed records are immutable, so a stale
// entry can never disagree with the store.
func SetCache(key string, value interface{}) error {
	if RedisClient == nil || !conf.Cfg.Redis.Enabled {
		return nil // Cache disabled, skip silently
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %w", err)
	}

	ttl := time.Duration(conf.Cfg.Redis.CacheTTL) * time.Second
	if err := RedisClient.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("Failed to set cache for key %s: %v", key, err)
		return err
	}

	return nil
}

// GetCache get cache by key
func GetCache(key string, dest interface{}) error {
	if RedisClient == nil || !conf.Cfg.Redis.Enabled {
		return redis.Nil // Cache disabled, return cache miss
	}

	data, err := RedisClient.Get(ctx, key).Result()
	if err != nil {
		return err // redis.Nil if key not found
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to unmarshal cache data: %w", err)
	}

	return nil
}
