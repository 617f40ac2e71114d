// Package cache wraps Redis for search-result caching and seller token
// revocation. The service stays fully functional when Redis is unreachable:
// New returns nil and every method on a nil *Redis is a no-op.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

const revokedKeyPrefix = "seller:revoked:"

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func New() *Redis {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	ttlSeconds := 600
	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		if t, err := strconv.Atoi(ttl); err == nil {
			ttlSeconds = t
		}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		return nil
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("Redis connection failed, caching disabled: %v", err)
		return nil
	}

	log.Printf("Redis connected, cache TTL %d seconds", ttlSeconds)
	return &Redis{client: client, ttl: time.Duration(ttlSeconds) * time.Second}
}

func (r *Redis) Available() bool {
	return r != nil && r.client != nil
}

// SearchKey builds a deterministic cache key from a filter spec.
func SearchKey(spec models.FilterSpec) string {
	key := fmt.Sprintf("search:%s:%s", strings.ToLower(spec.Query), spec.Sort)
	if len(spec.Brands) > 0 {
		key += ":b=" + strings.Join(spec.Brands, ",")
	}
	if len(spec.Categories) > 0 {
		key += ":c=" + strings.Join(spec.Categories, ",")
	}
	if spec.PriceRange != nil {
		key += fmt.Sprintf(":p=%d-%d", spec.PriceRange.Min, spec.PriceRange.Max)
	}
	return key
}

// GetSearch returns cached search results, or ok=false on miss or error.
func (r *Redis) GetSearch(ctx context.Context, key string) ([]models.Product, bool) {
	if !r.Available() {
		return nil, false
	}
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("Redis get error: %v", err)
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, false
	}
	return products, true
}

func (r *Redis) SetSearch(ctx context.Context, key string, products []models.Product) {
	if !r.Available() {
		return
	}
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		log.Printf("Failed to cache search results: %v", err)
	}
}

// RevokeToken records a logged-out session token until it would have expired
// anyway.
func (r *Redis) RevokeToken(ctx context.Context, token string, ttl time.Duration) {
	if !r.Available() {
		return
	}
	if err := r.client.Set(ctx, revokedKeyPrefix+token, "1", ttl).Err(); err != nil {
		log.Printf("Failed to revoke token: %v", err)
	}
}

// TokenRevoked reports whether the token was revoked by a logout. Without
// Redis, logout falls back to client-side token disposal.
func (r *Redis) TokenRevoked(ctx context.Context, token string) bool {
	if !r.Available() {
		return false
	}
	n, err := r.client.Exists(ctx, revokedKeyPrefix+token).Result()
	return err == nil && n > 0
}
