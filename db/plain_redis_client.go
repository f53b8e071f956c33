package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// PlainRedisClient struct holds the Redis client and context
type PlainRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewPlainRedisClient initializes a new Redis client wrapper
func NewPlainRedisClient(ctx context.Context, client *redis.Client) *PlainRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &PlainRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis with no expiry
func (r *PlainRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// SetWithTTL sets a key-value pair that expires after ttl
func (r *PlainRedisClient) SetWithTTL(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis
func (r *PlainRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

func (r *PlainRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *PlainRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *PlainRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *PlainRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
