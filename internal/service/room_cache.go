package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
)

// RoomCache caches the full room list. A miss is (nil, nil); errors are
// reserved for infrastructure failures.
type RoomCache interface {
	Get(ctx context.Context) ([]*domain.Room, error)
	Set(ctx context.Context, rooms []*domain.Room) error
	Invalidate(ctx context.Context) error
}

const roomCacheKey = "rooms:all"

// RedisRoomCache caches rooms in Redis as a JSON blob
type RedisRoomCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRoomCache creates a Redis-backed room cache
func NewRedisRoomCache(client *redis.Client, ttl time.Duration) *RedisRoomCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisRoomCache{client: client, ttl: ttl}
}

// Get returns the cached room list, (nil, nil) on a miss
func (c *RedisRoomCache) Get(ctx context.Context) ([]*domain.Room, error) {
	data, err := c.client.Get(ctx, roomCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("room cache get failed: %w", err)
	}

	var rooms []*domain.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, fmt.Errorf("room cache decode failed: %w", err)
	}
	return rooms, nil
}

// Set stores the room list with the configured TTL
func (c *RedisRoomCache) Set(ctx context.Context, rooms []*domain.Room) error {
	data, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("room cache encode failed: %w", err)
	}
	if err := c.client.Set(ctx, roomCacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("room cache set failed: %w", err)
	}
	return nil
}

// Invalidate drops the cached room list
func (c *RedisRoomCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, roomCacheKey).Err(); err != nil {
		return fmt.Errorf("room cache invalidate failed: %w", err)
	}
	return nil
}

// NoOpRoomCache always misses, used when Redis is unavailable or disabled
type NoOpRoomCache struct{}

// Get always misses
func (c *NoOpRoomCache) Get(context.Context) ([]*domain.Room, error) { return nil, nil }

// Set does nothing
func (c *NoOpRoomCache) Set(context.Context, []*domain.Room) error { return nil }

// Invalidate does nothing
func (c *NoOpRoomCache) Invalidate(context.Context) error { return nil }
