package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/growlog/growlog-api/internal/domain"
	"github.com/growlog/growlog-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

const statsTTL = 10 * time.Minute

// RedisStatsCache caches weekly stats in Redis. All records for one user live
// under a single key as a JSON map keyed by reference day, so invalidating a
// user after a write is a single DEL.
type RedisStatsCache struct {
	client *redis.Client
}

// NewRedisStatsCache creates a Redis-backed stats cache
func NewRedisStatsCache(addr, password string, db int) (*RedisStatsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStatsCache{client: client}, nil
}

// GetWeekly returns the cached weekly stats for the user and reference day.
func (c *RedisStatsCache) GetWeekly(ctx context.Context, userID uint, day string) (*domain.WeeklyStats, bool) {
	entries := c.getStatsMap(ctx, userID)
	if entries == nil {
		return nil, false
	}
	stats, ok := entries[day]
	if !ok {
		return nil, false
	}
	return &stats, true
}

// SetWeekly stores the weekly stats for the user and reference day.
func (c *RedisStatsCache) SetWeekly(ctx context.Context, userID uint, day string, stats *domain.WeeklyStats) {
	entries := c.getStatsMap(ctx, userID)
	if entries == nil {
		entries = make(map[string]domain.WeeklyStats)
	}
	entries[day] = *stats
	c.saveStatsMap(ctx, userID, entries)
}

// InvalidateUser drops every cached window for the user.
func (c *RedisStatsCache) InvalidateUser(ctx context.Context, userID uint) {
	if err := c.client.Del(ctx, statsKey(userID)).Err(); err != nil {
		logger.Warn("Failed to invalidate stats cache", "user_id", userID, "error", err)
	}
}

// Close closes the Redis connection
func (c *RedisStatsCache) Close() error {
	return c.client.Close()
}

func statsKey(userID uint) string {
	return fmt.Sprintf("user:%d:weekly_stats", userID)
}

func (c *RedisStatsCache) getStatsMap(ctx context.Context, userID uint) map[string]domain.WeeklyStats {
	result := c.client.Get(ctx, statsKey(userID))
	if result.Err() != nil {
		return nil
	}

	var entries map[string]domain.WeeklyStats
	if err := json.Unmarshal([]byte(result.Val()), &entries); err != nil {
		return nil
	}
	return entries
}

func (c *RedisStatsCache) saveStatsMap(ctx context.Context, userID uint, entries map[string]domain.WeeklyStats) {
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKey(userID), data, statsTTL).Err(); err != nil {
		logger.Warn("Failed to write stats cache", "user_id", userID, "error", err)
	}
}
