package cache

import (
	"context"
	"sync"
	"time"

	"github.com/growlog/growlog-api/internal/domain"
)

type memoryEntry struct {
	stats     domain.WeeklyStats
	expiresAt time.Time
}

// MemoryStatsCache is the single-process fallback used when no Redis address
// is configured.
type MemoryStatsCache struct {
	mu      sync.RWMutex
	entries map[uint]map[string]memoryEntry
}

// NewMemoryStatsCache creates an in-memory stats cache
func NewMemoryStatsCache() *MemoryStatsCache {
	return &MemoryStatsCache{
		entries: make(map[uint]map[string]memoryEntry),
	}
}

// GetWeekly returns the cached weekly stats for the user and reference day.
func (c *MemoryStatsCache) GetWeekly(ctx context.Context, userID uint, day string) (*domain.WeeklyStats, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[userID][day]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	stats := entry.stats
	return &stats, true
}

// SetWeekly stores the weekly stats for the user and reference day.
func (c *MemoryStatsCache) SetWeekly(ctx context.Context, userID uint, day string, stats *domain.WeeklyStats) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries[userID] == nil {
		c.entries[userID] = make(map[string]memoryEntry)
	}
	c.entries[userID][day] = memoryEntry{
		stats:     *stats,
		expiresAt: time.Now().Add(statsTTL),
	}
}

// InvalidateUser drops every cached window for the user.
func (c *MemoryStatsCache) InvalidateUser(ctx context.Context, userID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
}
