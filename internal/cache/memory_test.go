package cache

import (
	"context"
	"testing"

	"github.com/growlog/growlog-api/internal/domain"
)

func TestMemoryStatsCacheRoundTrip(t *testing.T) {
	c := NewMemoryStatsCache()
	ctx := context.Background()

	if _, ok := c.GetWeekly(ctx, 1, "2025-03-15"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	stats := &domain.WeeklyStats{AISampleCount: 3, Period: "weekly"}
	c.SetWeekly(ctx, 1, "2025-03-15", stats)

	got, ok := c.GetWeekly(ctx, 1, "2025-03-15")
	if !ok {
		t.Fatalf("expected hit after set")
	}
	if got.AISampleCount != 3 {
		t.Errorf("sample count = %d, want 3", got.AISampleCount)
	}

	// Days and users are independent keys.
	if _, ok := c.GetWeekly(ctx, 1, "2025-03-16"); ok {
		t.Errorf("unexpected hit for a different day")
	}
	if _, ok := c.GetWeekly(ctx, 2, "2025-03-15"); ok {
		t.Errorf("unexpected hit for a different user")
	}
}

func TestMemoryStatsCacheInvalidateUser(t *testing.T) {
	c := NewMemoryStatsCache()
	ctx := context.Background()

	c.SetWeekly(ctx, 1, "2025-03-15", &domain.WeeklyStats{Period: "weekly"})
	c.SetWeekly(ctx, 1, "2025-03-16", &domain.WeeklyStats{Period: "weekly"})
	c.SetWeekly(ctx, 2, "2025-03-15", &domain.WeeklyStats{Period: "weekly"})

	c.InvalidateUser(ctx, 1)

	if _, ok := c.GetWeekly(ctx, 1, "2025-03-15"); ok {
		t.Errorf("user 1 entry survived invalidation")
	}
	if _, ok := c.GetWeekly(ctx, 1, "2025-03-16"); ok {
		t.Errorf("user 1 entry survived invalidation")
	}
	if _, ok := c.GetWeekly(ctx, 2, "2025-03-15"); !ok {
		t.Errorf("user 2 entry was dropped")
	}
}
