package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestDayBucket(t *testing.T) {
	bucket, err := DayBucket("2025-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	if !bucket.Start.Equal(want) {
		t.Errorf("start = %v, want %v", bucket.Start, want)
	}
	if !bucket.End.Equal(want.AddDate(0, 0, 1)) {
		t.Errorf("end = %v, want %v", bucket.End, want.AddDate(0, 0, 1))
	}
	if h, m, s := bucket.Start.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("start is not midnight: %v", bucket.Start)
	}
}

func TestDayBucketEmptyDefaultsToToday(t *testing.T) {
	bucket, err := DayBucket("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Now()
	want := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if !bucket.Start.Equal(want) {
		t.Errorf("start = %v, want %v", bucket.Start, want)
	}
}

func TestDayBucketInvalid(t *testing.T) {
	for _, input := range []string{"2025-13-40", "15-03-2025", "not-a-date", "2025-03-15T10:00:00Z"} {
		if _, err := DayBucket(input); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("DayBucket(%q) error = %v, want ErrInvalidDate", input, err)
		}
	}
}

func TestWeekBucket(t *testing.T) {
	window, err := WeekBucket("2025-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local)
	if !window.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", window.Start, wantStart)
	}

	// End is the last instant of the reference day, so a record stamped at
	// exactly the next midnight falls outside the window.
	nextMidnight := time.Date(2025, 3, 16, 0, 0, 0, 0, time.Local)
	if !window.End.Before(nextMidnight) {
		t.Errorf("end %v is not before next midnight", window.End)
	}
	if nextMidnight.Sub(window.End) != time.Nanosecond {
		t.Errorf("end %v is not the last instant of the day", window.End)
	}
}

func TestWeekBucketSpansSevenDays(t *testing.T) {
	window, err := WeekBucket("2025-01-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Crosses the year boundary back into December.
	wantStart := time.Date(2024, 12, 28, 0, 0, 0, 0, time.Local)
	if !window.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", window.Start, wantStart)
	}
}

func TestMonthBucket(t *testing.T) {
	bucket, err := MonthBucket("2025-02-17")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	if !bucket.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", bucket.Start, wantStart)
	}
	if !bucket.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", bucket.End, wantEnd)
	}
}
