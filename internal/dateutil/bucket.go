package dateutil

import (
	"errors"
	"time"
)

// Layout is the wire format for all day inputs.
const Layout = "2006-01-02"

// ErrInvalidDate is returned when a date string is not a valid YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// Range is a time interval. Day and month buckets are half-open [Start, End);
// week buckets are inclusive, with End at the last instant of the reference day.
type Range struct {
	Start time.Time
	End   time.Time
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// DayBucket resolves s (YYYY-MM-DD, or empty meaning today) into the
// [local midnight, local midnight + 1 day) interval of that calendar day.
func DayBucket(s string) (Range, error) {
	day, err := parseDay(s)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: day, End: day.AddDate(0, 0, 1)}, nil
}

// WeekBucket resolves s into the trailing 7-day window ending on and
// including the reference day. End is the last instant of that day; Start is
// midnight six calendar days earlier. Not aligned to a weekday boundary.
func WeekBucket(s string) (Range, error) {
	day, err := parseDay(s)
	if err != nil {
		return Range{}, err
	}
	end := day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	start := day.AddDate(0, 0, -6)
	return Range{Start: start, End: end}, nil
}

// MonthBucket resolves s into [first of that month, first of next month).
func MonthBucket(s string) (Range, error) {
	day, err := parseDay(s)
	if err != nil {
		return Range{}, err
	}
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.Local)
	return Range{Start: start, End: start.AddDate(0, 1, 0)}, nil
}
