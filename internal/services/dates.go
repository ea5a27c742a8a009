package services

import (
	"errors"

	"github.com/growlog/growlog-api/internal/dateutil"
	apperrors "github.com/growlog/growlog-api/internal/errors"
)

const invalidDateMessage = "invalid date format, expected YYYY-MM-DD"

// resolveDay maps a date query parameter (possibly empty) to its day bucket,
// converting a parse failure into a validation error for the boundary.
func resolveDay(date string) (dateutil.Range, error) {
	bucket, err := dateutil.DayBucket(date)
	if err != nil {
		if errors.Is(err, dateutil.ErrInvalidDate) {
			return dateutil.Range{}, apperrors.NewValidationError(invalidDateMessage)
		}
		return dateutil.Range{}, err
	}
	return bucket, nil
}

// resolveWeek maps a date query parameter to its trailing 7-day window.
func resolveWeek(date string) (dateutil.Range, error) {
	window, err := dateutil.WeekBucket(date)
	if err != nil {
		if errors.Is(err, dateutil.ErrInvalidDate) {
			return dateutil.Range{}, apperrors.NewValidationError(invalidDateMessage)
		}
		return dateutil.Range{}, err
	}
	return window, nil
}
