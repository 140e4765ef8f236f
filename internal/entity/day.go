package entity

import (
	"fmt"
	"time"
)

const secondsPerDay = 86400

// ParseDay parses a YYYY-MM-DD date as local midnight.
func ParseDay(s string) (time.Time, error) {
	day, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidDay, s, err)
	}

	return day, nil
}

// CreatedAtRange returns the created_at filter bounds for the given day.
func CreatedAtRange(day time.Time) (from, to int64) {
	from = day.Unix()

	return from, from + secondsPerDay
}
