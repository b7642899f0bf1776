package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/bloom/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == constants.DefaultTimezone {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// DayKey returns the calendar-day key (YYYY-MM-DD) for a timestamp, in the
// timestamp's own location.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// GetTodayInTimezone returns today's day key in the specified timezone.
// "Today" is determined by the user's configured timezone, not the system
// timezone.
func GetTodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return DayKey(now), nil
}

// IsWithinLastNDays reports whether ts falls within the last n days ending
// at now. The lower bound is inclusive: a timestamp exactly n days old
// still qualifies. Both windowed scores (mood and reflection) use this so
// the boundary policy stays consistent.
func IsWithinLastNDays(ts, now time.Time, n int) bool {
	cutoff := now.AddDate(0, 0, -n)
	return !ts.Before(cutoff)
}

// LastNDays returns the n calendar-day keys ending at now, oldest first.
// It always produces exactly n entries; days with no recorded score simply
// have no matching history entry.
func LastNDays(now time.Time, n int) []string {
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, DayKey(now.AddDate(0, 0, -i)))
	}
	return keys
}

// ParseDayKey parses a day key (YYYY-MM-DD) in the specified location.
func ParseDayKey(dayKey string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dayKey)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == constants.DefaultTimezone {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
