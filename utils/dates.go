package utils

import "time"

// Games and matches carry date-only and time-only columns; comparisons are
// date-only, ignoring time of day.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Today returns the current local date truncated to midnight.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func TodayString() string {
	return Today().Format(DateLayout)
}

// DateBeforeToday reports whether the given YYYY-MM-DD date lies in the past.
// Malformed dates report false; validation happens at the binding layer.
func DateBeforeToday(dateStr string) bool {
	d, err := ParseDate(dateStr)
	if err != nil {
		return false
	}
	return d.Before(Today())
}

// DateIsToday reports whether the given YYYY-MM-DD date is today.
func DateIsToday(dateStr string) bool {
	return dateStr == TodayString()
}
