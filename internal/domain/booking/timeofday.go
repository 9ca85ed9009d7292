package booking

import (
	"fmt"
	"time"

	"github.com/barberbook/booking-api/internal/httperr"
)

// Time-of-day values are zero-padded 24h "HH:MM" strings throughout the
// scheduling core. Zero-padding makes plain string comparison equivalent
// to chronological comparison, so intervals are compared directly.

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(hm string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(hm, "%d:%d", &h, &m); err != nil {
		return 0, httperr.ErrValidation(fmt.Sprintf("invalid time %q, expected HH:MM", hm))
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, httperr.ErrValidation(fmt.Sprintf("invalid time %q, expected HH:MM", hm))
	}
	return h*60 + m, nil
}

// FormatClock converts minutes since midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CalculateEndTime derives a booking end time from its start and the
// service duration. Durations that would push past midnight are rejected;
// day rollover is not supported.
func CalculateEndTime(startTime string, durationMin int) (string, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return "", err
	}
	end := start + durationMin
	if end >= 24*60 {
		return "", httperr.ErrValidation("booking cannot extend past the end of the day")
	}
	return FormatClock(end), nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching boundaries do not overlap, which is
// what allows back-to-back bookings.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// DayName returns the lowercase English weekday name used as the schedule
// key for a calendar date.
func DayName(date time.Time) string {
	switch date.Weekday() {
	case time.Sunday:
		return "sunday"
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	}
	return ""
}

// DateOnly normalizes a timestamp to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
