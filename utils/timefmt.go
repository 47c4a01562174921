// File: utils/timefmt.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date form used across availability and appointments.
const DateLayout = "2006-01-02"

// TimeParseError reports a malformed "HH:MM" clock string.
type TimeParseError struct {
	Input string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("invalid clock time %q: expected \"HH:MM\"", e.Input)
}

// ToMinutes parses a 24-hour "HH:MM" clock string into minutes since midnight.
func ToMinutes(clock string) (int, error) {
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, &TimeParseError{Input: clock}
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, &TimeParseError{Input: clock}
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, &TimeParseError{Input: clock}
	}
	return h*60 + m, nil
}

// MinutesToClock renders minutes since midnight as "HH:MM", wrapping within a
// 24-hour clock. Slots never cross midnight, so no day-rollover is tracked.
func MinutesToClock(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes shifts a "HH:MM" clock string by delta minutes.
func AddMinutes(clock string, delta int) (string, error) {
	m, err := ToMinutes(clock)
	if err != nil {
		return "", err
	}
	return MinutesToClock(m + delta), nil
}

// FormatTwelveHour renders a 24-hour clock string as "H:MM AM/PM".
func FormatTwelveHour(clock string) (string, error) {
	m, err := ToMinutes(clock)
	if err != nil {
		return "", err
	}
	h, mm := m/60, m%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, mm, suffix), nil
}

// FormatDateLabel renders an ISO date as "Jan 2, 2006" for display.
func FormatDateLabel(isoDate string) (string, error) {
	d, err := time.Parse(DateLayout, isoDate)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", isoDate, err)
	}
	return d.Format("Jan 2, 2006"), nil
}

// WeekdayOf returns the weekday name for an ISO date, cached onto
// availability entries for display.
func WeekdayOf(isoDate string) (string, error) {
	d, err := time.Parse(DateLayout, isoDate)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", isoDate, err)
	}
	return d.Weekday().String(), nil
}
