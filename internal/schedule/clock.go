package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeClock reduces a time-of-day string to zero-padded "HH:MM".
// Seconds, if present, are stripped. Values that do not look like a
// clock time are returned unchanged so a bad value shows up verbatim in
// diffs instead of silently matching something.
func NormalizeClock(s string) string {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return s
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return s
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return s
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// ClockMinutes converts a normalized "HH:MM" string to minutes since
// midnight. The second return is false for malformed input.
func ClockMinutes(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// MinutesClock is the inverse of ClockMinutes.
func MinutesClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
