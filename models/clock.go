package models

import "fmt"

// ParseClock converts an "HH:MM" string into minutes since midnight.
// Parsing into an integer keeps range checks independent of string
// zero-padding.
func ParseClock(s string) (int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockLabel renders minutes since midnight as a 12-hour display label,
// e.g. "9:00 AM".
func ClockLabel(minutes int) string {
	hour := minutes / 60
	minute := minutes % 60
	suffix := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		hour -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}
