package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	displayDateLayout     = "Jan 2, 2006"
	displayDateTimeLayout = "Jan 2, 2006 3:04 PM"
)

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(value))
}

// parseAPITime accepts the timestamp shapes the API returns.
func parseAPITime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, time.DateOnly} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an API timestamp or date as "Jan 2, 2006". Values that
// do not parse are returned untouched.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	parsed, ok := parseAPITime(value)
	if !ok {
		return value
	}
	return parsed.Format(displayDateLayout)
}

func FormatDateTime(value string, location *time.Location) string {
	if value == "" {
		return ""
	}
	parsed, ok := parseAPITime(value)
	if !ok {
		return value
	}
	if location != nil {
		parsed = parsed.In(location)
	}
	return parsed.Format(displayDateTimeLayout)
}

// FormatDuration renders milliseconds as "2d 3h", "1h 30m" or "45m", leaving
// out zero parts. Anything below a minute is "0m".
func FormatDuration(milliseconds int64) string {
	if milliseconds < 0 {
		milliseconds = -milliseconds
	}
	totalMinutes := milliseconds / int64(time.Minute/time.Millisecond)

	days := totalMinutes / (24 * 60)
	hours := (totalMinutes % (24 * 60)) / 60
	minutes := totalMinutes % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if len(parts) == 0 {
		return "0m"
	}
	return strings.Join(parts, " ")
}

// FormatTimeOfDay renders milliseconds since midnight as HH:MM.
func FormatTimeOfDay(milliseconds int64) string {
	totalMinutes := (milliseconds / int64(time.Minute/time.Millisecond)) % (24 * 60)
	if totalMinutes < 0 {
		totalMinutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// AgeFromBirthDate returns full years between birthDate and now.
func AgeFromBirthDate(birthDate string, now time.Time) (int, bool) {
	born, err := ParseDate(birthDate)
	if err != nil || born.After(now) {
		return 0, false
	}

	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age, true
}
