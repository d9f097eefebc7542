package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	clockRegex    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	dateTimeRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})(?:\s+(\d{1,2}):(\d{2}))?$`)
	agoRegex      = regexp.MustCompile(`^(\d+)\s*(m|min|mins|minute|minutes|h|hr|hrs|hour|hours)\s+ago$`)
)

// ParseTime parses a session start or end time relative to now
// Supported formats:
// - "now"
// - HH:MM (e.g., "19:30") - today; yesterday if that would be in the future
// - dd/mm/yyyy [HH:MM] (e.g., "15/12/2024 21:00")
// - RFC3339 (e.g., "2024-12-15T21:00:00Z")
// - X minutes/hours ago (e.g., "90 minutes ago", "2h ago")
func ParseTime(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || input == "now" {
		return now, nil
	}

	if t, err := time.Parse(time.RFC3339, strings.ToUpper(input)); err == nil {
		return t, nil
	}

	if t, ok := parseClock(input, now); ok {
		return t, nil
	}

	if t, err := parseDateTime(input, now.Location()); err == nil {
		return t, nil
	} else if dateTimeRegex.MatchString(input) {
		return time.Time{}, err
	}

	if t, ok := parseAgo(input, now); ok {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid time '%s'. Use: now, HH:MM, dd/mm/yyyy HH:MM, or X minutes/hours ago", input)
}

// parseClock parses HH:MM as the most recent such time
func parseClock(input string, now time.Time) (time.Time, bool) {
	matches := clockRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return time.Time{}, false
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	if hour > 23 || minute > 59 {
		return time.Time{}, false
	}

	t := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if t.After(now) {
		// A session that "started at 23:00" when it's 01:00 began yesterday
		t = t.AddDate(0, 0, -1)
	}
	return t, true
}

// parseDateTime parses dd/mm/yyyy with an optional HH:MM
func parseDateTime(input string, loc *time.Location) (time.Time, error) {
	matches := dateTimeRegex.FindStringSubmatch(input)
	if len(matches) != 6 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	hour, minute := 0, 0
	if matches[4] != "" {
		hour, _ = strconv.Atoi(matches[4])
		minute, _ = strconv.Atoi(matches[5])
	}

	// Validate ranges
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid time of day %02d:%02d", hour, minute)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)

	// Check the date didn't roll over (handles 31/02, leap years, etc.)
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return t, nil
}

// parseAgo parses relative offsets like "45 min ago" or "2 hours ago"
func parseAgo(input string, now time.Time) (time.Time, bool) {
	matches := agoRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return time.Time{}, false
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, false
	}

	switch matches[2] {
	case "m", "min", "mins", "minute", "minutes":
		return now.Add(-time.Duration(amount) * time.Minute), true
	default:
		return now.Add(-time.Duration(amount) * time.Hour), true
	}
}
