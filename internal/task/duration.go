package task

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Durations are stored as free text ("2h", "30min", "1h 30min"). For
// statistics they are parsed into minutes; for display the normalized
// form is kept alongside whatever the user typed.

var durationToken = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*(hours?|hrs?|h|minutes?|mins?|m)?\s*`)

// ParseDuration parses a free-form duration expression into total
// minutes. A bare number is taken as minutes. Fractional hours are
// rounded to the nearest minute.
func ParseDuration(s string) (int, error) {
	rest := strings.TrimSpace(s)
	if rest == "" {
		return 0, fmt.Errorf("empty duration")
	}

	total := 0.0
	matched := false
	for rest != "" {
		loc := durationToken.FindStringSubmatchIndex(rest)
		if loc == nil {
			return 0, fmt.Errorf("cannot parse duration %q", s)
		}
		value, err := strconv.ParseFloat(rest[loc[2]:loc[3]], 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse duration %q", s)
		}
		unit := ""
		if loc[4] >= 0 {
			unit = strings.ToLower(rest[loc[4]:loc[5]])
		}
		switch {
		case strings.HasPrefix(unit, "h"):
			total += value * 60
		default: // minutes, including bare numbers
			total += value
		}
		matched = true
		rest = rest[loc[1]:]
	}
	if !matched {
		return 0, fmt.Errorf("cannot parse duration %q", s)
	}
	return int(total + 0.5), nil
}

// NormalizeDuration renders a duration expression in canonical
// "Xh Ymin" form. Unparsable input is returned trimmed but otherwise
// untouched, so odd entries survive round trips.
func NormalizeDuration(s string) string {
	minutes, err := ParseDuration(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return FormatMinutes(minutes)
}

// FormatMinutes renders a minute count as "Xh", "Ymin" or "Xh Ymin".
func FormatMinutes(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dmin", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dmin", m)
	}
}
