// Package calendar handles date parsing and formatting for the two
// supported calendar systems: Gregorian and Jalali (Persian solar).
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Mode selects the active calendar system.
type Mode string

const (
	Gregorian Mode = "gregorian"
	Jalali    Mode = "jalali"
)

// Modes lists the supported calendar modes.
var Modes = []Mode{Gregorian, Jalali}

// ValidMode reports whether s names a supported calendar mode.
func ValidMode(s string) bool {
	return s == string(Gregorian) || s == string(Jalali)
}

// Calendar interprets date strings under a fixed mode.
type Calendar struct {
	mode Mode
}

// New returns a Calendar for the given mode.
func New(mode string) (Calendar, error) {
	if !ValidMode(mode) {
		return Calendar{}, fmt.Errorf("unsupported calendar mode %q (must be gregorian or jalali)", mode)
	}
	return Calendar{mode: Mode(mode)}, nil
}

// Mode returns the active calendar mode.
func (c Calendar) Mode() Mode {
	return c.mode
}

// Canonical validates s as a date in the active calendar and returns it
// in canonical YYYY-MM-DD form. Both "-" and "/" separators are accepted
// on input.
func (c Calendar) Canonical(s string) (string, error) {
	y, m, d, err := c.parse(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), nil
}

// Today returns today's date in canonical form under the active calendar.
func (c Calendar) Today() string {
	if c.mode == Jalali {
		now := ptime.Now()
		return fmt.Sprintf("%04d-%02d-%02d", now.Year(), int(now.Month()), now.Day())
	}
	return time.Now().Format("2006-01-02")
}

// Display renders a canonical date for table output as YYYY/MM/DD.
// An unparsable value is returned unchanged.
func (c Calendar) Display(s string) string {
	y, m, d, err := c.parse(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%04d/%02d/%02d", y, m, d)
}

func (c Calendar) parse(s string) (year, month, day int, err error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), "/", "-")
	parts := strings.Split(normalized, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("date %q is not in YYYY-MM-DD form", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(strings.TrimSpace(p))
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("date %q is not in YYYY-MM-DD form", s)
		}
		nums[i] = n
	}
	year, month, day = nums[0], nums[1], nums[2]

	if c.mode == Jalali {
		if !validJalali(year, month, day) {
			return 0, 0, 0, fmt.Errorf("%04d-%02d-%02d is not a valid Jalali date", year, month, day)
		}
		return year, month, day, nil
	}

	if !validGregorian(year, month, day) {
		return 0, 0, 0, fmt.Errorf("%04d-%02d-%02d is not a valid Gregorian date", year, month, day)
	}
	return year, month, day, nil
}

// validJalali checks a Jalali date by constructing it and verifying the
// components survive normalization (ptime.Date rolls overflow forward,
// the same way time.Date does).
func validJalali(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	pt := ptime.Date(year, ptime.Month(month), day, 12, 0, 0, 0, ptime.Iran())
	return pt.Year() == year && int(pt.Month()) == month && pt.Day() == day
}

func validGregorian(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
