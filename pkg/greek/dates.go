package greek

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var dateSeparators = regexp.MustCompile(`[/.-]`)

// ParseFlexibleDate parses date strings with /, . or - separators and
// either day-first or month-first ordering. A component greater than 12
// pins the day; ambiguous dates are read day-first, as is common in
// Greece. Two-digit years are taken as 20xx.
func ParseFlexibleDate(s string) (time.Time, error) {
	parts := dateSeparators.Split(s, -1)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("unrecognized date: %q", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("unrecognized date: %q", s)
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	if day <= 12 && month > 12 {
		day, month = month, day
	}
	if year < 2000 {
		year += 2000
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (32/01 becomes 01/02); reject that.
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return t, nil
}

// FormatProse renders a date as Greek prose, e.g. "3 Νοεμβρίου 2025".
func FormatProse(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), MonthGenitive(int(t.Month())), t.Year())
}

// DatePath renders the stats-tree date segments for a date, e.g.
// "2025/Νοέμβριος/3".
func DatePath(t time.Time) string {
	return fmt.Sprintf("%d/%s/%d", t.Year(), MonthNominative(int(t.Month())), t.Day())
}
