package digest

import (
	"fmt"
	"time"
)

const (
	SelectorToday     = "today"
	SelectorYesterday = "yesterday"
)

// ResolveTargetDate maps the CLI date selector to a concrete timestamp:
// "today" is the current time, "yesterday" is midnight of the previous
// calendar day.
func ResolveTargetDate(selector string, now time.Time) (time.Time, error) {
	switch selector {
	case SelectorToday:
		return now, nil
	case SelectorYesterday, "":
		y := now.AddDate(0, 0, -1)
		return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, y.Location()), nil
	default:
		return time.Time{}, fmt.Errorf("invalid date selector %q (expected %q or %q)", selector, SelectorToday, SelectorYesterday)
	}
}
