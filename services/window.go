package services

import (
	"time"
)

const dateLayout = "2006-01-02"

// An introduction cycle is a fixed protocol: 3 exposures inside a
// trailing 7-calendar-day window, then a tolerance verdict.
const (
	windowDays        = 7
	exposuresPerCycle = 3
)

// WindowStart returns the first day of the trailing window anchored at
// the given day: anchor minus 6 calendar days, inclusive on both ends.
// The anchor is the exposure's own date, not "today", so backfilled
// exposures compute their window relative to themselves.
func WindowStart(anchor string) (string, error) {
	t, err := time.Parse(dateLayout, anchor)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -(windowDays - 1)).Format(dateLayout), nil
}

// CountInWindow counts the dates that fall inside the trailing window
// anchored at anchor. Dates must be YYYY-MM-DD, which makes the range
// check a plain string comparison.
func CountInWindow(anchor string, dates []string) (int, error) {
	start, err := WindowStart(anchor)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, d := range dates {
		if d >= start && d <= anchor {
			n++
		}
	}
	return n, nil
}

// Today returns the current calendar day in the server's local zone.
func Today() string {
	return time.Now().Format(dateLayout)
}
