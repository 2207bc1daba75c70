// Package dates is the single place where trip dates are parsed and formatted.
// Trip dates are calendar dates with no time or zone component.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const (
	// Layout is the wire and storage format of a trip date.
	Layout = "2006-01-02"
	// DisplayLayout is the human format used on cards and the header.
	DisplayLayout = "Jan 2, 2006"
	// Unknown is shown in place of a date that does not parse.
	Unknown = "unknown date"
)

// Parse reads a calendar date. The result is midnight UTC on that day.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("dates.Parse: empty date")
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("dates.Parse: %q is not a %s date", s, Layout)
	}
	return t, nil
}

// Valid reports whether s parses as a calendar date.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Display formats s for people, or returns Unknown when s does not parse.
func Display(s string) string {
	t, err := Parse(s)
	if err != nil {
		return Unknown
	}
	return t.Format(DisplayLayout)
}

// Range formats a start/end pair as "Jun 6, 2024 - Jun 8, 2024".
func Range(start, end string) string {
	return Display(start) + " - " + Display(end)
}
