// Package util provides shared date parsing and formatting helpers.
package util

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01",
}

// ParseDate parses a date string into a time.Time (UTC).
// Accepts YYYY-MM-DD, RFC3339, YYYY-MM-DD HH:MM:SS, and YYYY-MM.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
}

// FormatDate formats a time.Time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
