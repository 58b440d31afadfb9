package service

import (
	"fmt"
	"time"
)

// Accepted timestamp layouts for request bodies. Clients commonly send plain
// calendar dates for membership start days, full RFC 3339 for meeting times.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate parses a request timestamp in any accepted layout
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q, expected RFC 3339 or YYYY-MM-DD", value)
}
