package model

import (
	"fmt"
	"time"
)

// isoLayouts are the ISO-8601 forms accepted from forms.
var isoLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

const displayLayout = "Jan 2, 2006"

// ParseDate parses an ISO-8601 calendar date or timestamp.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse date: %s", s)
}

// FormatDate renders t for display; nil or zero renders as "".
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(displayLayout)
}
