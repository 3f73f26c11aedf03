package event

import (
	"fmt"
	"time"
)

// timestampLayouts covers the YYYY-MM-DDTHH:MM:SS[.ffffff]Z grammar from
// spec.md §6, both with and without fractional seconds.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999Z",
	"2006-01-02T15:04:05Z",
	time.RFC3339Nano,
	time.RFC3339,
}

// ParseTimestamp parses an ISO-8601 activity timestamp. It tries each
// accepted layout in turn and fails only if none match.
func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, fmt.Errorf("event: unparseable timestamp %q: %w", s, lastErr)
}
