package period

import (
	"fmt"
	"strings"
	"time"
)

// DayLayout is the format of window bounds on the command line and in
// backend exports.
const DayLayout = "2006-01-02"

// timestampLayouts are tried in order. Layouts without a zone are read in
// the location passed to ParseTimestampIn.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	DayLayout,
	"02/01/2006",
}

// ParseTimestamp reads a backend timestamp, taking zone-less values as UTC.
// It returns false for empty or unrecognized input so the record can be
// excluded from period filters.
func ParseTimestamp(raw string) (time.Time, bool) {
	return ParseTimestampIn(raw, time.UTC)
}

// ParseTimestampIn is ParseTimestamp with zone-less values ("2024-01-01",
// "2024-01-01 08:00:00") read as wall-clock time in loc. Window bounds from
// ParseDay must use the same loc for day boundaries to line up.
func ParseTimestampIn(raw string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDay parses a YYYY-MM-DD bound in loc.
func ParseDay(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DayLayout, strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", raw, err)
	}
	return t, nil
}
