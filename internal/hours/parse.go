// Package hours converts the work-duration fields typed into timesheets
// ("8h", "8h30", "8h30min", "2.5") into a number of hours.
package hours

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// hourPattern captures the hours before "h" and optional minutes right after.
var hourPattern = regexp.MustCompile(`(\d+)\s*h\s*(\d+)?`)

// ParseTimeToHours returns v as a number of hours. It accepts nil, numeric
// kinds, json.Number and strings; anything it cannot read yields 0.
// Negative numbers pass through unchanged.
func ParseTimeToHours(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case json.Number:
		return parseString(x.String())
	case string:
		return parseString(x)
	case *string:
		if x == nil {
			return 0
		}
		return parseString(*x)
	case *float64:
		if x == nil {
			return 0
		}
		return finite(*x)
	case *int:
		if x == nil {
			return 0
		}
		return float64(*x)
	case fmt.Stringer:
		return parseString(x.String())
	default:
		return 0
	}
}

func parseString(s string) float64 {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0
	}
	if m := hourPattern.FindStringSubmatch(s); m != nil {
		h, err := strconv.Atoi(m[1])
		if err != nil {
			return 0
		}
		mins := 0
		if m[2] != "" {
			if mins, err = strconv.Atoi(m[2]); err != nil {
				return 0
			}
		}
		return float64(h) + float64(mins)/60
	}
	if strings.Contains(s, "h") {
		return 0
	}
	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// FormatHours renders h back in the timesheet notation, rounding to the
// nearest minute: 8.5 → "8h30", 8 → "8h", 0.25 → "0h15".
func FormatHours(h float64) string {
	h = finite(h)
	sign := ""
	if h < 0 {
		sign = "-"
		h = -h
	}
	total := int(math.Round(h * 60))
	hh, mm := total/60, total%60
	if mm == 0 {
		return fmt.Sprintf("%s%dh", sign, hh)
	}
	return fmt.Sprintf("%s%dh%02d", sign, hh, mm)
}
