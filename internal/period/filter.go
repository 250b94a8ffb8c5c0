// Package period restricts timestamped records to an inclusive calendar
// window.
package period

import (
	"time"
)

// DateWindow is an optional pair of inclusive day bounds. Either side may
// be nil. Bounds are compared at day granularity in their own location:
// Start counts from 00:00:00.000 and End until 23:59:59.999.
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether neither bound is set.
func (w DateWindow) IsZero() bool {
	return w.Start == nil && w.End == nil
}

// Timestamped is implemented by records carrying an optional creation time.
type Timestamped interface {
	Timestamp() *time.Time
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last millisecond of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// span is a window resolved to instants. hasStart/hasEnd are false for
// open sides.
type span struct {
	start, end       time.Time
	hasStart, hasEnd bool
}

func (w DateWindow) span() span {
	var sp span
	if w.Start != nil {
		sp.start, sp.hasStart = StartOfDay(*w.Start), true
	}
	if w.End != nil {
		sp.end, sp.hasEnd = EndOfDay(*w.End), true
	}
	return sp
}

func (sp span) contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	if sp.hasStart && t.Before(sp.start) {
		return false
	}
	return !(sp.hasEnd && t.After(sp.end))
}

// Contains reports whether t falls inside the window. A zero t is never
// contained, not even by an empty window.
func (w DateWindow) Contains(t time.Time) bool {
	return w.span().contains(t)
}

// FilterByPeriod keeps the records whose timestamp lies inside w, in their
// original order. Records with a nil or zero timestamp are dropped. When w
// has no bounds the input slice itself is returned.
func FilterByPeriod[T any](records []T, w DateWindow, stampOf func(T) *time.Time) []T {
	if w.IsZero() {
		return records
	}
	sp := w.span()

	out := make([]T, 0, len(records))
	for _, r := range records {
		if ts := stampOf(r); ts != nil && sp.contains(*ts) {
			out = append(out, r)
		}
	}
	return out
}

// FilterTimestamped is FilterByPeriod for records that expose their own
// timestamp.
func FilterTimestamped[T Timestamped](records []T, w DateWindow) []T {
	return FilterByPeriod(records, w, func(r T) *time.Time { return r.Timestamp() })
}
