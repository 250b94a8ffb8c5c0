package domain

import "time"

// Activity is a construction activity as imported from a backend export.
type Activity struct {
	ID          string
	ExternalID  string
	Title       string
	Stage       string
	Responsible string
	Module      AppModule

	// RawStatus is kept verbatim for reports; Status is its normalized form.
	RawStatus string
	Status    CanonicalStatus

	Hours  float64
	Budget float64

	// CreatedAt is nil when the backend sent no timestamp or an unparsable one.
	CreatedAt *time.Time
	UpdatedAt time.Time
}

// Timestamp implements period.Timestamped.
func (a Activity) Timestamp() *time.Time {
	return a.CreatedAt
}

// SetRawStatus stores raw and its normalized form together.
func (a *Activity) SetRawStatus(raw string) {
	a.RawStatus = raw
	a.Status = NormalizeStatus(raw)
}

// IsOpen reports whether the activity still needs work.
func (a Activity) IsOpen() bool {
	return a.Status != StatusCompleted
}
