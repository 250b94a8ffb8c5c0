package cli

import (
	"time"

	"github.com/canteiro-app/canteiro/internal/period"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value for an optional YYYY-MM-DD day. It stays nil
// until the flag is set.
type dateValue struct {
	target **time.Time
	loc    func() *time.Location
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(target **time.Time, loc func() *time.Location) *dateValue {
	return &dateValue{target: target, loc: loc}
}

func (d *dateValue) String() string {
	if d.target == nil || *d.target == nil {
		return ""
	}
	return (*d.target).Format(period.DayLayout)
}

func (d *dateValue) Set(raw string) error {
	t, err := period.ParseDay(raw, d.loc())
	if err != nil {
		return err
	}
	*d.target = &t
	return nil
}

func (d *dateValue) Type() string {
	return "date"
}

// addWindowFlags registers --from and --to on fs, filling w.
func addWindowFlags(fs *pflag.FlagSet, w *period.DateWindow, loc func() *time.Location) {
	fs.Var(newDateValue(&w.Start, loc), "from", "First day of the period (YYYY-MM-DD)")
	fs.Var(newDateValue(&w.End, loc), "to", "Last day of the period (YYYY-MM-DD)")
}
