// Package procurement rolls requisition lines raised on site up into
// purchase requirements, the first step of an MRP run.
package procurement

import (
	"sort"
	"time"

	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/canteiro-app/canteiro/internal/textfmt"
)

// Requirement is the consolidated demand for one material in one unit.
type Requirement struct {
	Material string
	Unit     string
	Quantity float64
	NeedDate *time.Time
	Lines    int
	Sources  []string
}

type requirementKey struct {
	material string
	unit     string
}

// Consolidate groups lines by material and unit, ignoring case and accents,
// and sums their quantities. The earliest need date wins; lines with no
// quantity are skipped. Results are ordered by need date (undated last),
// then material.
func Consolidate(lines []domain.Requisition) []Requirement {
	index := make(map[requirementKey]int)
	var out []Requirement

	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		key := requirementKey{
			material: textfmt.NormalizeText(l.Material),
			unit:     textfmt.NormalizeText(l.Unit),
		}
		if key.material == "" {
			continue
		}

		i, ok := index[key]
		if !ok {
			out = append(out, Requirement{
				Material: textfmt.ToTitleCase(collapseSpaces(l.Material)),
				Unit:     key.unit,
			})
			i = len(out) - 1
			index[key] = i
		}

		r := &out[i]
		r.Quantity += l.Quantity
		r.Lines++
		if l.ExternalID != "" {
			r.Sources = append(r.Sources, l.ExternalID)
		}
		if l.NeedDate != nil && (r.NeedDate == nil || l.NeedDate.Before(*r.NeedDate)) {
			d := *l.NeedDate
			r.NeedDate = &d
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		da, db := out[a].NeedDate, out[b].NeedDate
		switch {
		case da != nil && db != nil && !da.Equal(*db):
			return da.Before(*db)
		case da != nil && db == nil:
			return true
		case da == nil && db != nil:
			return false
		}
		return textfmt.NormalizeText(out[a].Material) < textfmt.NormalizeText(out[b].Material)
	})
	return out
}

func collapseSpaces(s string) string {
	out := make([]rune, 0, len(s))
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			if !space && len(out) > 0 {
				out = append(out, ' ')
			}
			space = true
			continue
		}
		space = false
		out = append(out, r)
	}
	if n := len(out); n > 0 && out[n-1] == ' ' {
		out = out[:n-1]
	}
	return string(out)
}
