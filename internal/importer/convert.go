package importer

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/canteiro-app/canteiro/internal/hours"
	"github.com/canteiro-app/canteiro/internal/period"
	"github.com/canteiro-app/canteiro/internal/textfmt"
	"github.com/google/uuid"
)

// ConvertOptions controls defaults applied during conversion.
type ConvertOptions struct {
	// Module is assigned to activities that do not name one.
	Module domain.AppModule
	Now    time.Time
	// Location reads timestamps that carry no zone. Nil means UTC.
	Location *time.Location
}

// Converted holds domain objects ready for persistence plus notes about
// fields that were degraded to defaults.
type Converted struct {
	Activities   []*domain.Activity
	Requisitions []*domain.Requisition
	Warnings     []string
}

// Convert transforms a validated ExportSchema into domain objects.
// Call ValidateExport first; Convert assumes the schema is valid.
func Convert(schema *ExportSchema, opts ConvertOptions) *Converted {
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	module := opts.Module
	if !module.Valid() {
		module = domain.DefaultAppModule
	}

	out := &Converted{
		Activities:   make([]*domain.Activity, 0, len(schema.Activities)),
		Requisitions: make([]*domain.Requisition, 0, len(schema.Requisitions)),
	}

	for i, a := range schema.Activities {
		act := &domain.Activity{
			ID:          uuid.New().String(),
			ExternalID:  a.ID,
			Title:       strings.TrimSpace(a.Title),
			Stage:       a.Stage,
			Responsible: a.Responsible,
			Module:      module,
			Hours:       hours.ParseTimeToHours(a.Hours),
			Budget:      amountValue(a.Value),
			UpdatedAt:   now,
		}
		act.SetRawStatus(a.Status)
		if a.Module != "" {
			if m, err := domain.ParseAppModule(a.Module); err == nil {
				act.Module = m
			}
		}
		if a.Status != "" && !domain.IsKnownStatus(a.Status) {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("atividades[%d]: unknown status %q treated as %s", i, a.Status, domain.StatusPlanned))
		}
		if ts, ok := period.ParseTimestampIn(a.CreatedAt, opts.Location); ok {
			act.CreatedAt = &ts
		} else if a.CreatedAt != "" {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("atividades[%d]: unreadable createdAt %q, excluded from period reports", i, a.CreatedAt))
		}
		out.Activities = append(out.Activities, act)
	}

	for i, r := range schema.Requisitions {
		req := &domain.Requisition{
			ID:         uuid.New().String(),
			ExternalID: r.ID,
			Material:   strings.TrimSpace(r.Material),
			Unit:       strings.TrimSpace(r.Unit),
			Quantity:   quantityValue(r.Quantity),
			Supplier:   r.Supplier,
			CreatedAt:  now,
		}
		if ts, ok := period.ParseTimestampIn(r.NeedDate, opts.Location); ok {
			req.NeedDate = &ts
		} else if r.NeedDate != "" {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("requisicoes[%d]: unreadable dataNecessidade %q", i, r.NeedDate))
		}
		out.Requisitions = append(out.Requisitions, req)
	}

	return out
}

// amountValue reads a monetary field. Plain JSON numbers use a decimal
// point; text uses pt-BR notation.
func amountValue(v any) float64 {
	switch x := v.(type) {
	case json.Number:
		f, err := x.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return x
	case string:
		return textfmt.ParseCurrency(x)
	default:
		return 0
	}
}

// quantityValue reads a quantity field with the same rules as amountValue.
func quantityValue(v any) float64 {
	return amountValue(v)
}
