package testutil

import (
	"time"

	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/google/uuid"
)

// Day returns midnight UTC of the given date.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithRawStatus(raw string) ActivityOption {
	return func(a *domain.Activity) {
		a.SetRawStatus(raw)
	}
}

func WithCreatedAt(t time.Time) ActivityOption {
	return func(a *domain.Activity) {
		a.CreatedAt = &t
	}
}

func WithoutCreatedAt() ActivityOption {
	return func(a *domain.Activity) {
		a.CreatedAt = nil
	}
}

func WithModule(m domain.AppModule) ActivityOption {
	return func(a *domain.Activity) {
		a.Module = m
	}
}

func WithHours(h float64) ActivityOption {
	return func(a *domain.Activity) {
		a.Hours = h
	}
}

func WithBudget(v float64) ActivityOption {
	return func(a *domain.Activity) {
		a.Budget = v
	}
}

func WithExternalID(id string) ActivityOption {
	return func(a *domain.Activity) {
		a.ExternalID = id
	}
}

// NewTestActivity builds a planned activity created on 2024-01-10.
func NewTestActivity(title string, opts ...ActivityOption) *domain.Activity {
	created := Day(2024, 1, 10)
	a := &domain.Activity{
		ID:        uuid.New().String(),
		Title:     title,
		Module:    domain.ModuleActivities,
		CreatedAt: &created,
		UpdatedAt: created,
	}
	a.SetRawStatus("Planejada")
	for _, o := range opts {
		o(a)
	}
	return a
}

// Requisition options
type RequisitionOption func(*domain.Requisition)

func WithNeedDate(t time.Time) RequisitionOption {
	return func(r *domain.Requisition) {
		r.NeedDate = &t
	}
}

func WithRequisitionExternalID(id string) RequisitionOption {
	return func(r *domain.Requisition) {
		r.ExternalID = id
	}
}

func NewTestRequisition(material, unit string, qty float64, opts ...RequisitionOption) *domain.Requisition {
	r := &domain.Requisition{
		ID:        uuid.New().String(),
		Material:  material,
		Unit:      unit,
		Quantity:  qty,
		CreatedAt: Day(2024, 1, 5),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}
