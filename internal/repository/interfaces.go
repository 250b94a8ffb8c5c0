package repository

import (
	"context"
	"errors"

	"github.com/canteiro-app/canteiro/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// ActivityFilter narrows List results. Zero fields match everything.
type ActivityFilter struct {
	Module domain.AppModule
	Status domain.CanonicalStatus
}

type ActivityRepo interface {
	Save(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.Activity, error)
	List(ctx context.Context, f ActivityFilter) ([]domain.Activity, error)
	Delete(ctx context.Context, id string) error
}

type RequisitionRepo interface {
	Save(ctx context.Context, r *domain.Requisition) error
	GetByExternalID(ctx context.Context, externalID string) (*domain.Requisition, error)
	List(ctx context.Context) ([]domain.Requisition, error)
}

// PreferenceRepo is a small key/value store for per-user settings such as
// the active module.
type PreferenceRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
