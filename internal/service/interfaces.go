package service

import (
	"context"

	"github.com/canteiro-app/canteiro/internal/app"
	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/canteiro-app/canteiro/internal/period"
)

type ImportService interface {
	app.ImportUseCase
}

// ActivityQuery selects stored activities. Zero fields match everything.
type ActivityQuery struct {
	Module domain.AppModule
	Status domain.CanonicalStatus
	Window period.DateWindow
	// Search keeps activities whose title, stage or responsible contains it,
	// ignoring case and accents.
	Search string
}

type ActivityService interface {
	List(ctx context.Context, q ActivityQuery) ([]domain.Activity, error)
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	UpdateStatus(ctx context.Context, id, rawStatus string) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
}

type ReportService interface {
	app.ActivityReportUseCase
	app.RequirementsUseCase
}

// activeModuleSource is satisfied by *app.AppState.
type activeModuleSource interface {
	ActiveModule() domain.AppModule
}
