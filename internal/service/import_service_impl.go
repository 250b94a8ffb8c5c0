package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canteiro-app/canteiro/internal/app"
	"github.com/canteiro-app/canteiro/internal/db"
	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/canteiro-app/canteiro/internal/importer"
	"github.com/canteiro-app/canteiro/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	modules  activeModuleSource
	loc      *time.Location
	observer UseCaseObserver
	now      func() time.Time
}

// NewImportService builds the import use case. Activities without a module
// in the export are assigned modules.ActiveModule(); a nil source falls back
// to domain.DefaultAppModule. Zone-less export timestamps are read in loc,
// which should be the location report windows are parsed in (nil = UTC).
func NewImportService(uow db.UnitOfWork, modules activeModuleSource, loc *time.Location, observers ...UseCaseObserver) ImportService {
	if loc == nil {
		loc = time.UTC
	}
	return &importService{
		uow:      uow,
		modules:  modules,
		loc:      loc,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*app.ImportResult, error) {
	schema, err := importer.LoadExport(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportExport(ctx, schema)
}

func (s *importService) ImportExport(ctx context.Context, schema *importer.ExportSchema) (result *app.ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import", startedAt, fields, &err)

	if errs := importer.ValidateExport(schema); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	module := domain.DefaultAppModule
	if s.modules != nil {
		module = s.modules.ActiveModule()
	}
	converted := importer.Convert(schema, importer.ConvertOptions{Module: module, Now: s.now().UTC(), Location: s.loc})

	result = &app.ImportResult{
		ActivityCount:    len(converted.Activities),
		RequisitionCount: len(converted.Requisitions),
		Warnings:         converted.Warnings,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		activities := repository.NewSQLiteActivityRepo(tx)
		requisitions := repository.NewSQLiteRequisitionRepo(tx)

		for _, a := range converted.Activities {
			replaced, err := reuseActivityID(ctx, activities, a)
			if err != nil {
				return err
			}
			if replaced {
				result.Updated++
			}
			if err := activities.Save(ctx, a); err != nil {
				return fmt.Errorf("saving activity %q: %w", a.Title, err)
			}
		}

		for _, r := range converted.Requisitions {
			if r.ExternalID != "" {
				existing, err := requisitions.GetByExternalID(ctx, r.ExternalID)
				switch {
				case err == nil:
					r.ID = existing.ID
					result.Updated++
				case !errors.Is(err, repository.ErrNotFound):
					return fmt.Errorf("looking up requisition %q: %w", r.ExternalID, err)
				}
			}
			if err := requisitions.Save(ctx, r); err != nil {
				return fmt.Errorf("saving requisition %q: %w", r.Material, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["activities"] = result.ActivityCount
	fields["requisitions"] = result.RequisitionCount
	fields["updated"] = result.Updated
	fields["warnings"] = len(result.Warnings)
	return result, nil
}

// reuseActivityID points a at the stored row with the same external ID so a
// re-import replaces it in place.
func reuseActivityID(ctx context.Context, repo repository.ActivityRepo, a *domain.Activity) (bool, error) {
	if a.ExternalID == "" {
		return false, nil
	}
	existing, err := repo.GetByExternalID(ctx, a.ExternalID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("looking up activity %q: %w", a.ExternalID, err)
	}
	a.ID = existing.ID
	return true, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return errors.New(msg)
}
