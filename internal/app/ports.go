package app

import (
	"context"

	"github.com/canteiro-app/canteiro/internal/importer"
)

type ImportResult struct {
	ActivityCount    int
	RequisitionCount int
	// Updated counts rows that replaced an earlier import of the same external ID.
	Updated  int
	Warnings []string
}

type ImportUseCase interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportExport(ctx context.Context, schema *importer.ExportSchema) (*ImportResult, error)
}

type ActivityReportUseCase interface {
	ActivityReport(ctx context.Context, req ReportRequest) (*ActivityReport, error)
}

type RequirementsUseCase interface {
	Requirements(ctx context.Context, req ReportRequest) (*RequirementsReport, error)
}
