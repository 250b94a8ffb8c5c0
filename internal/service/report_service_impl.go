package service

import (
	"context"
	"fmt"
	"time"

	"github.com/canteiro-app/canteiro/internal/app"
	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/canteiro-app/canteiro/internal/period"
	"github.com/canteiro-app/canteiro/internal/procurement"
	"github.com/canteiro-app/canteiro/internal/repository"
)

type reportService struct {
	activities   repository.ActivityRepo
	requisitions repository.RequisitionRepo
	observer     UseCaseObserver
}

func NewReportService(
	activities repository.ActivityRepo,
	requisitions repository.RequisitionRepo,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		activities:   activities,
		requisitions: requisitions,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) ActivityReport(ctx context.Context, req app.ReportRequest) (report *app.ActivityReport, err error) {
	startedAt := time.Now()
	fields := map[string]any{"module": string(req.Module)}
	defer observe(ctx, s.observer, "report.activities", startedAt, fields, &err)

	if err := validateReportRequest(req); err != nil {
		return nil, err
	}

	all, err := s.activities.List(ctx, repository.ActivityFilter{Module: req.Module})
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}
	inWindow := period.FilterTimestamped(all, req.Window)

	report = &app.ActivityReport{
		GeneratedAt: reportTime(req.Now),
		Window:      req.Window,
		Module:      req.Module,
		Considered:  len(inWindow),
		Excluded:    len(all) - len(inWindow),
		Counts:      domain.CountActivityStatuses(inWindow),
		ByStatus:    make(map[domain.CanonicalStatus]int, len(domain.AllStatuses())),
	}
	for _, st := range domain.AllStatuses() {
		report.ByStatus[st] = 0
	}
	for _, a := range inWindow {
		report.ByStatus[a.Status]++
		report.TotalHours += a.Hours
		report.Budget += a.Budget
	}
	if req.IncludeActivities {
		report.Activities = append([]domain.Activity(nil), inWindow...)
	}

	fields["considered"] = report.Considered
	fields["excluded"] = report.Excluded
	return report, nil
}

func (s *reportService) Requirements(ctx context.Context, req app.ReportRequest) (report *app.RequirementsReport, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "report.requirements", startedAt, fields, &err)

	if err := validateReportRequest(req); err != nil {
		return nil, err
	}

	lines, err := s.requisitions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading requisitions: %w", err)
	}
	inWindow := period.FilterByPeriod(lines, req.Window, func(r domain.Requisition) *time.Time {
		return r.NeedDate
	})

	report = &app.RequirementsReport{
		GeneratedAt:  reportTime(req.Now),
		Window:       req.Window,
		Lines:        len(inWindow),
		Requirements: procurement.Consolidate(inWindow),
	}
	fields["lines"] = report.Lines
	fields["requirements"] = len(report.Requirements)
	return report, nil
}

func validateReportRequest(req app.ReportRequest) error {
	if req.Module != "" && !req.Module.Valid() {
		return &app.ReportError{
			Code:    app.ReportErrInvalidModule,
			Message: fmt.Sprintf("unknown module %q", req.Module),
		}
	}
	w := req.Window
	if w.Start != nil && w.End != nil && period.StartOfDay(*w.Start).After(period.EndOfDay(*w.End)) {
		return &app.ReportError{
			Code: app.ReportErrInvalidWindow,
			Message: fmt.Sprintf("start %s is after end %s",
				w.Start.Format(period.DayLayout), w.End.Format(period.DayLayout)),
		}
	}
	return nil
}

func reportTime(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now()
}
