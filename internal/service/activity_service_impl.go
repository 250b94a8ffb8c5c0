package service

import (
	"context"
	"fmt"
	"time"

	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/canteiro-app/canteiro/internal/period"
	"github.com/canteiro-app/canteiro/internal/repository"
	"github.com/canteiro-app/canteiro/internal/textfmt"
)

type activityService struct {
	activities repository.ActivityRepo
	observer   UseCaseObserver
	now        func() time.Time
}

func NewActivityService(activities repository.ActivityRepo, observers ...UseCaseObserver) ActivityService {
	return &activityService{
		activities: activities,
		observer:   useCaseObserverOrNoop(observers),
		now:        time.Now,
	}
}

func (s *activityService) List(ctx context.Context, q ActivityQuery) ([]domain.Activity, error) {
	if q.Module != "" && !q.Module.Valid() {
		return nil, fmt.Errorf("unknown module %q", q.Module)
	}
	all, err := s.activities.List(ctx, repository.ActivityFilter{Module: q.Module, Status: q.Status})
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}

	inWindow := period.FilterTimestamped(all, q.Window)
	if q.Search == "" {
		return inWindow, nil
	}

	out := make([]domain.Activity, 0, len(inWindow))
	for _, a := range inWindow {
		if textfmt.ContainsNormalized(a.Title, q.Search) ||
			textfmt.ContainsNormalized(a.Stage, q.Search) ||
			textfmt.ContainsNormalized(a.Responsible, q.Search) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *activityService) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting activity %s: %w", id, err)
	}
	return a, nil
}

// UpdateStatus records a new backend status for the activity. Unknown
// statuses are stored verbatim and normalize to domain.StatusPlanned.
func (s *activityService) UpdateStatus(ctx context.Context, id, rawStatus string) (a *domain.Activity, err error) {
	startedAt := time.Now()
	fields := map[string]any{"activity_id": id}
	defer observe(ctx, s.observer, "activity.update_status", startedAt, fields, &err)

	a, err = s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting activity %s: %w", id, err)
	}
	a.SetRawStatus(rawStatus)
	a.UpdatedAt = s.now().UTC()
	fields["status"] = string(a.Status)

	if err := s.activities.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("updating activity %s: %w", id, err)
	}
	return a, nil
}

func (s *activityService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "activity.delete", time.Now(), map[string]any{"activity_id": id}, &err)

	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting activity %s: %w", id, err)
	}
	return nil
}
