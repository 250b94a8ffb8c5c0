package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/canteiro-app/canteiro/internal/app"
	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/canteiro-app/canteiro/internal/period"
	"github.com/canteiro-app/canteiro/internal/repository"
	"github.com/canteiro-app/canteiro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	svc          ReportService
	activities   *repository.SQLiteActivityRepo
	requisitions *repository.SQLiteRequisitionRepo
	observer     *recordingObserver
}

func newReportFixture(t *testing.T) reportFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	f := reportFixture{
		activities:   repository.NewSQLiteActivityRepo(database),
		requisitions: repository.NewSQLiteRequisitionRepo(database),
		observer:     &recordingObserver{},
	}
	f.svc = NewReportService(f.activities, f.requisitions, f.observer)
	return f
}

func (f reportFixture) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	activities := []*domain.Activity{
		testutil.NewTestActivity("Escavação", testutil.WithRawStatus("Em execução"),
			testutil.WithCreatedAt(testutil.Day(2024, 1, 3)), testutil.WithHours(8.5), testutil.WithBudget(1000)),
		testutil.NewTestActivity("Fundação", testutil.WithRawStatus("x"),
			testutil.WithCreatedAt(testutil.Day(2024, 1, 10)), testutil.WithHours(2)),
		testutil.NewTestActivity("Estrutura", testutil.WithRawStatus("Concluída"),
			testutil.WithCreatedAt(testutil.Day(2024, 1, 31)), testutil.WithBudget(250.25)),
		testutil.NewTestActivity("Cobertura", testutil.WithRawStatus("PARALIZADA"),
			testutil.WithCreatedAt(testutil.Day(2024, 1, 20)), testutil.WithModule(domain.ModuleLogistics)),
		testutil.NewTestActivity("Fora do mês", testutil.WithRawStatus("Concluída"),
			testutil.WithCreatedAt(testutil.Day(2024, 2, 1))),
		testutil.NewTestActivity("Sem data", testutil.WithRawStatus("Planejada"), testutil.WithoutCreatedAt()),
	}
	for _, a := range activities {
		require.NoError(t, f.activities.Save(ctx, a))
	}
}

func january() period.DateWindow {
	return period.DateWindow{Start: ptr(testutil.Day(2024, 1, 1)), End: ptr(testutil.Day(2024, 1, 31))}
}

func TestActivityReport_CountsWithinWindow(t *testing.T) {
	f := newReportFixture(t)
	f.seed(t)
	now := time.Date(2024, 2, 5, 8, 0, 0, 0, time.UTC)

	req := app.NewReportRequest()
	req.Now = &now
	req.Window = january()

	report, err := f.svc.ActivityReport(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, now, report.GeneratedAt)
	assert.Equal(t, 4, report.Considered)
	assert.Equal(t, 2, report.Excluded, "February and undated activities fall outside")
	assert.Equal(t, domain.StatusCounts{Planned: 0, InProgress: 1, Completed: 1, Stalled: 1}, report.Counts)
	assert.Equal(t, 3, report.Counts.Total())

	assert.Equal(t, 1, report.ByStatus[domain.StatusPlanned])
	assert.Equal(t, 1, report.ByStatus[domain.StatusInProgress])
	assert.Equal(t, 1, report.ByStatus[domain.StatusCompleted])
	assert.Equal(t, 1, report.ByStatus[domain.StatusStalled])
	assert.Equal(t, 0, report.ByStatus[domain.StatusPending])
	assert.Len(t, report.ByStatus, len(domain.AllStatuses()))

	assert.InDelta(t, 10.5, report.TotalHours, 1e-9)
	assert.InDelta(t, 1250.25, report.Budget, 1e-9)
	assert.Len(t, report.Activities, 4)
}

func TestActivityReport_NoWindowKeepsDatedAndUndated(t *testing.T) {
	f := newReportFixture(t)
	f.seed(t)

	req := app.NewReportRequest()
	req.IncludeActivities = false
	report, err := f.svc.ActivityReport(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 6, report.Considered)
	assert.Zero(t, report.Excluded)
	assert.Nil(t, report.Activities)
	assert.Equal(t, 1, report.Counts.Planned, `"Planejada" matches the planned marker`)
	assert.Equal(t, 2, report.Counts.Completed)
}

func TestActivityReport_ModuleScope(t *testing.T) {
	f := newReportFixture(t)
	f.seed(t)

	req := app.NewReportRequest()
	req.Module = domain.ModuleLogistics
	report, err := f.svc.ActivityReport(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Considered)
	assert.Equal(t, 1, report.Counts.Stalled)
	assert.Equal(t, "logistica", f.observer.last().Fields["module"])
}

func TestActivityReport_InvalidRequests(t *testing.T) {
	f := newReportFixture(t)

	tests := []struct {
		name string
		req  app.ReportRequest
		code app.ReportErrorCode
	}{
		{
			name: "unknown module",
			req:  app.ReportRequest{Module: "financeiro"},
			code: app.ReportErrInvalidModule,
		},
		{
			name: "start after end",
			req: app.ReportRequest{Window: period.DateWindow{
				Start: ptr(testutil.Day(2024, 2, 1)),
				End:   ptr(testutil.Day(2024, 1, 1)),
			}},
			code: app.ReportErrInvalidWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.ActivityReport(context.Background(), tt.req)
			require.Error(t, err)
			var reportErr *app.ReportError
			require.True(t, errors.As(err, &reportErr))
			assert.Equal(t, tt.code, reportErr.Code)
			assert.False(t, f.observer.last().Success)
		})
	}
}

func TestActivityReport_SameDayWindowIsValid(t *testing.T) {
	f := newReportFixture(t)
	f.seed(t)

	day := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	req := app.ReportRequest{Window: period.DateWindow{Start: &day, End: &day}}
	report, err := f.svc.ActivityReport(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Considered)
	assert.Equal(t, time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC), day, "window bounds are not mutated")
}

func TestRequirements_ConsolidatesWithinWindow(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	lines := []*domain.Requisition{
		testutil.NewTestRequisition("Cimento CP-II", "sc", 20, testutil.WithNeedDate(testutil.Day(2024, 1, 25))),
		testutil.NewTestRequisition("cimento cp-ii", "SC", 15, testutil.WithNeedDate(testutil.Day(2024, 1, 12))),
		testutil.NewTestRequisition("areia média", "m3", 6, testutil.WithNeedDate(testutil.Day(2024, 1, 5))),
		testutil.NewTestRequisition("brita", "m3", 4, testutil.WithNeedDate(testutil.Day(2024, 3, 1))),
		testutil.NewTestRequisition("arame", "kg", 2),
	}
	for _, l := range lines {
		require.NoError(t, f.requisitions.Save(ctx, l))
	}

	req := app.NewReportRequest()
	req.Window = january()
	report, err := f.svc.Requirements(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Lines)
	require.Len(t, report.Requirements, 2)

	first := report.Requirements[0]
	assert.Equal(t, "Areia Média", first.Material)
	assert.Equal(t, 6.0, first.Quantity)

	cement := report.Requirements[1]
	assert.Equal(t, 35.0, cement.Quantity)
	assert.Equal(t, 2, cement.Lines)
	require.NotNil(t, cement.NeedDate)
	assert.True(t, testutil.Day(2024, 1, 12).Equal(*cement.NeedDate))

	ev := f.observer.last()
	assert.Equal(t, "report.requirements", ev.Name)
	assert.Equal(t, 2, ev.Fields["requirements"])
}

func TestRequirements_NoWindowIncludesUndated(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	require.NoError(t, f.requisitions.Save(ctx, testutil.NewTestRequisition("arame", "kg", 2)))

	report, err := f.svc.Requirements(ctx, app.NewReportRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Lines)
	require.Len(t, report.Requirements, 1)
	assert.Nil(t, report.Requirements[0].NeedDate)
}
