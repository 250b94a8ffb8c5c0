package app

import (
	"time"

	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/canteiro-app/canteiro/internal/period"
	"github.com/canteiro-app/canteiro/internal/procurement"
)

type ReportRequest struct {
	Now    *time.Time
	Window period.DateWindow
	// Module scopes the report; empty means every module.
	Module domain.AppModule
	// IncludeActivities copies the filtered activities into the response.
	IncludeActivities bool
}

func NewReportRequest() ReportRequest {
	return ReportRequest{IncludeActivities: true}
}

// ActivityReport is the dashboard summary for a period.
type ActivityReport struct {
	GeneratedAt time.Time
	Window      period.DateWindow
	Module      domain.AppModule

	// Considered is the number of activities left after period filtering.
	Considered int
	// Excluded counts activities dropped by the window, including undated ones.
	Excluded int

	Counts     domain.StatusCounts
	ByStatus   map[domain.CanonicalStatus]int
	TotalHours float64
	Budget     float64
	Activities []domain.Activity
}

type RequirementsReport struct {
	GeneratedAt  time.Time
	Window       period.DateWindow
	Lines        int
	Requirements []procurement.Requirement
}

type ReportErrorCode string

const (
	ReportErrInvalidWindow ReportErrorCode = "INVALID_WINDOW"
	ReportErrInvalidModule ReportErrorCode = "INVALID_MODULE"
)

type ReportError struct {
	Code    ReportErrorCode
	Message string
}

func (e *ReportError) Error() string {
	return string(e.Code) + ": " + e.Message
}
