package attendance

import (
	"context"
)

// AttendanceService defines business logic for raw records and the
// reconciliation views derived from them.
type AttendanceService interface {
	// UpsertRecord creates or replaces a raw day record.
	UpsertRecord(ctx context.Context, req UpsertDayRecordRequest) (DayRecordResponse, error)

	// ListRecords returns the raw records inside a range.
	ListRecords(ctx context.Context, q RangeQuery) ([]DayRecordResponse, error)

	DeleteRecord(ctx context.Context, id string) error

	// PunchStatus returns today's record for the employee.
	PunchStatus(ctx context.Context, employeeID string) (PunchStatusResponse, error)

	// Reconcile merges holidays, approved leave and raw records into a
	// gap-free daily sequence for the range.
	Reconcile(ctx context.Context, q RangeQuery) ([]ReconciledDayResponse, error)

	// SandwichLeaves lists holidays enclosed by approved leave in the range.
	SandwichLeaves(ctx context.Context, q RangeQuery) ([]SandwichLeaveEntryResponse, error)

	// MonthlySummary reduces a month's reconciled sequence to counters.
	MonthlySummary(ctx context.Context, q MonthQuery) (MonthlySummaryResponse, error)
}
