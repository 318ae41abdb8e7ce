package attendance

import (
	"context"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

// AttendanceRepository defines data access for raw day records.
type AttendanceRepository interface {
	// Upsert inserts or replaces the record for (employee, date).
	Upsert(ctx context.Context, rec DayRecord) (DayRecord, error)

	GetByEmployeeAndDate(ctx context.Context, employeeID string, date dateutil.Date) (*DayRecord, error)

	// ListRange returns records for the employee with
	// from <= date <= to, sorted ascending by date. Sparse ranges
	// return fewer records than days.
	ListRange(ctx context.Context, employeeID string, from, to dateutil.Date) ([]DayRecord, error)

	Delete(ctx context.Context, id string) error

	// ListEmployeesWithoutRecord returns active employee IDs having no
	// record on the given date. Used by the absent back-fill job.
	ListEmployeesWithoutRecord(ctx context.Context, date dateutil.Date) ([]string, error)
}
