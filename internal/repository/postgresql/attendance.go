package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, status, punch_in, punch_out,
	work_hours, worked_hours, idle_time,
	is_half_day, is_late_login, is_overtime_day,
	created_at, updated_at
`

func scanDayRecord(row pgx.Row) (attendance.DayRecord, error) {
	var rec attendance.DayRecord
	var date time.Time
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &date, &rec.Status, &rec.PunchIn, &rec.PunchOut,
		&rec.WorkHours, &rec.WorkedHours, &rec.IdleTime,
		&rec.IsHalfDay, &rec.IsLateLogin, &rec.IsOvertimeDay,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.DayRecord{}, err
	}
	rec.Date = dateutil.FromTime(date)
	return rec, nil
}

func (r *attendanceRepository) Upsert(ctx context.Context, rec attendance.DayRecord) (attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, status, punch_in, punch_out,
			work_hours, worked_hours, idle_time,
			is_half_day, is_late_login, is_overtime_day,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			punch_in = EXCLUDED.punch_in,
			punch_out = EXCLUDED.punch_out,
			work_hours = EXCLUDED.work_hours,
			worked_hours = EXCLUDED.worked_hours,
			idle_time = EXCLUDED.idle_time,
			is_half_day = EXCLUDED.is_half_day,
			is_late_login = EXCLUDED.is_late_login,
			is_overtime_day = EXCLUDED.is_overtime_day,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + attendanceColumns + `
	`
	stored, err := scanDayRecord(q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date.Time(), string(rec.Status), rec.PunchIn, rec.PunchOut,
		rec.WorkHours, rec.WorkedHours, rec.IdleTime,
		rec.IsHalfDay, rec.IsLateLogin, rec.IsOvertimeDay,
		rec.CreatedAt, rec.UpdatedAt,
	))
	if err != nil {
		return attendance.DayRecord{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}
	return stored, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date dateutil.Date) (*attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
	`
	rec, err := scanDayRecord(q.QueryRow(ctx, query, employeeID, date.Time()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return &rec, nil
}

func (r *attendanceRepository) ListRange(ctx context.Context, employeeID string, from, to dateutil.Date) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`
	rows, err := q.Query(ctx, query, employeeID, from.Time(), to.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.DayRecord
	for rows.Next() {
		rec, err := scanDayRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (r *attendanceRepository) ListEmployeesWithoutRecord(ctx context.Context, date dateutil.Date) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id
		FROM employees e
		WHERE e.is_active
		  AND NOT EXISTS (
			SELECT 1 FROM attendance_records a
			WHERE a.employee_id = e.id AND a.date = $1
		  )
		ORDER BY e.id
	`
	rows, err := q.Query(ctx, query, date.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list employees without record: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee ids: %w", err)
	}
	return ids, nil
}
