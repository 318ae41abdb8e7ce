package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/overtime"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
	"github.com/jackc/pgx/v5"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `
	ot.id, ot.employee_id, e.name, ot.date, ot.type, ot.status, ot.reason,
	ot.credited, ot.used_as_leave, ot.created_at, ot.updated_at
`

func scanOvertime(row pgx.Row) (overtime.Overtime, error) {
	var ot overtime.Overtime
	var date time.Time
	err := row.Scan(
		&ot.ID, &ot.EmployeeID, &ot.EmployeeName, &date, &ot.Type, &ot.Status, &ot.Reason,
		&ot.Credited, &ot.UsedAsLeave, &ot.CreatedAt, &ot.UpdatedAt,
	)
	if err != nil {
		return overtime.Overtime{}, err
	}
	ot.Date = dateutil.FromTime(date)
	return ot, nil
}

func (r *overtimeRepository) Create(ctx context.Context, ot overtime.Overtime) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_requests (
			id, employee_id, date, type, status, reason,
			credited, used_as_leave, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := q.Exec(ctx, query,
		ot.ID, ot.EmployeeID, ot.Date.Time(), string(ot.Type), string(ot.Status), ot.Reason,
		ot.Credited, ot.UsedAsLeave, ot.CreatedAt, ot.UpdatedAt,
	)
	if err != nil {
		return overtime.Overtime{}, fmt.Errorf("failed to create overtime request: %w", err)
	}
	return r.GetByID(ctx, ot.ID)
}

func (r *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests ot
		JOIN employees e ON e.id = ot.employee_id
		WHERE ot.id = $1
	`
	ot, err := scanOvertime(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Overtime{}, overtime.ErrOvertimeNotFound
		}
		return overtime.Overtime{}, fmt.Errorf("failed to get overtime request: %w", err)
	}
	return ot, nil
}

func (r *overtimeRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date dateutil.Date) (*overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests ot
		JOIN employees e ON e.id = ot.employee_id
		WHERE ot.employee_id = $1 AND ot.date = $2
	`
	ot, err := scanOvertime(q.QueryRow(ctx, query, employeeID, date.Time()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get overtime request: %w", err)
	}
	return &ot, nil
}

func (r *overtimeRepository) List(ctx context.Context, filter overtime.ListOvertimeFilter) ([]overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests ot
		JOIN employees e ON e.id = ot.employee_id
		WHERE ($1 = '' OR ot.employee_id = $1)
		  AND ($2 = '' OR ot.date >= $2::date)
		  AND ($3 = '' OR ot.date <= $3::date)
		  AND ($4 = '' OR ot.status = $4)
		ORDER BY ot.date DESC
	`
	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.StartDate, filter.EndDate, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.Overtime
	for rows.Next() {
		ot, err := scanOvertime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, ot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overtime requests: %w", err)
	}
	return requests, nil
}

func (r *overtimeRepository) Update(ctx context.Context, ot overtime.Overtime) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_requests SET
			type = $2,
			status = $3,
			credited = $4,
			used_as_leave = $5,
			updated_at = $6
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		ot.ID, string(ot.Type), string(ot.Status), ot.Credited, ot.UsedAsLeave, ot.UpdatedAt,
	)
	if err != nil {
		return overtime.Overtime{}, fmt.Errorf("failed to update overtime request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.Overtime{}, overtime.ErrOvertimeNotFound
	}
	return r.GetByID(ctx, ot.ID)
}

func (r *overtimeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM overtime_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete overtime request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}
	return nil
}

func (r *overtimeRepository) Balance(ctx context.Context, employeeID string) (overtime.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE type = $2),
			COUNT(*) FILTER (WHERE type = $3)
		FROM overtime_requests
		WHERE employee_id = $1 AND credited AND NOT used_as_leave
	`
	balance := overtime.Balance{EmployeeID: employeeID}
	err := q.QueryRow(ctx, query, employeeID,
		string(overtime.OvertimeTypePending), string(overtime.OvertimeTypeIncentive),
	).Scan(&balance.PendingDays, &balance.IncentiveDays)
	if err != nil {
		return overtime.Balance{}, fmt.Errorf("failed to load overtime balance: %w", err)
	}
	return balance, nil
}
