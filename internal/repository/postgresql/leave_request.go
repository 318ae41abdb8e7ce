package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.from_date, lr.to_date, lr.status,
	lr.leave_type, lr.leave_day_type, lr.half_day_session, lr.reason,
	lr.leave_days, lr.request_date, lr.action_date,
	lr.created_at, lr.updated_at, e.name
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	var from, to, requestDate time.Time
	var actionDate *time.Time
	var session *string

	err := row.Scan(
		&req.ID, &req.EmployeeID, &from, &to, &req.Status,
		&req.LeaveType, &req.LeaveDayType, &session, &req.Reason,
		&req.LeaveDays, &requestDate, &actionDate,
		&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	req.From = dateutil.FromTime(from)
	req.To = dateutil.FromTime(to)
	req.RequestDate = dateutil.FromTime(requestDate)
	if actionDate != nil {
		d := dateutil.FromTime(*actionDate)
		req.ActionDate = &d
	}
	if session != nil {
		s := leave.HalfDaySession(*session)
		req.HalfDaySession = &s
	}
	return req, nil
}

func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	var session *string
	if req.HalfDaySession != nil {
		s := string(*req.HalfDaySession)
		session = &s
	}
	var actionDate *time.Time
	if req.ActionDate != nil {
		t := req.ActionDate.Time()
		actionDate = &t
	}

	now := time.Now()
	query := `
		INSERT INTO leave_requests (
			id, employee_id, from_date, to_date, status,
			leave_type, leave_day_type, half_day_session, reason,
			leave_days, request_date, action_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := q.Exec(ctx, query,
		req.ID, req.EmployeeID, req.From.Time(), req.To.Time(), string(req.Status),
		string(req.LeaveType), string(req.LeaveDayType), session, req.Reason,
		req.LeaveDays, req.RequestDate.Time(), actionDate, now, now,
	)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to insert leave request: %w", err)
	}

	req.CreatedAt = now
	req.UpdatedAt = now
	return req, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`
	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	days, err := r.listDays(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	req.Days = days
	return req, nil
}

func (r *leaveRequestRepository) List(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE ($1 = '' OR lr.employee_id = $1)
		ORDER BY lr.request_date DESC, lr.created_at DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests, err := collectLeaveRequests(rows)
	if err != nil {
		return nil, err
	}
	return r.attachDays(ctx, requests)
}

func (r *leaveRequestRepository) ListOverlapping(ctx context.Context, employeeID string, from, to dateutil.Date) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.employee_id = $1
		  AND lr.status <> $2
		  AND lr.from_date <= $4
		  AND lr.to_date >= $3
		ORDER BY lr.from_date ASC
	`
	rows, err := q.Query(ctx, query, employeeID, string(leave.LeaveStatusRejected), from.Time(), to.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepository) ListApprovedInRange(ctx context.Context, employeeID string, from, to dateutil.Date) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.employee_id = $1
		  AND lr.status = $2
		  AND lr.from_date <= $4
		  AND lr.to_date >= $3
		ORDER BY lr.from_date ASC
	`
	rows, err := q.Query(ctx, query, employeeID, string(leave.LeaveStatusApproved), from.Time(), to.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave requests: %w", err)
	}
	defer rows.Close()

	requests, err := collectLeaveRequests(rows)
	if err != nil {
		return nil, err
	}
	return r.attachDays(ctx, requests)
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return requests, nil
}

func (r *leaveRequestRepository) attachDays(ctx context.Context, requests []leave.LeaveRequest) ([]leave.LeaveRequest, error) {
	for i := range requests {
		days, err := r.listDays(ctx, requests[i].ID)
		if err != nil {
			return nil, err
		}
		requests[i].Days = days
	}
	return requests, nil
}

func (r *leaveRequestRepository) listDays(ctx context.Context, requestID string) ([]leave.LeaveRequestDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, leave_request_id, date, category, sandwich_flag
		FROM leave_request_days
		WHERE leave_request_id = $1
		ORDER BY date ASC
	`
	rows, err := q.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave request days: %w", err)
	}
	defer rows.Close()

	var days []leave.LeaveRequestDay
	for rows.Next() {
		var day leave.LeaveRequestDay
		var date time.Time
		if err := rows.Scan(&day.ID, &day.LeaveRequestID, &date, &day.Category, &day.SandwichFlag); err != nil {
			return nil, fmt.Errorf("failed to scan leave request day: %w", err)
		}
		day.Date = dateutil.FromTime(date)
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave request days: %w", err)
	}
	return days, nil
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus, actionDate dateutil.Date) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, action_date = $3, updated_at = $4
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, id, string(status), actionDate.Time(), time.Now())
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepository) ReplaceDays(ctx context.Context, requestID string, days []leave.LeaveRequestDay) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM leave_request_days WHERE leave_request_id = $1`, requestID); err != nil {
		return fmt.Errorf("failed to clear leave request days: %w", err)
	}

	query := `
		INSERT INTO leave_request_days (id, leave_request_id, date, category, sandwich_flag)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, day := range days {
		_, err := q.Exec(ctx, query, day.ID, requestID, day.Date.Time(), string(day.Category), day.SandwichFlag)
		if err != nil {
			return fmt.Errorf("failed to insert leave request day: %w", err)
		}
	}
	return nil
}
