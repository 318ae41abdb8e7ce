package leave

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db             *database.DB
	leaveRepo      leave.LeaveRequestRepository
	employeeRepo   employee.EmployeeRepository
	holidayService holiday.HolidayService
	sandwichWindow int
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	holidayService holiday.HolidayService,
	sandwichWindow int,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:             db,
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		holidayService: holidayService,
		sandwichWindow: sandwichWindow,
	}
}

func mapLeaveRequestToResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	var session *string
	if req.HalfDaySession != nil {
		s := string(*req.HalfDaySession)
		session = &s
	}
	var actionDate *string
	if req.ActionDate != nil {
		s := req.ActionDate.String()
		actionDate = &s
	}

	days := make([]leave.LeaveRequestDayResponse, 0, len(req.Days))
	for _, day := range req.Days {
		days = append(days, leave.LeaveRequestDayResponse{
			Date:         day.Date.String(),
			Category:     string(day.Category),
			SandwichFlag: day.SandwichFlag,
		})
	}

	return leave.LeaveRequestResponse{
		ID:             req.ID,
		EmployeeID:     req.EmployeeID,
		EmployeeName:   req.EmployeeName,
		From:           req.From.String(),
		To:             req.To.String(),
		Status:         string(req.Status),
		LeaveType:      string(req.LeaveType),
		LeaveDayType:   string(req.LeaveDayType),
		HalfDaySession: session,
		Reason:         req.Reason,
		LeaveDays:      req.LeaveDays,
		RequestDate:    req.RequestDate.String(),
		ActionDate:     actionDate,
		Days:           days,
	}
}

func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	from, _ := dateutil.ParseDate(req.From)
	to, _ := dateutil.ParseDate(req.To)
	if to.Before(from) {
		return leave.LeaveRequestResponse{}, dateutil.ErrInvalidRange
	}

	dayType := leave.LeaveDayType(req.LeaveDayType)
	if dayType == "" {
		dayType = leave.LeaveDayTypeFull
	}
	if dayType == leave.LeaveDayTypeHalf {
		if !from.Equal(to) {
			return leave.LeaveRequestResponse{}, leave.ErrHalfDayMultipleDays
		}
		if req.HalfDaySession == nil {
			return leave.LeaveRequestResponse{}, leave.ErrHalfDaySessionMissing
		}
	}

	exists, err := s.employeeRepo.Exists(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return leave.LeaveRequestResponse{}, employee.ErrEmployeeNotFound
	}

	overlapping, err := s.leaveRepo.ListOverlapping(ctx, req.EmployeeID, from, to)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	if len(overlapping) > 0 {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveOverlap
	}

	var session *leave.HalfDaySession
	if req.HalfDaySession != nil {
		v := leave.HalfDaySession(*req.HalfDaySession)
		session = &v
	}

	entity := leave.LeaveRequest{
		ID:             uuid.New().String(),
		EmployeeID:     req.EmployeeID,
		From:           from,
		To:             to,
		Status:         leave.LeaveStatusPending,
		LeaveType:      leave.LeaveType(req.LeaveType),
		LeaveDayType:   dayType,
		HalfDaySession: session,
		Reason:         req.Reason,
		RequestDate:    dateutil.Today(),
	}
	entity.LeaveDays = LeaveDayCount(entity)
	entity.Days = buildDayRows(entity)

	var created leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.leaveRepo.Create(txCtx, entity)
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		if err := s.leaveRepo.ReplaceDays(txCtx, created.ID, entity.Days); err != nil {
			return fmt.Errorf("failed to store leave days: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created.Days = entity.Days
	return mapLeaveRequestToResponse(created), nil
}

// buildDayRows expands a request into its per-day rows. Unpaid-type
// requests produce unpaid days, everything else is paid.
func buildDayRows(req leave.LeaveRequest) []leave.LeaveRequestDay {
	category := leave.LeaveCategoryPaid
	if req.LeaveType == leave.LeaveTypeUnpaid {
		category = leave.LeaveCategoryUnpaid
	}

	dates, err := dateutil.ExpandRangeInclusive(req.From, req.To)
	if err != nil {
		return nil
	}

	rows := make([]leave.LeaveRequestDay, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, leave.LeaveRequestDay{
			ID:             uuid.New().String(),
			LeaveRequestID: req.ID,
			Date:           d,
			Category:       category,
		})
	}
	return rows
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status != leave.LeaveStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	sandwichDays, err := s.sandwichDaysFor(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	actionDate := dateutil.Today()
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.leaveRepo.UpdateStatus(txCtx, id, leave.LeaveStatusApproved, actionDate); err != nil {
			return fmt.Errorf("failed to approve leave request: %w", err)
		}
		if len(sandwichDays) > 0 {
			if err := s.leaveRepo.ReplaceDays(txCtx, id, append(request.Days, sandwichDays...)); err != nil {
				return fmt.Errorf("failed to store sandwich days: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err = s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return mapLeaveRequestToResponse(request), nil
}

// sandwichDaysFor finds holidays around the request that end up
// enclosed by approved leave once this request is approved, and turns
// them into unpaid flagged day rows.
func (s *LeaveServiceImpl) sandwichDaysFor(ctx context.Context, request leave.LeaveRequest) ([]leave.LeaveRequestDay, error) {
	window := s.sandwichWindow
	if window <= 0 {
		window = DefaultSandwichWindowDays
	}
	scanFrom := request.From.AddDays(-window)
	scanTo := request.To.AddDays(window)

	registry, err := s.holidayService.RegistryFor(ctx, scanFrom, scanTo)
	if err != nil {
		return nil, err
	}

	approved, err := s.leaveRepo.ListApprovedInRange(ctx, request.EmployeeID, scanFrom, scanTo)
	if err != nil {
		return nil, fmt.Errorf("failed to load approved leave for sandwich scan: %w", err)
	}
	approved = append(approved, request)

	leaveDates := make(map[string]bool)
	for _, req := range approved {
		dates, err := dateutil.ExpandRangeInclusive(req.From, req.To)
		if err != nil {
			continue
		}
		for _, d := range dates {
			leaveDates[d.String()] = true
		}
	}

	sandwiched, err := DetectSandwichDates(scanFrom, scanTo, func(d dateutil.Date) bool {
		return leaveDates[d.String()]
	}, registry, window)
	if err != nil {
		return nil, err
	}

	rows := make([]leave.LeaveRequestDay, 0, len(sandwiched))
	for _, d := range sandwiched {
		rows = append(rows, leave.LeaveRequestDay{
			ID:             uuid.New().String(),
			LeaveRequestID: request.ID,
			Date:           d,
			Category:       leave.LeaveCategoryUnpaid,
			SandwichFlag:   true,
		})
	}
	return rows, nil
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status != leave.LeaveStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	actionDate := dateutil.Today()
	if err := s.leaveRepo.UpdateStatus(ctx, req.ID, leave.LeaveStatusRejected, actionDate); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to reject leave request: %w", err)
	}

	request.Status = leave.LeaveStatusRejected
	request.ActionDate = &actionDate
	return mapLeaveRequestToResponse(request), nil
}

func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return mapLeaveRequestToResponse(request), nil
}

func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListLeaveFilter) ([]leave.LeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.leaveRepo.List(ctx, filter.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	filtered := FilterByMonthStatusType(requests, filter.Month, filter.Status, filter.LeaveType)

	responses := make([]leave.LeaveRequestResponse, 0, len(filtered))
	for _, req := range filtered {
		responses = append(responses, mapLeaveRequestToResponse(req))
	}
	return responses, nil
}

func (s *LeaveServiceImpl) DailyLeaveFor(ctx context.Context, employeeID string, from, to dateutil.Date) ([]leave.DailyLeave, error) {
	if to.Before(from) {
		return nil, dateutil.ErrInvalidRange
	}

	requests, err := s.leaveRepo.ListApprovedInRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load approved leave: %w", err)
	}

	var daily []leave.DailyLeave
	for _, req := range requests {
		expanded, err := ExpandToDailyLeave(req)
		if err != nil {
			return nil, err
		}
		for _, entry := range expanded {
			if entry.Date.Before(from) || entry.Date.After(to) {
				continue
			}
			daily = append(daily, entry)
		}
	}
	return daily, nil
}

func (s *LeaveServiceImpl) Statistics(ctx context.Context, employeeID, month string) (leave.MonthlyLeaveStatistics, error) {
	filter := leave.ListLeaveFilter{EmployeeID: employeeID, Month: month}
	if err := filter.Validate(); err != nil {
		return leave.MonthlyLeaveStatistics{}, err
	}

	requests, err := s.leaveRepo.List(ctx, employeeID)
	if err != nil {
		return leave.MonthlyLeaveStatistics{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	approved := FilterByMonthStatusType(requests, month, string(leave.LeaveStatusApproved), "")
	return ComputeMonthlyStatistics(employeeID, month, approved), nil
}
