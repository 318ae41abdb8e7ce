package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/overtime"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

type AttendanceServiceImpl struct {
	attendanceRepo  attendance.AttendanceRepository
	employeeRepo    employee.EmployeeRepository
	holidayService  holiday.HolidayService
	leaveService    leave.LeaveService
	overtimeService overtime.OvertimeService
	sandwichWindow  int
	lateLoginAfter  string
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayService holiday.HolidayService,
	leaveService leave.LeaveService,
	overtimeService overtime.OvertimeService,
	sandwichWindow int,
	lateLoginAfter string,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		holidayService:  holidayService,
		leaveService:    leaveService,
		overtimeService: overtimeService,
		sandwichWindow:  sandwichWindow,
		lateLoginAfter:  lateLoginAfter,
	}
}

func mapDayRecordToResponse(rec attendance.DayRecord) attendance.DayRecordResponse {
	return attendance.DayRecordResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		Date:          rec.Date.String(),
		Status:        string(rec.Status),
		PunchIn:       rec.PunchIn,
		PunchOut:      rec.PunchOut,
		WorkHours:     rec.WorkHours,
		WorkedHours:   rec.WorkedHours,
		IdleTime:      rec.IdleTime,
		IsHalfDay:     rec.IsHalfDay,
		IsLateLogin:   rec.IsLateLogin,
		IsOvertimeDay: rec.IsOvertimeDay,
	}
}

func mapReconciledDayToResponse(day attendance.ReconciledDay) attendance.ReconciledDayResponse {
	var session *string
	if day.HalfDaySession != nil {
		s := string(*day.HalfDaySession)
		session = &s
	}
	return attendance.ReconciledDayResponse{
		Date:           day.Date.String(),
		Status:         string(day.Status),
		Source:         string(day.Source),
		HolidayName:    day.HolidayName,
		LeaveType:      string(day.LeaveType),
		LeaveCategory:  string(day.LeaveCategory),
		HalfDaySession: session,
		PunchIn:        day.PunchIn,
		PunchOut:       day.PunchOut,
		WorkHours:      day.WorkHours,
		WorkedHours:    day.WorkedHours,
		IdleTime:       day.IdleTime,
		IsHalfDay:      day.IsHalfDay,
		IsLateLogin:    day.IsLateLogin,
		IsOvertimeDay:  day.IsOvertimeDay,
		Sandwiched:     day.Sandwiched,
	}
}

func (s *AttendanceServiceImpl) UpsertRecord(ctx context.Context, req attendance.UpsertDayRecordRequest) (attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayRecordResponse{}, err
	}

	exists, err := s.employeeRepo.Exists(ctx, req.EmployeeID)
	if err != nil {
		return attendance.DayRecordResponse{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return attendance.DayRecordResponse{}, employee.ErrEmployeeNotFound
	}

	date, _ := dateutil.ParseDate(req.Date)
	status := attendance.DayStatus(req.Status)

	// A present day can earn an approved overtime credit once the
	// worked hours are known.
	overtimeDay := false
	if status == attendance.StatusPresent {
		overtimeDay, err = s.overtimeService.CreditWorkedDay(ctx, req.EmployeeID, date, req.WorkedHours)
		if err != nil {
			return attendance.DayRecordResponse{}, fmt.Errorf("failed to credit overtime day: %w", err)
		}
	}

	now := time.Now()
	rec := attendance.DayRecord{
		ID:            uuid.New().String(),
		EmployeeID:    req.EmployeeID,
		Date:          date,
		Status:        status,
		PunchIn:       req.PunchIn,
		PunchOut:      req.PunchOut,
		WorkHours:     req.WorkHours,
		WorkedHours:   req.WorkedHours,
		IdleTime:      idleTime(req.WorkHours, req.WorkedHours),
		IsHalfDay:     req.IsHalfDay,
		IsLateLogin:   s.isLateLogin(status, req.PunchIn),
		IsOvertimeDay: overtimeDay,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	stored, err := s.attendanceRepo.Upsert(ctx, rec)
	if err != nil {
		return attendance.DayRecordResponse{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}
	return mapDayRecordToResponse(stored), nil
}

// isLateLogin flags a present day whose punch-in lands after the
// configured threshold. Zero-padded HH:MM strings compare in clock
// order.
func (s *AttendanceServiceImpl) isLateLogin(status attendance.DayStatus, punchIn *string) bool {
	return status == attendance.StatusPresent && punchIn != nil && *punchIn > s.lateLoginAfter
}

func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, q attendance.RangeQuery) ([]attendance.DayRecordResponse, error) {
	from, to, err := parseRange(q)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListRange(ctx, q.EmployeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.DayRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapDayRecordToResponse(rec))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

func (s *AttendanceServiceImpl) PunchStatus(ctx context.Context, employeeID string) (attendance.PunchStatusResponse, error) {
	exists, err := s.employeeRepo.Exists(ctx, employeeID)
	if err != nil {
		return attendance.PunchStatusResponse{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return attendance.PunchStatusResponse{}, employee.ErrEmployeeNotFound
	}

	today := dateutil.Today()
	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.PunchStatusResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}

	resp := attendance.PunchStatusResponse{
		EmployeeID: employeeID,
		Date:       today.String(),
		Status:     string(attendance.StatusAbsent),
	}
	if rec != nil {
		resp.Status = string(rec.Status)
		resp.PunchIn = rec.PunchIn
		resp.PunchOut = rec.PunchOut
	}
	return resp, nil
}

func (s *AttendanceServiceImpl) Reconcile(ctx context.Context, q attendance.RangeQuery) ([]attendance.ReconciledDayResponse, error) {
	days, err := s.reconcileRange(ctx, q)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.ReconciledDayResponse, 0, len(days))
	for _, day := range days {
		responses = append(responses, mapReconciledDayToResponse(day))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) SandwichLeaves(ctx context.Context, q attendance.RangeQuery) ([]attendance.SandwichLeaveEntryResponse, error) {
	days, err := s.reconcileRange(ctx, q)
	if err != nil {
		return nil, err
	}

	entries := DetectSandwichLeaves(days, s.sandwichWindow)
	responses := make([]attendance.SandwichLeaveEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, attendance.SandwichLeaveEntryResponse{
			Date:    entry.Date.String(),
			From:    entry.From.String(),
			To:      entry.To.String(),
			Message: fmt.Sprintf("Holiday on %s falls inside the leave from %s to %s and counts as leave", entry.Date, entry.From, entry.To),
		})
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) MonthlySummary(ctx context.Context, q attendance.MonthQuery) (attendance.MonthlySummaryResponse, error) {
	if err := q.Validate(); err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	from, to, err := dateutil.ParseMonthKey(q.Month)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	days, err := s.reconcile(ctx, q.EmployeeID, from, to)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}
	DetectSandwichLeaves(days, s.sandwichWindow)
	summary := Summarize(days)

	return attendance.MonthlySummaryResponse{
		EmployeeID:       q.EmployeeID,
		Month:            q.Month,
		PresentDays:      summary.PresentDays,
		AbsentDays:       summary.AbsentDays,
		LeaveDays:        summary.LeaveDays,
		HolidayDays:      summary.HolidayDays,
		HalfDays:         summary.HalfDays,
		SandwichDays:     summary.SandwichDays,
		TotalWorkHours:   summary.TotalWorkHours,
		TotalWorkedHours: summary.TotalWorkedHours,
		TotalIdleHours:   summary.TotalIdleHours,
	}, nil
}

func parseRange(q attendance.RangeQuery) (dateutil.Date, dateutil.Date, error) {
	if err := q.Validate(); err != nil {
		return dateutil.Date{}, dateutil.Date{}, err
	}
	from, _ := dateutil.ParseDate(q.StartDate)
	to, _ := dateutil.ParseDate(q.EndDate)
	if to.Before(from) {
		return dateutil.Date{}, dateutil.Date{}, dateutil.ErrInvalidRange
	}
	return from, to, nil
}

func (s *AttendanceServiceImpl) reconcileRange(ctx context.Context, q attendance.RangeQuery) ([]attendance.ReconciledDay, error) {
	from, to, err := parseRange(q)
	if err != nil {
		return nil, err
	}
	return s.reconcile(ctx, q.EmployeeID, from, to)
}

// reconcile gathers the three inputs and runs the merge for one
// employee across [from, to]. An employee with no data reconciles to
// an all-absent/holiday sequence rather than an error.
func (s *AttendanceServiceImpl) reconcile(ctx context.Context, employeeID string, from, to dateutil.Date) ([]attendance.ReconciledDay, error) {
	registry, err := s.holidayService.RegistryFor(ctx, from, to)
	if err != nil {
		return nil, err
	}

	dailyLeave, err := s.leaveService.DailyLeaveFor(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return Reconcile(employeeID, from, to, records, registry, dailyLeave)
}
