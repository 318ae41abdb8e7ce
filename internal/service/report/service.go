package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/report"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
	"github.com/jung-kurt/gofpdf"
)

type ReportServiceImpl struct {
	employeeRepo      employee.EmployeeRepository
	attendanceService attendance.AttendanceService
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceService attendance.AttendanceService,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:      employeeRepo,
		attendanceService: attendanceService,
	}
}

func (s *ReportServiceImpl) MonthlyAttendance(ctx context.Context, req report.MonthlyAttendanceRequest) ([]byte, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, "", err
	}

	from, to, err := dateutil.ParseMonthKey(req.Month)
	if err != nil {
		return nil, "", err
	}

	days, err := s.attendanceService.Reconcile(ctx, attendance.RangeQuery{
		EmployeeID: req.EmployeeID,
		StartDate:  from.String(),
		EndDate:    to.String(),
	})
	if err != nil {
		return nil, "", err
	}

	summary, err := s.attendanceService.MonthlySummary(ctx, attendance.MonthQuery{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
	})
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Monthly Attendance Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", emp.Name, emp.ID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", req.Month))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Present: %d   Absent: %d   Leave: %d   Holiday: %d",
		summary.PresentDays, summary.AbsentDays, summary.LeaveDays, summary.HolidayDays))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Half days: %d   Sandwich days: %d",
		summary.HalfDays, summary.SandwichDays))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Hours worked: %.2f of %.2f (idle %.2f)",
		summary.TotalWorkedHours, summary.TotalWorkHours, summary.TotalIdleHours))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(28, 8, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(24, 8, "Status", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "In", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Out", "1", 0, "L", false, 0, "")
	pdf.CellFormat(22, 8, "Worked", "1", 0, "R", false, 0, "")
	pdf.CellFormat(76, 8, "Detail", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, day := range days {
		pdf.CellFormat(28, 7, day.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(24, 7, day.Status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, clock(day.PunchIn), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, clock(day.PunchOut), "1", 0, "L", false, 0, "")
		pdf.CellFormat(22, 7, fmt.Sprintf("%.2f", day.WorkedHours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(76, 7, dayDetail(day), "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render attendance report: %w", err)
	}

	filename := fmt.Sprintf("attendance-%s-%s.pdf", req.EmployeeID, req.Month)
	return buf.Bytes(), filename, nil
}

func clock(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func dayDetail(day attendance.ReconciledDayResponse) string {
	switch attendance.DayStatus(day.Status) {
	case attendance.StatusHoliday:
		detail := day.HolidayName
		if day.Sandwiched {
			detail += " (sandwich leave)"
		}
		return detail
	case attendance.StatusLeave:
		return fmt.Sprintf("%s leave (%s)", day.LeaveType, day.LeaveCategory)
	default:
		return ""
	}
}
