package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	holidayService holiday.HolidayService
	leaveService   leave.LeaveService
	workDayHours   float64
	interval       time.Duration
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	holidayService holiday.HolidayService,
	leaveService leave.LeaveService,
	workDayHours float64,
	interval time.Duration,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		holidayService: holidayService,
		leaveService:   leaveService,
		workDayHours:   workDayHours,
		interval:       interval,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	// Gated to 00:00-00:59 UTC so yesterday's data is complete.
	scheduler.AddDailyJob("backfill_absent_records", j.interval, 0, j.BackfillAbsences)
}

// BackfillAbsences writes an Absent record for every active employee
// who has no record for yesterday and is neither on holiday nor on
// approved leave. Reconciliation already defaults missing days to
// Absent; the stored row makes the gap visible in the raw record list
// too.
func (j *AttendanceJobs) BackfillAbsences(ctx context.Context) error {
	yesterday := dateutil.Today().AddDays(-1)
	slog.Info("Cron: Starting absent back-fill job", "date", yesterday.String())

	registry, err := j.holidayService.RegistryFor(ctx, yesterday, yesterday)
	if err != nil {
		return fmt.Errorf("failed to load holidays: %w", err)
	}
	if registry.IsHoliday(yesterday) {
		slog.Info("Cron: Skipping absent back-fill on holiday", "date", yesterday.String())
		return nil
	}

	missing, err := j.attendanceRepo.ListEmployeesWithoutRecord(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to list employees without record: %w", err)
	}

	filled := 0
	for _, employeeID := range missing {
		onLeave, err := j.leaveService.DailyLeaveFor(ctx, employeeID, yesterday, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to check leave", "employee_id", employeeID, "error", err)
			continue
		}
		if len(onLeave) > 0 {
			continue
		}

		now := time.Now()
		_, err = j.attendanceRepo.Upsert(ctx, attendance.DayRecord{
			ID:         uuid.New().String(),
			EmployeeID: employeeID,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
			WorkHours:  j.workDayHours,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			slog.Error("Cron: Failed to back-fill absent record", "employee_id", employeeID, "error", err)
			continue
		}
		filled++
	}

	slog.Info("Cron: Absent back-fill complete", "count", filled)
	return nil
}
