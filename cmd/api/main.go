package main

import (
	"fmt"
	"net/http"

	"github.com/hrms-suite/hrms-backend-go/internal/config"
	appHTTP "github.com/hrms-suite/hrms-backend-go/internal/handler/http"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/cron"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrms-suite/hrms-backend-go/internal/service/attendance"
	holidayService "github.com/hrms-suite/hrms-backend-go/internal/service/holiday"
	leaveService "github.com/hrms-suite/hrms-backend-go/internal/service/leave"
	noticeService "github.com/hrms-suite/hrms-backend-go/internal/service/notice"
	overtimeService "github.com/hrms-suite/hrms-backend-go/internal/service/overtime"
	reportService "github.com/hrms-suite/hrms-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	noticeRepo := postgresql.NewNoticeRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)

	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo, holidaySvc, cfg.Attendance.SandwichWindowDays)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, holidaySvc, leaveSvc, overtimeSvc, cfg.Attendance.SandwichWindowDays, cfg.Attendance.LateLoginAfter)
	noticeSvc := noticeService.NewNoticeService(noticeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceSvc)

	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	noticeHandler := appHTTP.NewNoticeHandler(noticeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(
		attendanceRepo,
		holidaySvc,
		leaveSvc,
		cfg.Attendance.WorkDayHours,
		cfg.Attendance.BackfillInterval,
	)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		holidayHandler,
		leaveHandler,
		attendanceHandler,
		overtimeHandler,
		noticeHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
