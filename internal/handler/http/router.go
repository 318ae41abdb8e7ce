package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/hrms-suite/hrms-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	holidayHandler HolidayHandler,
	leaveHandler LeaveHandler,
	attendanceHandler AttendanceHandler,
	overtimeHandler OvertimeHandler,
	noticeHandler NoticeHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", holidayHandler.List)
			r.Post("/", holidayHandler.Create)
			r.Put("/{id}", holidayHandler.Update)
			r.Delete("/{id}", holidayHandler.Delete)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", leaveHandler.List)
			r.Post("/", leaveHandler.Apply)
			r.Get("/statistics", leaveHandler.Statistics)
			r.Get("/{id}", leaveHandler.Get)
			r.Post("/{id}/approve", leaveHandler.Approve)
			r.Post("/{id}/reject", leaveHandler.Reject)
		})

		r.Route("/attendances", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/", attendanceHandler.Upsert)
			r.Get("/punch-status", attendanceHandler.PunchStatus)
			r.Get("/reconcile", attendanceHandler.Reconcile)
			r.Get("/sandwich-leaves", attendanceHandler.SandwichLeaves)
			r.Get("/summary", attendanceHandler.MonthlySummary)
			r.Delete("/{id}", attendanceHandler.Delete)
		})

		r.Route("/overtimes", func(r chi.Router) {
			r.Get("/", overtimeHandler.List)
			r.Post("/", overtimeHandler.Request)
			r.Get("/balance", overtimeHandler.Balance)
			r.Post("/{id}/approve", overtimeHandler.Approve)
			r.Post("/{id}/reject", overtimeHandler.Reject)
			r.Post("/{id}/use-as-leave", overtimeHandler.UseAsLeave)
			r.Delete("/{id}", overtimeHandler.Delete)
		})

		r.Route("/notices", func(r chi.Router) {
			r.Get("/", noticeHandler.List)
			r.Post("/", noticeHandler.Create)
			r.Delete("/{id}", noticeHandler.Delete)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/attendance", reportHandler.MonthlyAttendance)
		})
	})
	return r
}
