package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	PunchStatus(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
	SandwichLeaves(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

func rangeQueryFromRequest(r *http.Request) attendance.RangeQuery {
	return attendance.RangeQuery{
		EmployeeID: r.URL.Query().Get("employee_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}
}

func (h *AttendanceHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertDayRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	stored, err := h.attendanceService.UpsertRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record saved successfully", stored)
}

func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListRecords(r.Context(), rangeQueryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, records, &response.Meta{TotalItems: int64(len(records))})
}

func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance record ID is required", nil)
		return
	}

	if err := h.attendanceService.DeleteRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}

func (h *AttendanceHandlerImpl) PunchStatus(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	status, err := h.attendanceService.PunchStatus(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

func (h *AttendanceHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	days, err := h.attendanceService.Reconcile(r.Context(), rangeQueryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}

func (h *AttendanceHandlerImpl) SandwichLeaves(w http.ResponseWriter, r *http.Request) {
	entries, err := h.attendanceService.SandwichLeaves(r.Context(), rangeQueryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

func (h *AttendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	q := attendance.MonthQuery{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Month:      r.URL.Query().Get("month"),
	}

	summary, err := h.attendanceService.MonthlySummary(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
