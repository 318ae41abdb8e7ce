package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/notice"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
)

type NoticeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type NoticeHandlerImpl struct {
	noticeService notice.NoticeService
}

func NewNoticeHandler(noticeService notice.NoticeService) NoticeHandler {
	return &NoticeHandlerImpl{noticeService: noticeService}
}

func (h *NoticeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req notice.CreateNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateNotice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.noticeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Notice posted successfully", created)
}

func (h *NoticeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	notices, err := h.noticeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, notices)
}

func (h *NoticeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Notice ID is required", nil)
		return
	}

	if err := h.noticeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notice deleted successfully", nil)
}
