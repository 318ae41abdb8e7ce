package notice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/notice"
)

type NoticeServiceImpl struct {
	noticeRepo notice.NoticeRepository
}

func NewNoticeService(noticeRepo notice.NoticeRepository) notice.NoticeService {
	return &NoticeServiceImpl{noticeRepo: noticeRepo}
}

func mapNoticeToResponse(n notice.Notice) notice.NoticeResponse {
	return notice.NoticeResponse{
		ID:       n.ID,
		Title:    n.Title,
		Body:     n.Body,
		Audience: string(n.Audience),
		PostedBy: n.PostedBy,
		PostedAt: n.PostedAt.Format(time.RFC3339),
	}
}

func (s *NoticeServiceImpl) Create(ctx context.Context, req notice.CreateNoticeRequest) (notice.NoticeResponse, error) {
	if err := req.Validate(); err != nil {
		return notice.NoticeResponse{}, err
	}

	audience := notice.Audience(req.Audience)
	if audience == "" {
		audience = notice.AudienceAll
	}

	created, err := s.noticeRepo.Create(ctx, notice.Notice{
		ID:       uuid.New().String(),
		Title:    req.Title,
		Body:     req.Body,
		Audience: audience,
		PostedBy: req.PostedBy,
		PostedAt: time.Now(),
	})
	if err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to create notice: %w", err)
	}
	return mapNoticeToResponse(created), nil
}

func (s *NoticeServiceImpl) List(ctx context.Context) ([]notice.NoticeResponse, error) {
	notices, err := s.noticeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}

	responses := make([]notice.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		responses = append(responses, mapNoticeToResponse(n))
	}
	return responses, nil
}

func (s *NoticeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.noticeRepo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}
