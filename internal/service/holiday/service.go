package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func mapHolidayToResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.String(),
		Description: h.Description,
	}
}

func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := dateutil.ParseDate(req.Date)

	existing, err := s.holidayRepo.GetByDate(ctx, date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to check holiday date: %w", err)
	}
	if existing != nil {
		return holiday.HolidayResponse{}, holiday.ErrHolidayDateExists
	}

	now := time.Now()
	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Date:        date,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return mapHolidayToResponse(created), nil
}

func (s *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	existing, err := s.holidayRepo.GetByID(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.Date != nil {
		date, _ := dateutil.ParseDate(*req.Date)
		if !date.Equal(existing.Date) {
			other, err := s.holidayRepo.GetByDate(ctx, date)
			if err != nil {
				return holiday.HolidayResponse{}, fmt.Errorf("failed to check holiday date: %w", err)
			}
			if other != nil && other.ID != existing.ID {
				return holiday.HolidayResponse{}, holiday.ErrHolidayDateExists
			}
		}
		existing.Date = date
	}
	existing.UpdatedAt = time.Now()

	if err := s.holidayRepo.Update(ctx, existing); err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return mapHolidayToResponse(existing), nil
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.holidayRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

func (s *HolidayServiceImpl) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapHolidayToResponse(h))
	}
	return responses, nil
}

func (s *HolidayServiceImpl) RegistryFor(ctx context.Context, from, to dateutil.Date) (*holiday.Registry, error) {
	holidays, err := s.holidayRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays for range: %w", err)
	}
	return holiday.NewRegistry(holidays), nil
}
