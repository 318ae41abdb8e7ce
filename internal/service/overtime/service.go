package overtime

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/overtime"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

// minCreditHours is the worked-hours floor an approved overtime day
// must meet before it is credited.
const minCreditHours = 4.0

type OvertimeServiceImpl struct {
	overtimeRepo overtime.OvertimeRepository
	employeeRepo employee.EmployeeRepository
}

func NewOvertimeService(
	overtimeRepo overtime.OvertimeRepository,
	employeeRepo employee.EmployeeRepository,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		overtimeRepo: overtimeRepo,
		employeeRepo: employeeRepo,
	}
}

func mapOvertimeToResponse(ot overtime.Overtime) overtime.OvertimeResponse {
	return overtime.OvertimeResponse{
		ID:           ot.ID,
		EmployeeID:   ot.EmployeeID,
		EmployeeName: ot.EmployeeName,
		Date:         ot.Date.String(),
		Type:         string(ot.Type),
		Status:       string(ot.Status),
		Reason:       ot.Reason,
		Credited:     ot.Credited,
		UsedAsLeave:  ot.UsedAsLeave,
	}
}

func (s *OvertimeServiceImpl) Request(ctx context.Context, req overtime.RequestOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	exists, err := s.employeeRepo.Exists(ctx, req.EmployeeID)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return overtime.OvertimeResponse{}, employee.ErrEmployeeNotFound
	}

	date, _ := dateutil.ParseDate(req.Date)
	existing, err := s.overtimeRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to check existing overtime: %w", err)
	}
	if existing != nil {
		return overtime.OvertimeResponse{}, overtime.ErrOvertimeDateExists
	}

	now := time.Now()
	created, err := s.overtimeRepo.Create(ctx, overtime.Overtime{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		Type:       overtime.OvertimeType(req.Type),
		Status:     overtime.OvertimeStatusPending,
		Reason:     req.Reason,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to create overtime request: %w", err)
	}
	return mapOvertimeToResponse(created), nil
}

func (s *OvertimeServiceImpl) Approve(ctx context.Context, req overtime.ApproveOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	ot, err := s.overtimeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if ot.Status != overtime.OvertimeStatusPending {
		return overtime.OvertimeResponse{}, overtime.ErrOvertimeAlreadyProcessed
	}

	ot.Status = overtime.OvertimeStatusApproved
	if req.Type != "" {
		ot.Type = overtime.OvertimeType(req.Type)
	}
	ot.UpdatedAt = time.Now()

	updated, err := s.overtimeRepo.Update(ctx, ot)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to approve overtime: %w", err)
	}
	return mapOvertimeToResponse(updated), nil
}

func (s *OvertimeServiceImpl) Reject(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	ot, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if ot.Status != overtime.OvertimeStatusPending {
		return overtime.OvertimeResponse{}, overtime.ErrOvertimeAlreadyProcessed
	}

	ot.Status = overtime.OvertimeStatusRejected
	ot.UpdatedAt = time.Now()

	updated, err := s.overtimeRepo.Update(ctx, ot)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to reject overtime: %w", err)
	}
	return mapOvertimeToResponse(updated), nil
}

func (s *OvertimeServiceImpl) List(ctx context.Context, filter overtime.ListOvertimeFilter) ([]overtime.OvertimeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.overtimeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}

	responses := make([]overtime.OvertimeResponse, 0, len(requests))
	for _, ot := range requests {
		responses = append(responses, mapOvertimeToResponse(ot))
	}
	return responses, nil
}

func (s *OvertimeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.overtimeRepo.Delete(ctx, id)
}

func (s *OvertimeServiceImpl) CreditWorkedDay(ctx context.Context, employeeID string, date dateutil.Date, workedHours float64) (bool, error) {
	if workedHours < minCreditHours {
		return false, nil
	}

	ot, err := s.overtimeRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return false, fmt.Errorf("failed to load overtime for credit: %w", err)
	}
	if ot == nil || ot.Status != overtime.OvertimeStatusApproved || ot.Credited {
		return false, nil
	}

	ot.Credited = true
	ot.UpdatedAt = time.Now()
	if _, err := s.overtimeRepo.Update(ctx, *ot); err != nil {
		return false, fmt.Errorf("failed to credit overtime day: %w", err)
	}
	return true, nil
}

func (s *OvertimeServiceImpl) UseAsLeave(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	ot, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if ot.Type != overtime.OvertimeTypePending || !ot.Credited || ot.UsedAsLeave {
		return overtime.OvertimeResponse{}, overtime.ErrOvertimeNotConsumable
	}

	ot.UsedAsLeave = true
	ot.UpdatedAt = time.Now()

	updated, err := s.overtimeRepo.Update(ctx, ot)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to consume overtime day: %w", err)
	}
	return mapOvertimeToResponse(updated), nil
}

func (s *OvertimeServiceImpl) Balance(ctx context.Context, employeeID string) (overtime.BalanceResponse, error) {
	exists, err := s.employeeRepo.Exists(ctx, employeeID)
	if err != nil {
		return overtime.BalanceResponse{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return overtime.BalanceResponse{}, employee.ErrEmployeeNotFound
	}

	balance, err := s.overtimeRepo.Balance(ctx, employeeID)
	if err != nil {
		return overtime.BalanceResponse{}, fmt.Errorf("failed to load overtime balance: %w", err)
	}
	return overtime.BalanceResponse{
		EmployeeID:    employeeID,
		PendingDays:   balance.PendingDays,
		IncentiveDays: balance.IncentiveDays,
	}, nil
}
