package overtime

import (
	"context"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/overtime"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployee = "EMP101"

type fakeOvertimeRepo struct {
	byID map[string]overtime.Overtime
}

func newFakeOvertimeRepo() *fakeOvertimeRepo {
	return &fakeOvertimeRepo{byID: make(map[string]overtime.Overtime)}
}

func (f *fakeOvertimeRepo) Create(_ context.Context, ot overtime.Overtime) (overtime.Overtime, error) {
	f.byID[ot.ID] = ot
	return ot, nil
}

func (f *fakeOvertimeRepo) GetByID(_ context.Context, id string) (overtime.Overtime, error) {
	if ot, ok := f.byID[id]; ok {
		return ot, nil
	}
	return overtime.Overtime{}, overtime.ErrOvertimeNotFound
}

func (f *fakeOvertimeRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date dateutil.Date) (*overtime.Overtime, error) {
	for _, ot := range f.byID {
		if ot.EmployeeID == employeeID && ot.Date == date {
			found := ot
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeOvertimeRepo) List(_ context.Context, filter overtime.ListOvertimeFilter) ([]overtime.Overtime, error) {
	var out []overtime.Overtime
	for _, ot := range f.byID {
		if filter.EmployeeID != "" && ot.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(ot.Status) != filter.Status {
			continue
		}
		out = append(out, ot)
	}
	return out, nil
}

func (f *fakeOvertimeRepo) Update(_ context.Context, ot overtime.Overtime) (overtime.Overtime, error) {
	if _, ok := f.byID[ot.ID]; !ok {
		return overtime.Overtime{}, overtime.ErrOvertimeNotFound
	}
	f.byID[ot.ID] = ot
	return ot, nil
}

func (f *fakeOvertimeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return overtime.ErrOvertimeNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeOvertimeRepo) Balance(_ context.Context, employeeID string) (overtime.Balance, error) {
	balance := overtime.Balance{EmployeeID: employeeID}
	for _, ot := range f.byID {
		if ot.EmployeeID != employeeID || !ot.Credited || ot.UsedAsLeave {
			continue
		}
		switch ot.Type {
		case overtime.OvertimeTypePending:
			balance.PendingDays++
		case overtime.OvertimeTypeIncentive:
			balance.IncentiveDays++
		}
	}
	return balance, nil
}

type fakeEmployeeRepo struct {
	known map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if emp, ok := f.known[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.known[id]
	return ok, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.known {
		out = append(out, emp)
	}
	return out, nil
}

func newTestService(repo *fakeOvertimeRepo) overtime.OvertimeService {
	return NewOvertimeService(repo, &fakeEmployeeRepo{known: map[string]employee.Employee{
		testEmployee: {ID: testEmployee, Name: "Asha Rao", IsActive: true},
	}})
}

func requestFor(date string) overtime.RequestOvertimeRequest {
	return overtime.RequestOvertimeRequest{
		EmployeeID: testEmployee,
		Date:       date,
		Type:       string(overtime.OvertimeTypePending),
		Reason:     "release weekend",
	}
}

func TestService_Request_CreatesPending(t *testing.T) {
	svc := newTestService(newFakeOvertimeRepo())

	created, err := svc.Request(context.Background(), requestFor("2025-09-06"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, string(overtime.OvertimeStatusPending), created.Status)
	assert.Equal(t, string(overtime.OvertimeTypePending), created.Type)
	assert.False(t, created.Credited)
}

func TestService_Request_DuplicateDate(t *testing.T) {
	svc := newTestService(newFakeOvertimeRepo())

	_, err := svc.Request(context.Background(), requestFor("2025-09-06"))
	require.NoError(t, err)

	_, err = svc.Request(context.Background(), requestFor("2025-09-06"))
	assert.ErrorIs(t, err, overtime.ErrOvertimeDateExists)
}

func TestService_Request_UnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeOvertimeRepo())

	req := requestFor("2025-09-06")
	req.EmployeeID = "EMP999"
	_, err := svc.Request(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestService_Request_ValidationFailure(t *testing.T) {
	svc := newTestService(newFakeOvertimeRepo())

	req := requestFor("2025-09-06")
	req.Type = "DoubleOT"
	_, err := svc.Request(context.Background(), req)
	require.Error(t, err)
}

func TestService_Approve_SetsStatusAndType(t *testing.T) {
	svc := newTestService(newFakeOvertimeRepo())

	created, err := svc.Request(context.Background(), requestFor("2025-09-06"))
	require.NoError(t, err)

	approved, err := svc.Approve(context.Background(), overtime.ApproveOvertimeRequest{
		ID:   created.ID,
		Type: string(overtime.OvertimeTypeIncentive),
	})
	require.NoError(t, err)
	assert.Equal(t, string(overtime.OvertimeStatusApproved), approved.Status)
	assert.Equal(t, string(overtime.OvertimeTypeIncentive), approved.Type)

	// A settled request cannot be settled again.
	_, err = svc.Approve(context.Background(), overtime.ApproveOvertimeRequest{ID: created.ID})
	assert.ErrorIs(t, err, overtime.ErrOvertimeAlreadyProcessed)
}

func TestService_Reject(t *testing.T) {
	svc := newTestService(newFakeOvertimeRepo())

	created, err := svc.Request(context.Background(), requestFor("2025-09-06"))
	require.NoError(t, err)

	rejected, err := svc.Reject(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(overtime.OvertimeStatusRejected), rejected.Status)

	_, err = svc.Reject(context.Background(), created.ID)
	assert.ErrorIs(t, err, overtime.ErrOvertimeAlreadyProcessed)
}

func TestService_CreditWorkedDay(t *testing.T) {
	repo := newFakeOvertimeRepo()
	svc := newTestService(repo)
	day := dateutil.MustParseDate("2025-09-06")

	created, err := svc.Request(context.Background(), requestFor("2025-09-06"))
	require.NoError(t, err)

	// Still pending: no credit regardless of hours.
	credited, err := svc.CreditWorkedDay(context.Background(), testEmployee, day, 8)
	require.NoError(t, err)
	assert.False(t, credited)

	_, err = svc.Approve(context.Background(), overtime.ApproveOvertimeRequest{ID: created.ID})
	require.NoError(t, err)

	// Approved but under the worked-hours floor.
	credited, err = svc.CreditWorkedDay(context.Background(), testEmployee, day, 3.5)
	require.NoError(t, err)
	assert.False(t, credited)

	credited, err = svc.CreditWorkedDay(context.Background(), testEmployee, day, 8)
	require.NoError(t, err)
	assert.True(t, credited)

	// Crediting is idempotent per day.
	credited, err = svc.CreditWorkedDay(context.Background(), testEmployee, day, 8)
	require.NoError(t, err)
	assert.False(t, credited)

	// A day with no request at all is not an error.
	credited, err = svc.CreditWorkedDay(context.Background(), testEmployee, dateutil.MustParseDate("2025-09-13"), 8)
	require.NoError(t, err)
	assert.False(t, credited)
}

func TestService_UseAsLeave(t *testing.T) {
	repo := newFakeOvertimeRepo()
	svc := newTestService(repo)
	day := dateutil.MustParseDate("2025-09-06")

	created, err := svc.Request(context.Background(), requestFor("2025-09-06"))
	require.NoError(t, err)

	// Not credited yet.
	_, err = svc.UseAsLeave(context.Background(), created.ID)
	assert.ErrorIs(t, err, overtime.ErrOvertimeNotConsumable)

	_, err = svc.Approve(context.Background(), overtime.ApproveOvertimeRequest{ID: created.ID})
	require.NoError(t, err)
	_, err = svc.CreditWorkedDay(context.Background(), testEmployee, day, 8)
	require.NoError(t, err)

	used, err := svc.UseAsLeave(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, used.UsedAsLeave)

	// Each credited day converts once.
	_, err = svc.UseAsLeave(context.Background(), created.ID)
	assert.ErrorIs(t, err, overtime.ErrOvertimeNotConsumable)
}

func TestService_UseAsLeave_IncentiveNotConsumable(t *testing.T) {
	repo := newFakeOvertimeRepo()
	svc := newTestService(repo)
	day := dateutil.MustParseDate("2025-09-06")

	req := requestFor("2025-09-06")
	req.Type = string(overtime.OvertimeTypeIncentive)
	created, err := svc.Request(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), overtime.ApproveOvertimeRequest{ID: created.ID})
	require.NoError(t, err)
	_, err = svc.CreditWorkedDay(context.Background(), testEmployee, day, 9)
	require.NoError(t, err)

	_, err = svc.UseAsLeave(context.Background(), created.ID)
	assert.ErrorIs(t, err, overtime.ErrOvertimeNotConsumable)
}

func TestService_Balance_CountsCreditedUnusedDays(t *testing.T) {
	repo := newFakeOvertimeRepo()
	svc := newTestService(repo)

	setup := []struct {
		date string
		typ  overtime.OvertimeType
	}{
		{"2025-09-06", overtime.OvertimeTypePending},
		{"2025-09-13", overtime.OvertimeTypePending},
		{"2025-09-20", overtime.OvertimeTypeIncentive},
	}
	var ids []string
	for _, s := range setup {
		req := requestFor(s.date)
		req.Type = string(s.typ)
		created, err := svc.Request(context.Background(), req)
		require.NoError(t, err)
		_, err = svc.Approve(context.Background(), overtime.ApproveOvertimeRequest{ID: created.ID})
		require.NoError(t, err)
		_, err = svc.CreditWorkedDay(context.Background(), testEmployee, dateutil.MustParseDate(s.date), 8)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	balance, err := svc.Balance(context.Background(), testEmployee)
	require.NoError(t, err)
	assert.Equal(t, 2, balance.PendingDays)
	assert.Equal(t, 1, balance.IncentiveDays)

	// Consuming a pending day shrinks the balance.
	_, err = svc.UseAsLeave(context.Background(), ids[0])
	require.NoError(t, err)

	balance, err = svc.Balance(context.Background(), testEmployee)
	require.NoError(t, err)
	assert.Equal(t, 1, balance.PendingDays)
	assert.Equal(t, 1, balance.IncentiveDays)
}

func TestService_Balance_UnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeOvertimeRepo())

	_, err := svc.Balance(context.Background(), "EMP999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
