package holiday

import (
	"context"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepo struct {
	byID map[string]holiday.Holiday
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{byID: make(map[string]holiday.Holiday)}
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.byID[h.ID] = h
	return h, nil
}

func (f *fakeHolidayRepo) GetByID(_ context.Context, id string) (holiday.Holiday, error) {
	if h, ok := f.byID[id]; ok {
		return h, nil
	}
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) GetByDate(_ context.Context, d dateutil.Date) (*holiday.Holiday, error) {
	for _, h := range f.byID {
		if h.Date.Equal(d) {
			return &h, nil
		}
	}
	return nil, nil
}

func (f *fakeHolidayRepo) List(_ context.Context) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.byID {
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHolidayRepo) ListBetween(_ context.Context, from, to dateutil.Date) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.byID {
		if h.Date.Before(from) || h.Date.After(to) {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHolidayRepo) Update(_ context.Context, h holiday.Holiday) error {
	if _, ok := f.byID[h.ID]; !ok {
		return holiday.ErrHolidayNotFound
	}
	f.byID[h.ID] = h
	return nil
}

func (f *fakeHolidayRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return holiday.ErrHolidayNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestService_Create(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo())

	created, err := svc.Create(context.Background(), holiday.CreateHolidayRequest{
		Name: "Founders Day",
		Date: "2025-09-06",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Founders Day", created.Name)
	assert.Equal(t, "2025-09-06", created.Date)
}

func TestService_Create_DuplicateDate(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo())

	_, err := svc.Create(context.Background(), holiday.CreateHolidayRequest{Name: "Founders Day", Date: "2025-09-06"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), holiday.CreateHolidayRequest{Name: "Another", Date: "2025-09-06"})
	assert.ErrorIs(t, err, holiday.ErrHolidayDateExists)
}

func TestService_Create_ValidationFailure(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo())

	_, err := svc.Create(context.Background(), holiday.CreateHolidayRequest{Name: "", Date: "06/09/2025"})
	require.Error(t, err)
}

func TestService_Update_MoveToTakenDate(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo())

	first, err := svc.Create(context.Background(), holiday.CreateHolidayRequest{Name: "Founders Day", Date: "2025-09-06"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), holiday.CreateHolidayRequest{Name: "Harvest Festival", Date: "2025-09-20"})
	require.NoError(t, err)

	taken := "2025-09-20"
	_, err = svc.Update(context.Background(), holiday.UpdateHolidayRequest{ID: first.ID, Date: &taken})
	assert.ErrorIs(t, err, holiday.ErrHolidayDateExists)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo())

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestService_RegistryFor_ScopesToRange(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo())

	_, err := svc.Create(context.Background(), holiday.CreateHolidayRequest{Name: "Founders Day", Date: "2025-09-06"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), holiday.CreateHolidayRequest{Name: "Harvest Festival", Date: "2025-10-20"})
	require.NoError(t, err)

	registry, err := svc.RegistryFor(context.Background(), dateutil.MustParseDate("2025-09-01"), dateutil.MustParseDate("2025-09-30"))
	require.NoError(t, err)

	assert.True(t, registry.IsHoliday(dateutil.MustParseDate("2025-09-06")))
	assert.False(t, registry.IsHoliday(dateutil.MustParseDate("2025-10-20")))
}
