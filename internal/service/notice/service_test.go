package notice

import (
	"context"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/notice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoticeRepo struct {
	notices []notice.Notice
}

func (f *fakeNoticeRepo) Create(_ context.Context, n notice.Notice) (notice.Notice, error) {
	// Newest first, matching the repository ordering contract.
	f.notices = append([]notice.Notice{n}, f.notices...)
	return n, nil
}

func (f *fakeNoticeRepo) List(_ context.Context) ([]notice.Notice, error) {
	return f.notices, nil
}

func (f *fakeNoticeRepo) Delete(_ context.Context, id string) error {
	for i, n := range f.notices {
		if n.ID == id {
			f.notices = append(f.notices[:i], f.notices[i+1:]...)
			return nil
		}
	}
	return notice.ErrNoticeNotFound
}

func TestService_Create_DefaultsAudienceToAll(t *testing.T) {
	svc := NewNoticeService(&fakeNoticeRepo{})

	created, err := svc.Create(context.Background(), notice.CreateNoticeRequest{
		Title:    "Office closed Friday",
		Body:     "The office will be closed for maintenance.",
		PostedBy: "EMP100",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, string(notice.AudienceAll), created.Audience)
}

func TestService_Create_ValidationFailure(t *testing.T) {
	svc := NewNoticeService(&fakeNoticeRepo{})

	_, err := svc.Create(context.Background(), notice.CreateNoticeRequest{
		Title:    "",
		Body:     "Missing a title",
		Audience: "Everyone",
	})
	require.Error(t, err)
}

func TestService_List_NewestFirst(t *testing.T) {
	svc := NewNoticeService(&fakeNoticeRepo{})

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := svc.Create(context.Background(), notice.CreateNoticeRequest{
			Title: title,
			Body:  "body",
		})
		require.NoError(t, err)
	}

	notices, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, notices, 3)
	assert.Equal(t, "Third", notices[0].Title)
	assert.Equal(t, "First", notices[2].Title)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := NewNoticeService(&fakeNoticeRepo{})

	err := svc.Delete(context.Background(), "missing-id")
	assert.ErrorIs(t, err, notice.ErrNoticeNotFound)
}
