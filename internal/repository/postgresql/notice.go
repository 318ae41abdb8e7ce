package postgresql

import (
	"context"
	"fmt"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/notice"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type noticeRepository struct {
	db *database.DB
}

func NewNoticeRepository(db *database.DB) notice.NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, n notice.Notice) (notice.Notice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notices (id, title, body, audience, posted_by, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := q.Exec(ctx, query, n.ID, n.Title, n.Body, string(n.Audience), n.PostedBy, n.PostedAt)
	if err != nil {
		return notice.Notice{}, fmt.Errorf("failed to insert notice: %w", err)
	}
	return n, nil
}

func (r *noticeRepository) List(ctx context.Context) ([]notice.Notice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, body, audience, posted_by, posted_at
		FROM notices
		ORDER BY posted_at DESC
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	defer rows.Close()

	var notices []notice.Notice
	for rows.Next() {
		var n notice.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.Audience, &n.PostedBy, &n.PostedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notice: %w", err)
		}
		notices = append(notices, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notices: %w", err)
	}
	return notices, nil
}

func (r *noticeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notice.ErrNoticeNotFound
	}
	return nil
}
