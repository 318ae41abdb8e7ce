package notice

import "context"

type NoticeRepository interface {
	Create(ctx context.Context, n Notice) (Notice, error)

	// List returns notices newest first.
	List(ctx context.Context) ([]Notice, error)

	Delete(ctx context.Context, id string) error
}
