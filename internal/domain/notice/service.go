package notice

import "context"

type NoticeService interface {
	Create(ctx context.Context, req CreateNoticeRequest) (NoticeResponse, error)

	List(ctx context.Context) ([]NoticeResponse, error)

	Delete(ctx context.Context, id string) error
}
