package notice

import (
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

type CreateNoticeRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Audience string `json:"audience"`
	PostedBy string `json:"posted_by"`
}

func (r CreateNoticeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "body is required"})
	}
	if r.Audience != "" && !validator.IsInSlice(r.Audience, []string{
		string(AudienceAll), string(AudienceEmployees), string(AudienceAdmins),
	}) {
		errs = append(errs, validator.ValidationError{Field: "audience", Message: "unknown audience"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NoticeResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Audience string `json:"audience"`
	PostedBy string `json:"posted_by"`
	PostedAt string `json:"posted_at"`
}
