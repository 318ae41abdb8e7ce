package notice

import "time"

type Audience string

const (
	AudienceAll       Audience = "All"
	AudienceEmployees Audience = "Employees"
	AudienceAdmins    Audience = "Admins"
)

type Notice struct {
	ID       string
	Title    string
	Body     string
	Audience Audience
	PostedBy string
	PostedAt time.Time
}
