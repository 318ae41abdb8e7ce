package holiday

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

type Holiday struct {
	ID          string
	Name        string
	Date        dateutil.Date
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
