package employee

import "time"

type Employee struct {
	ID         string
	Name       string
	Email      *string
	Department *string
	Position   *string
	IsActive   bool
	JoinDate   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
