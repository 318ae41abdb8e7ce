package employee

import "context"

// EmployeeRepository is a read-only lookup used for validation,
// statistics headers and reports. Employee lifecycle is owned by an
// upstream system.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	Exists(ctx context.Context, id string) (bool, error)

	ListActive(ctx context.Context) ([]Employee, error)
}
