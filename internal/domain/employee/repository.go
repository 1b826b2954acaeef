package employee

import "context"

// EmployeeRepository is the read-only directory surface the attendance
// core depends on.
type EmployeeRepository interface {
	// CountAll returns the registered headcount, used by daily stats
	CountAll(ctx context.Context) (int64, error)

	// GetByID retrieves one employee
	GetByID(ctx context.Context, id string) (Employee, error)
}
