package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// ListIDs returns employee ids matching the optional filters, used to
	// scope attendance listings.
	ListIDs(ctx context.Context, employeeID, department *string) ([]string, error)
}
