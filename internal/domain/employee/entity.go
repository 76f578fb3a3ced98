package employee

import "time"

// Employee is the directory entry the attendance engine joins against. The
// directory itself is owned by the wider back office; attendance only reads
// identity and department.
type Employee struct {
	ID           string
	FullName     string
	EmployeeCode string
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
