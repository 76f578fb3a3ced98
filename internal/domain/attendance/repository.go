package attendance

import "context"

// ListFilter is the resolved form of AttendanceFilter the repository
// consumes: the service collapses date/range/month precedence into a single
// [From, To] window or an exact date before querying.
type ListFilter struct {
	EmployeeIDs []string
	Date        *string
	From        *string
	To          *string
}

// AttendanceRepository defines data access for attendance records. The store
// enforces uniqueness on (employee_id, date); mutating methods use
// conditional updates so that read-modify-write sequences cannot lose a
// concurrent write.
type AttendanceRepository interface {
	// Create inserts a new record. A unique-constraint violation on
	// (employee_id, date) is translated to ErrAlreadyCheckedIn.
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// GetByID retrieves a record by id, ErrAttendanceNotFound when absent.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns the record for (employee, date), or nil
	// when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Attendance, error)

	// SetCheckOut closes the record. The update is conditional on check_out
	// still being unset; a concurrent close surfaces as ErrAlreadyCheckedOut.
	SetCheckOut(ctx context.Context, id, checkOut string, workHours float64, isEarlyLeave bool, status Status) (Attendance, error)

	// Upsert creates or overwrites the record for (employee, date):
	// status always, check-in/out times only when supplied. Administrative
	// override, no derived-field computation.
	Upsert(ctx context.Context, record Attendance) (Attendance, error)

	// ListByEmployee returns an employee's records, date descending, within
	// the optional [from, to] window.
	ListByEmployee(ctx context.Context, employeeID string, from, to *string) ([]Attendance, error)

	// List returns records joined with the employee directory, date
	// descending.
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)

	// SubmitRegularization moves null -> pending. Conditional on the status
	// still being null; otherwise ErrAlreadySubmitted.
	SubmitRegularization(ctx context.Context, id, reason string) (Attendance, error)

	// ReviewRegularization moves pending -> approved|rejected. Conditional on
	// the status still being pending; otherwise ErrAlreadyReviewed.
	ReviewRegularization(ctx context.Context, id string, decision RegularizationStatus, comment string) (Attendance, error)

	// ListRegularizations returns records with a non-null regularization
	// status, optionally narrowed to one status, joined with the directory.
	ListRegularizations(ctx context.Context, status *RegularizationStatus) ([]Attendance, error)

	// MonthlyReport aggregates per-employee counts and hours over [from, to],
	// including employees with no records in the window.
	MonthlyReport(ctx context.Context, from, to string) ([]MonthlyReportRow, error)
}
