package attendance

import "context"

// AttendanceService defines business logic for attendance operations. The
// acting employee is resolved from the JWT claims in ctx.
type AttendanceService interface {
	// CheckIn opens today's record for the caller, enforcing the office
	// geofence and computing the late flag.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's record, computing work hours, the early-leave
	// flag and the half-day downgrade.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetMyAttendance returns the caller's records for an optional
	// (month, year) window, with aggregate summary and today's record.
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (MyAttendanceResponse, error)

	// ListAttendance returns filtered records joined with the employee
	// directory (hr/admin).
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)

	// MarkAttendance is the administrative upsert override (hr/admin).
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// ApplyRegularization submits an employee's request to excuse a late or
	// early-leave flag on their own record.
	ApplyRegularization(ctx context.Context, req ApplyRegularizationRequest) (AttendanceResponse, error)

	// ListRegularizations returns the review queue (hr/admin).
	ListRegularizations(ctx context.Context, filter RegularizationFilter) ([]AttendanceResponse, error)

	// ReviewRegularization resolves a pending request (hr/admin).
	ReviewRegularization(ctx context.Context, req ReviewRegularizationRequest) (AttendanceResponse, error)

	// OfficeInfo discloses the geofence parameters. Public.
	OfficeInfo() OfficeInfoResponse

	// MonthlyReport aggregates per-employee attendance for a month (hr/admin).
	MonthlyReport(ctx context.Context, month, year int) ([]MonthlyReportRow, error)
}
