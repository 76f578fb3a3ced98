package attendance

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/orbitdesk/backoffice-go/internal/config"
	"github.com/orbitdesk/backoffice-go/internal/domain/attendance"
	"github.com/orbitdesk/backoffice-go/internal/domain/employee"
	"github.com/orbitdesk/backoffice-go/internal/pkg/clock"
	"github.com/orbitdesk/backoffice-go/internal/pkg/database"
	"github.com/orbitdesk/backoffice-go/internal/pkg/utils"
	"github.com/orbitdesk/backoffice-go/internal/pkg/validator"
	"github.com/orbitdesk/backoffice-go/internal/repository/postgresql"
)

// halfDayThresholdHours is the work-hour floor below which a day is
// downgraded to half-day at check-out.
const halfDayThresholdHours = 4.0

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clock  clock.Clock
	office config.OfficeConfig
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	officeClock clock.Clock,
	office config.OfficeConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		clock:                officeClock,
		office:               office,
	}
}

// employeeIDFromContext resolves the acting employee from the JWT claims.
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// checkGeofence enforces the office radius when geofencing is configured.
// Runs before any write so a failed check leaves no record behind.
func (a *AttendanceServiceImpl) checkGeofence(lat, lng *float64, allowedM float64) error {
	if !a.office.GeofenceEnabled() {
		return nil
	}
	if lat == nil || lng == nil {
		return attendance.ErrLocationRequired
	}

	distance := utils.HaversineDistance(*lat, *lng, *a.office.Latitude, *a.office.Longitude)
	if distance > allowedM {
		return &attendance.OutOfRangeError{DistanceM: distance, AllowedM: allowedM}
	}
	return nil
}

// minutesOfDay parses a zero-padded HH:mm string into minutes since midnight.
// time.Parse alone would accept unpadded hours, which would break the
// lexicographic time comparisons elsewhere, so the shape is checked first.
func minutesOfDay(hhmm string) (int, error) {
	if !validator.IsValidTimeOfDay(hhmm) {
		return 0, fmt.Errorf("invalid time of day %q", hhmm)
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", hhmm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// workHoursBetween computes decimal work hours between two same-day HH:mm
// times, rounded to 2 decimal places and never negative.
func workHoursBetween(checkIn, checkOut string) (float64, error) {
	inMin, err := minutesOfDay(checkIn)
	if err != nil {
		return 0, err
	}
	outMin, err := minutesOfDay(checkOut)
	if err != nil {
		return 0, err
	}

	diff := outMin - inMin
	if diff < 0 {
		diff = 0
	}
	return round2(float64(diff) / 60), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// monthWindow returns the first and last day of (month, year) as YYYY-MM-DD.
func monthWindow(month, year int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	today := a.clock.Today()
	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	// State preconditions outrank the fence: someone already checked in hears
	// that, not a location complaint.
	if err := a.checkGeofence(req.Latitude, req.Longitude, a.office.CheckInRadiusM); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.TimeOfDay()
	record := attendance.Attendance{
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    &now,
		Status:     attendance.StatusPresent,
		// HH:mm strings are zero-padded, so lexicographic order is
		// chronological order.
		IsLate:           now > a.office.StartTime,
		CheckInLatitude:  req.Latitude,
		CheckInLongitude: req.Longitude,
	}

	// The unique index on (employee_id, date) closes the race two concurrent
	// check-ins would otherwise win together.
	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, a.clock.Today())
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	// A manually marked record can exist without a check-in; it cannot be
	// checked out of either.
	if record == nil || record.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoCheckInFound
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	if err := a.checkGeofence(req.Latitude, req.Longitude, a.office.CheckOutRadiusM); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.TimeOfDay()
	workHours, err := workHoursBetween(*record.CheckIn, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	isEarlyLeave := now < a.office.EndTime

	// Downgrade only: a half-day never climbs back to present.
	status := record.Status
	if workHours < halfDayThresholdHours {
		status = attendance.StatusHalfDay
	}

	updated, err := a.AttendanceRepository.SetCheckOut(ctx, record.ID, now, workHours, isEarlyLeave, status)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(updated), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.MyAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	var from, to *string
	if filter.Month != nil && filter.Year != nil {
		first, last := monthWindow(*filter.Month, *filter.Year)
		from, to = &first, &last
	}

	records, err := a.AttendanceRepository.ListByEmployee(ctx, employeeID, from, to)
	if err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	summary := summarize(records)

	todayRecord, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, a.clock.Today())
	if err != nil {
		return attendance.MyAttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	response := attendance.MyAttendanceResponse{
		Records: toResponses(records),
		Summary: summary,
	}
	if todayRecord != nil {
		today := toResponse(*todayRecord)
		response.TodayRecord = &today
	}
	return response, nil
}

func summarize(records []attendance.Attendance) attendance.AttendanceSummary {
	var summary attendance.AttendanceSummary
	var totalHours float64

	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusAbsent:
			summary.Absent++
		case attendance.StatusHalfDay:
			summary.HalfDay++
		}
		if r.IsLate {
			summary.LateCount++
		}
		if r.IsEarlyLeave {
			summary.EarlyLeaveCount++
		}
		totalHours += r.WorkHours
	}

	summary.TotalWorkHours = round2(totalHours)
	return summary
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	listFilter := attendance.ListFilter{}

	// Scope to matching employees only when an identity filter is present.
	if (filter.EmployeeID != nil && *filter.EmployeeID != "") ||
		(filter.Department != nil && *filter.Department != "") {
		ids, err := a.EmployeeRepository.ListIDs(ctx, filter.EmployeeID, filter.Department)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []attendance.AttendanceResponse{}, nil
		}
		listFilter.EmployeeIDs = ids
	}

	// Single date beats range beats month window.
	switch {
	case filter.Date != nil && *filter.Date != "":
		listFilter.Date = filter.Date
	case (filter.FromDate != nil && *filter.FromDate != "") || (filter.ToDate != nil && *filter.ToDate != ""):
		listFilter.From = filter.FromDate
		listFilter.To = filter.ToDate
	case filter.Month != nil && filter.Year != nil:
		if !validator.IsValidMonth(*filter.Month) {
			return nil, validator.ValidationErrors{{Field: "month", Message: "month must be between 1 and 12"}}
		}
		first, last := monthWindow(*filter.Month, *filter.Year)
		listFilter.From, listFilter.To = &first, &last
	}

	records, err := a.AttendanceRepository.List(ctx, listFilter)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// MarkAttendance implements attendance.AttendanceService.
//
// Administrative override: upserts the record for (employee, date) and
// bypasses geofencing and late/early computation entirely.
func (a *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     attendance.Status(req.Status),
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}

	// One transaction covers the directory check and the upsert, so the
	// record cannot land after the employee row disappears under us.
	var updated attendance.Attendance
	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := a.EmployeeRepository.GetByID(txCtx, req.EmployeeID); err != nil {
			return err
		}

		var err error
		updated, err = a.AttendanceRepository.Upsert(txCtx, record)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(updated), nil
}

// ApplyRegularization implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ApplyRegularization(ctx context.Context, req attendance.ApplyRegularizationRequest) (attendance.AttendanceResponse, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return attendance.AttendanceResponse{}, attendance.ErrReasonRequired
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByID(ctx, req.AttendanceID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// A foreign record is indistinguishable from a missing one to the caller.
	if record.EmployeeID != employeeID {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}
	if !record.HasIssue() {
		return attendance.AttendanceResponse{}, attendance.ErrNoIssueToRegularize
	}
	if record.RegularizationStatus != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadySubmitted
	}

	updated, err := a.AttendanceRepository.SubmitRegularization(ctx, record.ID, reason)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(updated), nil
}

// ListRegularizations implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRegularizations(ctx context.Context, filter attendance.RegularizationFilter) ([]attendance.AttendanceResponse, error) {
	var status *attendance.RegularizationStatus
	if filter.Status != nil && *filter.Status != "" {
		if !validator.IsInSlice(*filter.Status, []string{
			string(attendance.RegularizationPending),
			string(attendance.RegularizationApproved),
			string(attendance.RegularizationRejected),
		}) {
			return nil, validator.ValidationErrors{{Field: "status", Message: "status must be one of pending, approved, rejected"}}
		}
		s := attendance.RegularizationStatus(*filter.Status)
		status = &s
	}

	records, err := a.AttendanceRepository.ListRegularizations(ctx, status)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// ReviewRegularization implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ReviewRegularization(ctx context.Context, req attendance.ReviewRegularizationRequest) (attendance.AttendanceResponse, error) {
	decision := attendance.RegularizationStatus(req.Decision)
	if decision != attendance.RegularizationApproved && decision != attendance.RegularizationRejected {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidDecision
	}

	record, err := a.AttendanceRepository.GetByID(ctx, req.AttendanceID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// A never-submitted request reads as reviewed too: there is nothing
	// pending for the reviewer to decide.
	if record.RegularizationStatus == nil || record.RegularizationReviewed() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyReviewed
	}

	updated, err := a.AttendanceRepository.ReviewRegularization(ctx, record.ID, decision, strings.TrimSpace(req.Comment))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(updated), nil
}

// OfficeInfo implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) OfficeInfo() attendance.OfficeInfoResponse {
	if !a.office.GeofenceEnabled() {
		return attendance.OfficeInfoResponse{Enabled: false}
	}
	radius := a.office.CheckInRadiusM
	return attendance.OfficeInfoResponse{
		Enabled:   true,
		Latitude:  a.office.Latitude,
		Longitude: a.office.Longitude,
		RadiusM:   &radius,
	}
}

// MonthlyReport implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyReport(ctx context.Context, month, year int) ([]attendance.MonthlyReportRow, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "month must be between 1 and 12"}}
	}

	from, to := monthWindow(month, year)
	report, err := a.AttendanceRepository.MonthlyReport(ctx, from, to)
	if err != nil {
		return nil, err
	}

	for i := range report {
		report[i].TotalHours = round2(report[i].TotalHours)
	}
	return report, nil
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:                    att.ID,
		EmployeeID:            att.EmployeeID,
		EmployeeName:          att.EmployeeName,
		EmployeeCode:          att.EmployeeCode,
		EmployeeDepartment:    att.EmployeeDepartment,
		Date:                  att.Date,
		CheckIn:               att.CheckIn,
		CheckOut:              att.CheckOut,
		Status:                att.Status,
		WorkHours:             att.WorkHours,
		IsLate:                att.IsLate,
		IsEarlyLeave:          att.IsEarlyLeave,
		RegularizationStatus:  att.RegularizationStatus,
		RegularizationReason:  att.RegularizationReason,
		RegularizationComment: att.RegularizationComment,
		Notes:                 att.Notes,
		CreatedAt:             att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             att.UpdatedAt.Format(time.RFC3339),
	}
	if att.CheckInLatitude != nil && att.CheckInLongitude != nil {
		resp.CheckInLocation = &attendance.LocationResponse{
			Latitude:  *att.CheckInLatitude,
			Longitude: *att.CheckInLongitude,
		}
	}
	return resp
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toResponse(r))
	}
	return responses
}
