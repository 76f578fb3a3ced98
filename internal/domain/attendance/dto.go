package attendance

import (
	"github.com/orbitdesk/backoffice-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// Coordinates are optional on check-in/out: required only when the office has
// a configured geofence, which the service decides.
type CheckInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *CheckInRequest) Validate() error {
	return validateCoordinates(r.Latitude, r.Longitude)
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *CheckOutRequest) Validate() error {
	return validateCoordinates(r.Latitude, r.Longitude)
}

func validateCoordinates(lat, lng *float64) error {
	var errs validator.ValidationErrors

	if (lat == nil) != (lng == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "latitude and longitude must be supplied together",
		})
	}
	if lat != nil && !validator.IsValidLatitude(*lat) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if lng != nil && !validator.IsValidLongitude(*lng) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}
	if !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, absent, half-day",
		})
	}
	if r.CheckIn != nil && !validator.IsValidTimeOfDay(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be a zero-padded HH:mm time",
		})
	}
	if r.CheckOut != nil && !validator.IsValidTimeOfDay(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must be a zero-padded HH:mm time",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApplyRegularizationRequest struct {
	AttendanceID string `json:"attendance_id"`
	Reason       string `json:"reason"`
}

type ReviewRegularizationRequest struct {
	AttendanceID string `json:"-"`
	Decision     string `json:"status"`
	Comment      string `json:"comment"`
}

// ========================================
// FILTERS
// ========================================

type MyAttendanceFilter struct {
	Month *int
	Year  *int
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if (f.Month == nil) != (f.Year == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and year must be supplied together",
		})
	}
	if f.Month != nil && !validator.IsValidMonth(*f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceFilter narrows the administrative listing. Precedence when
// several date filters are supplied: Date wins over (FromDate, ToDate), which
// wins over (Month, Year).
type AttendanceFilter struct {
	EmployeeID *string
	Department *string
	Date       *string
	FromDate   *string
	ToDate     *string
	Month      *int
	Year       *int
}

type RegularizationFilter struct {
	Status *string
}

// ========================================
// RESPONSES
// ========================================

type LocationResponse struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type AttendanceResponse struct {
	ID                    string                `json:"id"`
	EmployeeID            string                `json:"employee_id"`
	EmployeeName          *string               `json:"employee_name,omitempty"`
	EmployeeCode          *string               `json:"employee_code,omitempty"`
	EmployeeDepartment    *string               `json:"employee_department,omitempty"`
	Date                  string                `json:"date"`
	CheckIn               *string               `json:"check_in,omitempty"`
	CheckOut              *string               `json:"check_out,omitempty"`
	Status                Status                `json:"status"`
	WorkHours             float64               `json:"work_hours"`
	IsLate                bool                  `json:"is_late"`
	IsEarlyLeave          bool                  `json:"is_early_leave"`
	CheckInLocation       *LocationResponse     `json:"check_in_location,omitempty"`
	RegularizationStatus  *RegularizationStatus `json:"regularization_status,omitempty"`
	RegularizationReason  string                `json:"regularization_reason,omitempty"`
	RegularizationComment string                `json:"regularization_comment,omitempty"`
	Notes                 string                `json:"notes,omitempty"`
	CreatedAt             string                `json:"created_at"`
	UpdatedAt             string                `json:"updated_at"`
}

// AttendanceSummary aggregates a set of records for the self-service view.
type AttendanceSummary struct {
	Present         int     `json:"present"`
	Absent          int     `json:"absent"`
	HalfDay         int     `json:"half_day"`
	TotalWorkHours  float64 `json:"total_work_hours"`
	LateCount       int     `json:"late_count"`
	EarlyLeaveCount int     `json:"early_leave_count"`
}

type MyAttendanceResponse struct {
	Records     []AttendanceResponse `json:"records"`
	Summary     AttendanceSummary    `json:"summary"`
	TodayRecord *AttendanceResponse  `json:"today_record"`
}

// OfficeInfoResponse discloses whether geofencing is active and its
// parameters, for client-side map rendering. Public, no auth required.
type OfficeInfoResponse struct {
	Enabled   bool     `json:"enabled"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lng,omitempty"`
	RadiusM   *float64 `json:"radius,omitempty"`
}

// MonthlyReportRow is one employee's aggregate for the admin monthly report.
type MonthlyReportRow struct {
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       string  `json:"employee_name"`
	EmployeeCode       string  `json:"employee_code"`
	EmployeeDepartment string  `json:"employee_department"`
	Present            int     `json:"present"`
	Absent             int     `json:"absent"`
	HalfDay            int     `json:"half_day"`
	TotalDays          int     `json:"total_days"`
	TotalHours         float64 `json:"total_hours"`
}
