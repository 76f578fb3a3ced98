package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
)

// ValidStatus reports whether s names a known attendance status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusHalfDay:
		return true
	}
	return false
}

type RegularizationStatus string

const (
	RegularizationPending  RegularizationStatus = "pending"
	RegularizationApproved RegularizationStatus = "approved"
	RegularizationRejected RegularizationStatus = "rejected"
)

// Attendance is one record per (employee, date). Dates are office-local
// YYYY-MM-DD strings and clock times are zero-padded HH:mm strings, matching
// the persisted representation; work-hour arithmetic combines them into
// same-day instants before subtracting.
type Attendance struct {
	ID                    string
	EmployeeID            string
	Date                  string  // YYYY-MM-DD, immutable after creation
	CheckIn               *string // HH:mm
	CheckOut              *string // HH:mm
	Status                Status
	WorkHours             float64
	IsLate                bool
	IsEarlyLeave          bool
	CheckInLatitude       *float64
	CheckInLongitude      *float64
	RegularizationStatus  *RegularizationStatus
	RegularizationReason  string
	RegularizationComment string
	Notes                 string
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// Join fields, populated by listing queries
	EmployeeName       *string
	EmployeeCode       *string
	EmployeeDepartment *string
}

// HasIssue reports whether the record carries a late or early-leave flag that
// a regularization request could contest.
func (a *Attendance) HasIssue() bool {
	return a.IsLate || a.IsEarlyLeave
}

// RegularizationReviewed reports whether the regularization workflow has
// reached a terminal state.
func (a *Attendance) RegularizationReviewed() bool {
	if a.RegularizationStatus == nil {
		return false
	}
	return *a.RegularizationStatus == RegularizationApproved ||
		*a.RegularizationStatus == RegularizationRejected
}
