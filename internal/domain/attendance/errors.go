package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	// Check-in / check-out workflow order
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrNoCheckInFound    = errors.New("no check-in found for today")

	// Geofence
	ErrLocationRequired = errors.New("location is required to check in or out")

	// Regularization workflow
	ErrReasonRequired      = errors.New("a reason is required to request regularization")
	ErrNoIssueToRegularize = errors.New("nothing to regularize: record is neither late nor early-leave")
	ErrAlreadySubmitted    = errors.New("a regularization request has already been submitted")
	ErrInvalidDecision     = errors.New("decision must be either approved or rejected")
	ErrAlreadyReviewed     = errors.New("regularization request has already been reviewed")

	// General
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAccessDenied       = errors.New("not allowed to access this attendance record")
)

// OutOfRangeError is returned when the caller's coordinates fall outside the
// configured office radius. It carries the computed distance so clients can
// show how far off the caller was.
type OutOfRangeError struct {
	DistanceM float64
	AllowedM  float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("out of range: %.0f m from office, allowed %.0f m", e.DistanceM, e.AllowedM)
}
