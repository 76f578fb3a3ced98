package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/orbitdesk/backoffice-go/internal/domain/attendance"
	"github.com/orbitdesk/backoffice-go/internal/domain/auth"
	"github.com/orbitdesk/backoffice-go/internal/domain/employee"
	"github.com/orbitdesk/backoffice-go/internal/domain/user"
	"github.com/orbitdesk/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofence violations carry the computed distance
	var outOfRange *attendance.OutOfRangeError
	if errors.As(err, &outOfRange) {
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "OUT_OF_RANGE",
				Message: outOfRange.Error(),
				Details: map[string]string{
					"distance":       fmt.Sprintf("%.0f", outOfRange.DistanceM),
					"allowed_radius": fmt.Sprintf("%.0f", outOfRange.AllowedM),
				},
			},
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, "HR or admin access required")

	// Employee directory errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance workflow-order violations
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNoCheckInFound):
		NotFound(w, "No check-in found for today")
	case errors.Is(err, attendance.ErrLocationRequired):
		BadRequest(w, "Location is required to check in or out", nil)

	// Regularization workflow violations
	case errors.Is(err, attendance.ErrReasonRequired):
		BadRequest(w, "A reason is required to request regularization", nil)
	case errors.Is(err, attendance.ErrNoIssueToRegularize):
		BadRequest(w, "Record has no late or early-leave flag to regularize", nil)
	case errors.Is(err, attendance.ErrAlreadySubmitted):
		Conflict(w, "A regularization request has already been submitted")
	case errors.Is(err, attendance.ErrInvalidDecision):
		BadRequest(w, "Decision must be either approved or rejected", nil)
	case errors.Is(err, attendance.ErrAlreadyReviewed):
		Conflict(w, "Regularization request has already been reviewed")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAccessDenied):
		Forbidden(w, "Not allowed to access this attendance record")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
