package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee
	RoleSales    Role = "sales"    // Sales staff - CRM access
	RoleHR       Role = "hr"       // Can mark attendance and review regularizations
	RoleAdmin    Role = "admin"    // Full administrative access
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the role has full administrative access
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsHR checks if the role is HR or admin
func (r Role) IsHR() bool {
	return r == RoleHR || r.IsAdmin()
}

// CanReviewAttendance checks if the role can mark attendance and review
// regularization requests
func (r Role) CanReviewAttendance() bool {
	return r.IsHR()
}

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleEmployee, RoleSales, RoleHR, RoleAdmin:
		return true
	}
	return false
}
