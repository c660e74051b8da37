package domain

import "fmt"

// Role is the closed set of actors the system knows about. Adding a value
// here must be followed by a review of every switch over Role.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStudent  Role = "student"
	RoleLecturer Role = "lecturer"
	RoleExaminer Role = "examiner"
)

// Roles returns every role in a stable order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleStudent, RoleLecturer, RoleExaminer}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleLecturer, RoleExaminer:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole converts raw input into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", NewValidationError(fmt.Sprintf("role must be one of: admin student lecturer examiner (got %q)", s))
	}
	return r, nil
}
