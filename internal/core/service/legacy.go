package service

import "github.com/gctu/attendance-api/internal/core/domain"

// LegacyPasswords toggles the per-role default passwords accepted by the
// first generation of the attendance system. Off unless explicitly enabled.
type LegacyPasswords bool

// For returns the legacy default for role.
func (l LegacyPasswords) For(role domain.Role) (string, bool) {
	if !l {
		return "", false
	}
	switch role {
	case domain.RoleStudent:
		return "student @gctu", true
	case domain.RoleLecturer, domain.RoleExaminer:
		return "staff@gctu", true
	case domain.RoleAdmin:
		return "admin123", true
	}
	return "", false
}

// Matches reports whether password equals the legacy default for role.
func (l LegacyPasswords) Matches(role domain.Role, password string) bool {
	def, ok := l.For(role)
	return ok && password == def
}
