package domain

import "time"

// AdminUserID is the identifier of the synthesized administrator account.
const AdminUserID = "admin"

// User models an authenticated actor in the system.
type User struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	Level        int       `json:"level,omitempty"`
	Program      string    `json:"program,omitempty"`
	Department   string    `json:"department,omitempty"`
	Courses      []string  `json:"courses,omitempty"`
	Levels       []int     `json:"levels,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// IsAdmin reports whether u is the synthesized administrator.
func (u *User) IsAdmin() bool {
	return u != nil && u.UserID == AdminUserID && u.Role == RoleAdmin
}

// SessionClaims is the identity carried by a verified session token.
type SessionClaims struct {
	UserID    string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
