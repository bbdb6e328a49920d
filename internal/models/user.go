package models

import "strings"

// Role is the access level of a household member.
type Role string

const (
	RoleStudent Role = "Student"
	RoleStaff   Role = "Staff"
	RoleAdmin   Role = "Admin"
)

// ParseRole decodes a persisted role string.
// Unknown or empty values decode to RoleStudent.
func ParseRole(s string) Role {
	switch strings.TrimSpace(s) {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleStaff):
		return RoleStaff
	default:
		return RoleStudent
	}
}

// CanManageLedger reports whether the role may record attendance,
// expenses and payments.
func (r Role) CanManageLedger() bool {
	return r == RoleStaff || r == RoleAdmin
}

// User represents a household member.
type User struct {
	// ID is the database identity of the user. Settlement reports are
	// ordered by this value.
	ID int64

	// Username is the unique login handle.
	Username string

	// Name is the display name shown in reports.
	Name string

	// Role controls what the user may change.
	Role Role

	// CreatedAt is the Unix timestamp when the user was created.
	CreatedAt int64
}

// UserRef is the minimal view of a user the settlement engine needs.
type UserRef struct {
	ID   int64
	Name string
}
