package domain

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can hold. Only managers may generate reports.
const (
	RoleUser    = "User"
	RoleManager = "Manager"
)

// UserID is a value object for user identity.
type UserID struct{ uuid.UUID }

// NewUserID creates a new UserID from uuid.
func NewUserID(id uuid.UUID) UserID { return UserID{UUID: id} }

// String returns the canonical string form.
func (u UserID) String() string { return u.UUID.String() }

// IsNil reports whether the ID is the nil sentinel (absent caller identity).
func (u UserID) IsNil() bool { return u.UUID == uuid.Nil }

// User owns projects and acts on tasks. Role is immutable here; role
// management is out of scope for this service.
type User struct {
	ID        UserID
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

// IsManager reports whether the user holds the Manager role.
func (u *User) IsManager() bool { return u.Role == RoleManager }
