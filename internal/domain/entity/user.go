// Package entity contains the core business objects of carvalue,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in, submit reports and, when Admin is set,
// approve reports submitted by others.
type User struct {
	ID        uuid.UUID // Primary key, generated on create.
	Email     string    // Unique login identifier.
	Password  string    // Serialized Credential ("salt.hash"), never the plaintext.
	Admin     bool      // Grants the admin role.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Roles returns the roles granted to the user. Every user has RoleUser.
func (u *User) Roles() Roles {
	roles := Roles{RoleUser}
	if u.Admin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}

// Identity is the authenticated caller of a use case, as established by the
// delivery layer. A nil *Identity means an anonymous caller.
type Identity struct {
	UserID uuid.UUID
	Roles  Roles
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Roles.Contains(RoleAdmin)
}

// CanManage reports whether the identity may modify the given user account:
// either it is the account itself or an admin.
func (i *Identity) CanManage(userID uuid.UUID) bool {
	if i == nil {
		return false
	}

	return i.UserID == userID || i.IsAdmin()
}
