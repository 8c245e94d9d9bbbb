package entity

import "slices"

// Role is carried in the "roles" claim of access tokens.
type Role string

const (
	RoleUser  Role = "user"  // every account
	RoleAdmin Role = "admin" // may approve reports
)

func (r Role) known() bool {
	return r == RoleUser || r == RoleAdmin
}

// Roles is the set granted to one identity.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Strings renders rs for token claims.
func (rs Roles) Strings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// ParseRoles reads token claims back, ignoring roles this build does not know.
func ParseRoles(claims []string) Roles {
	var out Roles
	for _, c := range claims {
		if r := Role(c); r.known() && !out.Contains(r) {
			out = append(out, r)
		}
	}

	return out
}
