// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is the access level carried in a user's access token.
type Role string

const (
	// RoleUser is a customer. Every self-registered account gets it.
	RoleUser Role = "user"
	// RoleAdmin manages the catalog, pricing and order fulfilment.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// ParseRole accepts only the roles above.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleUser, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

// Claims is the role list embedded in tokens issued to a holder of r.
func (r Role) Claims() []string {
	return []string{r.String()}
}

// Roles is the set of roles an authenticated request carries.
type Roles []Role

// Has reports whether role is in the set.
func (rs Roles) Has(role Role) bool {
	return slices.Contains(rs, role)
}

// ParseRoles reads token claims, silently dropping roles this service does
// not know about.
func ParseRoles(claims []string) Roles {
	roles := make(Roles, 0, len(claims))
	for _, claim := range claims {
		if role, ok := ParseRole(claim); ok {
			roles = append(roles, role)
		}
	}

	return roles
}
