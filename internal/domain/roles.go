package domain

import "fmt"

// Role is the closed set of authorization levels in BudgetPro.
type Role string

const (
	RoleDeptOfficer Role = "DO"
	RoleHeadOfDept  Role = "HOD"
	RoleAppAdmin    Role = "AA"
	RoleSuperAdmin  Role = "SA"
)

// DisplayName returns the human readable role label.
func (r Role) DisplayName() string {
	switch r {
	case RoleDeptOfficer:
		return "Dept Officer"
	case RoleHeadOfDept:
		return "Head of Department"
	case RoleAppAdmin:
		return "App Admin"
	case RoleSuperAdmin:
		return "Super Admin"
	default:
		return string(r)
	}
}

// Valid reports whether the role is a member of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleDeptOfficer, RoleHeadOfDept, RoleAppAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// ParseRole converts a raw tag into a Role, rejecting unknown values.
func ParseRole(tag string) (Role, error) {
	role := Role(tag)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", tag)
	}
	return role, nil
}

// RoleSet is a required-role set attached to a protected view or route.
type RoleSet map[Role]struct{}

// NewRoleSet builds a set from the given roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, role := range roles {
		set[role] = struct{}{}
	}
	return set
}

// Contains reports membership.
func (s RoleSet) Contains(role Role) bool {
	_, ok := s[role]
	return ok
}

// Empty reports whether the set has no members. An empty requirement
// means any authenticated identity is acceptable.
func (s RoleSet) Empty() bool {
	return len(s) == 0
}
