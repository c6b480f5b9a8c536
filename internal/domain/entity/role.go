// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleOwner indicates the owner of a supplier company.
	RoleOwner Role = "owner"
	// RoleAdmin indicates an administrator of a supplier company.
	RoleAdmin Role = "admin"
	// RoleSales indicates a sales employee of a supplier company.
	RoleSales Role = "sales"
	// RoleConsumer indicates a buying-side user.
	RoleConsumer Role = "consumer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleSales, RoleConsumer:
		return true
	default:
		return false
	}
}

// IsSupplierSide reports whether the role belongs to supplier company staff.
func (r Role) IsSupplierSide() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleSales:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
