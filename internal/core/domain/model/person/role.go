package person

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Role classifies a person within the system.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// RoleCustomer marks a person who places orders.
	RoleCustomer

	// RoleStaff marks a person who delivers orders.
	RoleStaff

	// RoleAdmin marks a person with administrative access.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:  "Unknown",
		RoleCustomer: "Customer",
		RoleStaff:    "Staff",
		RoleAdmin:    "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "Customer",
		RoleStaff:    "Staff",
		RoleAdmin:    "Admin",
	}
}

// Validate checks that the Role is one of Customer, Staff, or Admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromString parses a stored role name back to its Role value.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}
