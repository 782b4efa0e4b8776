package user

import (
	"fmt"

	"workforce/internal/pkg/errs"
)

// Role classifies what a user may do in the marketplace.
//
// Roles are flat, not hierarchical: an admin is not implicitly an employer.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	Unknown Role = iota

	// Admin operates the marketplace itself.
	Admin

	// Employer can create and own jobs.
	Employer

	// Worker can discover and apply to jobs.
	Worker
)

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Role]string{
		Admin:    "admin",
		Employer: "employer",
		Worker:   "worker",
	}
}

// RoleFromString parses a role from its persisted/wire form.
// Returns a ValueIsInvalidError for anything but "admin", "employer", "worker".
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persisted form of the role, or "unknown" for
// invalid values.
func (r Role) String() string {
	if s, ok := getValidRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}
