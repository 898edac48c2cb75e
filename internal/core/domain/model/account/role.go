// Package account holds the identity-side domain types: the roles a user
// can act under and the authorization failure sentinel.
package account

import (
	"errors"
	"fmt"

	"carrybee/internal/pkg/errs"
)

// ErrForbidden is the normal denial for an actor lacking the required role.
// It is a rejection, not a system fault, and is never retried automatically.
var ErrForbidden = errors.New("forbidden")

// Role is the privilege level a user acts under. A user without a role
// assignment row is a customer; admin is granted by out-of-band provisioning.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is the default role of every authenticated user.
	RoleCustomer

	// RoleAdmin grants access to administrative mutations.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer: "customer",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses the persisted role name.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks the Role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsAdmin reports whether the role carries administrative privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}
