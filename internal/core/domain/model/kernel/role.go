package kernel

import "storefront/internal/pkg/errs"

// Role is the actor role supplied by the identity collaborator.
// The storefront does not manage identities; it only distinguishes
// administrators from customers when applying guard rules.
type Role string

const (
	// RoleCustomer is the default role for shoppers.
	RoleCustomer Role = "customer"

	// RoleAdmin grants access to administrative order management and
	// bypasses order ownership checks.
	RoleAdmin Role = "admin"
)

// RoleFromString parses a role received from the identity layer.
// An empty string defaults to customer.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleCustomer, "":
		return RoleCustomer, nil
	default:
		return "", errs.NewValueIsInvalidError("role")
	}
}

// Validate checks that the role is one of the known roles.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// IsAdmin reports whether the role carries administrative privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
