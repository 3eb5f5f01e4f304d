package models

import (
	"strings"

	dErrors "tms/pkg/domain-errors"
)

// RolePrefix namespaces every Tenant Management role identifier.
const RolePrefix = "TMS."

// Role is a Tenant Management role identifier as stored by the back end and
// carried in identity tokens.
// Invariant: the value must be one of the constants below.
type Role string

const (
	RoleOperationsAdmin Role = "TMS.OPERATIONS_ADMIN"
	RoleServiceUser     Role = "TMS.SERVICE_USER"
	RoleTenantOwner     Role = "TMS.TENANT_OWNER"
	RoleUserAdmin       Role = "TMS.USER_ADMIN"
)

var validRoles = map[Role]bool{
	RoleOperationsAdmin: true,
	RoleServiceUser:     true,
	RoleTenantOwner:     true,
	RoleUserAdmin:       true,
}

// ParseRole constructs a Role from external input. Matching is exact;
// "tms.user_admin" is not a role.
//
// Errors: CodeInvalidInput when s is empty or unsupported.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "role cannot be empty")
	}
	r := Role(s)
	if !r.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid role")
	}
	return r, nil
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) String() string {
	return string(r)
}

// Name returns the identifier without the TMS. prefix, e.g. "USER_ADMIN".
func (r Role) Name() string {
	return strings.TrimPrefix(string(r), RolePrefix)
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r), nil
}

// UnmarshalText rejects identifiers outside the supported set.
func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
