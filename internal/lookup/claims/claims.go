// Package claims maps identity-token role claims onto TMS roles.
package claims

import (
	"github.com/golang-jwt/jwt/v5"

	"tms/internal/lookup"
	"tms/internal/lookup/models"
)

// ClientRolesClaim is the claim the SSO realm uses for client roles.
const ClientRolesClaim = "client_roles"

// RolesFromClaims returns the TMS roles listed in the named claim, in
// registry order and without duplicates. A single string is treated as a
// one-element list. Unknown strings are ignored, as is a claim that is
// missing or of any other type.
func RolesFromClaims(c jwt.MapClaims, claim string) []models.Role {
	raw := stringsClaim(c, claim)
	if len(raw) == 0 {
		return nil
	}

	present := make(map[models.Role]bool, len(raw))
	for _, s := range raw {
		if r, err := models.ParseRole(s); err == nil {
			present[r] = true
		}
	}

	var roles []models.Role
	for _, r := range lookup.RoleOptions().Values() {
		if present[r] {
			roles = append(roles, r)
		}
	}
	return roles
}

// HasRole reports whether the named claim grants role.
func HasRole(c jwt.MapClaims, claim string, role models.Role) bool {
	for _, s := range stringsClaim(c, claim) {
		if models.Role(s) == role && role.IsValid() {
			return true
		}
	}
	return false
}

// stringsClaim accepts both []string (claims built in code) and []any
// (claims decoded from JSON).
func stringsClaim(c jwt.MapClaims, claim string) []string {
	switch v := c[claim].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}
