package claims

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tms/internal/lookup/models"
)

func TestRolesFromClaims(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   []models.Role
	}{
		{
			name:   "missing claim",
			claims: jwt.MapClaims{"sub": "abc"},
			want:   nil,
		},
		{
			name:   "wrong claim type",
			claims: jwt.MapClaims{ClientRolesClaim: 42},
			want:   nil,
		},
		{
			name:   "single string",
			claims: jwt.MapClaims{ClientRolesClaim: "TMS.SERVICE_USER"},
			want:   []models.Role{models.RoleServiceUser},
		},
		{
			name: "registry order, deduplicated, unknown dropped",
			claims: jwt.MapClaims{ClientRolesClaim: []any{
				"TMS.USER_ADMIN", "offline_access", "TMS.OPERATIONS_ADMIN", "TMS.USER_ADMIN", 7,
			}},
			want: []models.Role{models.RoleOperationsAdmin, models.RoleUserAdmin},
		},
		{
			name:   "typed string slice",
			claims: jwt.MapClaims{ClientRolesClaim: []string{"TMS.TENANT_OWNER"}},
			want:   []models.Role{models.RoleTenantOwner},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RolesFromClaims(tt.claims, ClientRolesClaim))
		})
	}
}

func TestHasRole(t *testing.T) {
	c := jwt.MapClaims{ClientRolesClaim: []any{"TMS.TENANT_OWNER", "TMS.UNKNOWN"}}

	assert.True(t, HasRole(c, ClientRolesClaim, models.RoleTenantOwner))
	assert.False(t, HasRole(c, ClientRolesClaim, models.RoleUserAdmin))
	assert.False(t, HasRole(c, ClientRolesClaim, models.Role("TMS.UNKNOWN")))
	assert.False(t, HasRole(c, "roles", models.RoleTenantOwner))
}

// TestRolesFromClaims_SignedToken runs the mapping over claims that went
// through a real sign/parse cycle, so arrays arrive as []any.
func TestRolesFromClaims_SignedToken(t *testing.T) {
	key := []byte("test-signing-key")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":            "idir-user",
		"exp":            time.Now().Add(time.Minute).Unix(),
		ClientRolesClaim: []string{"TMS.SERVICE_USER", "TMS.OPERATIONS_ADMIN"},
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)

	parsed := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, parsed, func(*jwt.Token) (any, error) { return key, nil })
	require.NoError(t, err)

	assert.Equal(t,
		[]models.Role{models.RoleOperationsAdmin, models.RoleServiceUser},
		RolesFromClaims(parsed, ClientRolesClaim))
}
