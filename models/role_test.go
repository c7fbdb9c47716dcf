package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoleAliases(t *testing.T) {
	cases := map[string]UserRole{
		"superadmin":    RoleSuperAdmin,
		"super_admin":   RoleSuperAdmin,
		"Administrator": RoleSuperAdmin,
		"admin":         RoleAdmin,
		"Manager":       RoleAdmin,
		"user":          RoleUser,
		"employee":      RoleUser,
		"STAFF":         RoleUser,
		"  admin  ":     RoleAdmin,
	}

	for raw, want := range cases {
		assert.Equal(t, want, NormalizeRole(raw), "role %q", raw)
	}
}

func TestNormalizeRoleUnknownFallsBackToUser(t *testing.T) {
	assert.Equal(t, RoleUser, NormalizeRole("bogus"))
	assert.Equal(t, RoleUser, NormalizeRole(""))
	assert.Equal(t, RoleUser, NormalizeRole("root"))
}

func TestHasPermissionMatchesMatrix(t *testing.T) {
	for role, permissions := range RolePermissions {
		granted := make(map[Permission]bool, len(permissions))
		for _, p := range permissions {
			granted[p] = true
		}

		all := []Permission{
			PermViewOverview,
			PermViewAssets, PermCreateAssets, PermUpdateAssets, PermDeleteAssets,
			PermViewUsers, PermCreateUsers, PermUpdateUsers, PermDeleteUsers,
			PermViewSuppliers, PermCreateSuppliers, PermUpdateSuppliers, PermDeleteSuppliers,
			PermViewInsurance, PermCreateInsurance, PermUpdateInsurance, PermDeleteInsurance,
			PermUseQRScanner, PermEditQRData, PermViewAnalytics, PermManageSettings,
		}
		for _, p := range all {
			assert.Equal(t, granted[p], HasPermission(role, p), "role %s permission %s", role, p)
		}
	}
}

func TestUserRoleIsScanOnly(t *testing.T) {
	assert.True(t, HasPermission(RoleUser, PermUseQRScanner))
	assert.False(t, HasPermission(RoleUser, PermEditQRData))
	assert.False(t, HasPermission(RoleUser, PermViewAssets))
	assert.Len(t, PermissionsForRole(RoleUser), 1)
}

func TestAdminViewsButDoesNotMutate(t *testing.T) {
	assert.True(t, HasPermission(RoleAdmin, PermViewAssets))
	assert.True(t, HasPermission(RoleAdmin, PermViewAnalytics))
	assert.False(t, HasPermission(RoleAdmin, PermCreateAssets))
	assert.False(t, HasPermission(RoleAdmin, PermDeleteUsers))
	assert.False(t, HasPermission(RoleAdmin, PermEditQRData))
}

func TestHasAnyAndAllPermissions(t *testing.T) {
	assert.True(t, HasAnyPermission(RoleUser, PermViewAssets, PermUseQRScanner))
	assert.False(t, HasAnyPermission(RoleUser, PermViewAssets, PermViewUsers))

	assert.True(t, HasAllPermissions(RoleSuperAdmin, PermViewAssets, PermDeleteAssets, PermManageSettings))
	assert.False(t, HasAllPermissions(RoleAdmin, PermViewAssets, PermDeleteAssets))
}
