package models

import "strings"

// UserRole is the closed set of roles known to the permission model
type UserRole string

const (
	RoleSuperAdmin UserRole = "superadmin"
	RoleAdmin      UserRole = "admin"
	RoleUser       UserRole = "user"
)

// Permission identifies a single gated action
type Permission string

const (
	PermViewOverview Permission = "view_overview"

	PermViewAssets   Permission = "view_assets"
	PermCreateAssets Permission = "create_assets"
	PermUpdateAssets Permission = "update_assets"
	PermDeleteAssets Permission = "delete_assets"

	PermViewUsers   Permission = "view_users"
	PermCreateUsers Permission = "create_users"
	PermUpdateUsers Permission = "update_users"
	PermDeleteUsers Permission = "delete_users"

	PermViewSuppliers   Permission = "view_suppliers"
	PermCreateSuppliers Permission = "create_suppliers"
	PermUpdateSuppliers Permission = "update_suppliers"
	PermDeleteSuppliers Permission = "delete_suppliers"

	PermViewInsurance   Permission = "view_insurance"
	PermCreateInsurance Permission = "create_insurance"
	PermUpdateInsurance Permission = "update_insurance"
	PermDeleteInsurance Permission = "delete_insurance"

	PermUseQRScanner   Permission = "use_qr_scanner"
	PermEditQRData     Permission = "edit_qr_data"
	PermViewAnalytics  Permission = "view_analytics"
	PermManageSettings Permission = "manage_settings"
)

// RolePermissions is the static role to permission matrix. It is fixed for
// the lifetime of the process.
var RolePermissions = map[UserRole][]Permission{
	RoleSuperAdmin: {
		PermViewOverview,
		PermViewAssets,
		PermCreateAssets,
		PermUpdateAssets,
		PermDeleteAssets,
		PermViewUsers,
		PermCreateUsers,
		PermUpdateUsers,
		PermDeleteUsers,
		PermViewSuppliers,
		PermCreateSuppliers,
		PermUpdateSuppliers,
		PermDeleteSuppliers,
		PermViewInsurance,
		PermCreateInsurance,
		PermUpdateInsurance,
		PermDeleteInsurance,
		PermUseQRScanner,
		PermEditQRData,
		PermViewAnalytics,
		PermManageSettings,
	},
	RoleAdmin: {
		PermViewOverview,
		PermViewAssets,
		PermViewUsers,
		PermViewSuppliers,
		PermViewInsurance,
		PermUseQRScanner,
		PermViewAnalytics,
	},
	RoleUser: {
		PermUseQRScanner,
	},
}

// roleAliases maps external role strings to the closed role set. Unrecognized
// input falls back to the least privileged role.
var roleAliases = map[string]UserRole{
	"superadmin":    RoleSuperAdmin,
	"super_admin":   RoleSuperAdmin,
	"administrator": RoleSuperAdmin,
	"admin":         RoleAdmin,
	"manager":       RoleAdmin,
	"user":          RoleUser,
	"employee":      RoleUser,
	"staff":         RoleUser,
}

// NormalizeRole maps an arbitrary role string to one of the closed roles.
// The lookup is case-insensitive and total: unknown input normalizes to the
// least privileged role so malformed upstream data cannot grant privileges.
func NormalizeRole(raw string) UserRole {
	if role, ok := roleAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return role
	}
	return RoleUser
}

// PermissionsForRole returns the permission set for a role
func PermissionsForRole(role UserRole) []Permission {
	return RolePermissions[role]
}

// HasPermission reports whether the role grants the permission
func HasPermission(role UserRole, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether the role grants at least one of the permissions
func HasAnyPermission(role UserRole, permissions ...Permission) bool {
	for _, p := range permissions {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether the role grants every one of the permissions
func HasAllPermissions(role UserRole, permissions ...Permission) bool {
	for _, p := range permissions {
		if !HasPermission(role, p) {
			return false
		}
	}
	return true
}
