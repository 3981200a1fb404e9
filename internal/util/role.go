package util

import (
	"slices"

	"github.com/SakadaKry/CertVault/internal/constant"
)

var rolePermissions = map[constant.UserRole][]constant.Permission{
	constant.UserRoleSuperAdmin: {
		constant.CertificateIssue,
		constant.CertificateRevoke,
		constant.CertificateListAll,
		constant.DatabaseInitialize,
		constant.TemplatePreviewUpload,
	},
	constant.UserRoleAdmin: {
		constant.CertificateIssue,
		constant.CertificateRevoke,
		constant.CertificateListAll,
		constant.DatabaseInitialize,
		constant.TemplatePreviewUpload,
	},
	constant.UserRoleStaff: {
		constant.CertificateListAll,
	},
	constant.UserRoleMember: {},
}

// checks if all permissions are granted by the role.
func HasPermission(role constant.UserRole, permissions []constant.Permission) bool {
	for _, permission := range permissions {
		if !slices.Contains(rolePermissions[role], permission) {
			return false
		}
	}
	return true
}

func HasRole(role constant.UserRole, requiredRoles []constant.UserRole) bool {
	return slices.Contains(requiredRoles, role)
}
