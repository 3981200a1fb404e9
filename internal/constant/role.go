package constant

type UserRole string

const (
	UserRoleMember     UserRole = "MEMBER"
	UserRoleStaff      UserRole = "STAFF"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
)

type Permission string

const (
	CertificateIssue      Permission = "certificate:issue"
	CertificateRevoke     Permission = "certificate:revoke"
	CertificateListAll    Permission = "certificate:list:all"
	DatabaseInitialize    Permission = "database:initialize"
	TemplatePreviewUpload Permission = "template:preview:upload"
)
