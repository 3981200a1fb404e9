package route

import (
	"github.com/SakadaKry/CertVault/internal/constant"
	"github.com/SakadaKry/CertVault/internal/controller"
	"github.com/SakadaKry/CertVault/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Admin(r *gin.RouterGroup, ac *controller.AdminController, tc *controller.TemplateController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/admin")
	v1.Use(middleware.AuthMiddleware)

	// STAFF can read the audit trail but cannot change anything.
	audit := v1.Group("")
	audit.Use(middleware.RequirePermissions(constant.CertificateListAll))
	{
		audit.GET("/certificates/:certificateId/verifications", ac.GetVerificationHistory)
	}

	admin := v1.Group("")
	admin.Use(middleware.RequireRoles(constant.UserRoleAdmin, constant.UserRoleSuperAdmin))
	{
		admin.POST("/initialize-database", ac.InitializeDatabase)
		admin.POST("/certificates", ac.IssueCertificate)
		admin.POST("/certificates/:certificateId/revoke", ac.RevokeCertificate)
		admin.POST("/templates/:templateName/preview", tc.UploadTemplatePreview)
	}
}
