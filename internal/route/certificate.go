package route

import (
	"github.com/SakadaKry/CertVault/internal/controller"
	"github.com/SakadaKry/CertVault/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Certificates(r *gin.RouterGroup, cc *controller.CertificateController, tc *controller.TemplateController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/certificates")
	{
		v1.GET("/verify", cc.VerifyCertificateQuery)
		v1.GET("/verify/:certificateId", cc.VerifyCertificateById)
		v1.GET("/verify/:certificateId/qrcode", cc.VerificationQRCode)
		v1.GET("/template-options", tc.GetTemplateOptions)
	}

	authed := r.Group("/v1/certificates")
	authed.Use(middleware.AuthMiddleware)
	{
		authed.GET("/user", cc.GetMyCertificates)
	}
}
