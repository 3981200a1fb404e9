package route

import (
	"github.com/SakadaKry/CertVault/internal/controller"
	"github.com/SakadaKry/CertVault/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Me(r *gin.RouterGroup, userController *controller.UserController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/me")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", userController.GetMe)
	}
}
