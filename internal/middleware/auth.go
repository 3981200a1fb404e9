package middleware

import (
	"errors"
	"net/http"

	"github.com/SakadaKry/CertVault/internal/auth"
	"github.com/SakadaKry/CertVault/internal/constant"
	"github.com/SakadaKry/CertVault/internal/util"
	"github.com/gin-gonic/gin"
)

func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	claim, err := m.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid token", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	if claim.Type != constant.JWT_TYPE_ACCESS {
		m.app.Logger.Debugf("Invalid token type: %s", claim.Type)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid access token type", util.GenerateErrorMessages(errors.New("invalid access token type"), "unauthorized"), nil)
		ctx.Abort()
		return
	}

	ctx.Set("user", claim.User)
	ctx.Next()
}

// RequireRoles gates a route on the caller's role. The response never
// says which roles would have passed.
func (m Middleware) RequireRoles(roles ...constant.UserRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("authentication required"), "unauthorized"), nil)
			ctx.Abort()
			return
		}

		payload, ok := user.(auth.JWTPayload)
		if !ok {
			util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("authentication required"), "unauthorized"), nil)
			ctx.Abort()
			return
		}

		if !util.HasRole(payload.Role, roles) {
			m.app.Logger.Debugf("User %s with role %s denied", payload.ID, payload.Role)
			util.ResponseFailed(ctx, http.StatusForbidden, "Insufficient permissions", util.GenerateErrorMessages(errors.New("insufficient permissions"), "forbidden"), nil)
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

// RequirePermissions gates a route on what the caller's role grants
// rather than on the role itself.
func (m Middleware) RequirePermissions(permissions ...constant.Permission) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("authentication required"), "unauthorized"), nil)
			ctx.Abort()
			return
		}

		payload, ok := user.(auth.JWTPayload)
		if !ok {
			util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("authentication required"), "unauthorized"), nil)
			ctx.Abort()
			return
		}

		if !util.HasPermission(payload.Role, permissions) {
			m.app.Logger.Debugf("User %s with role %s denied", payload.ID, payload.Role)
			util.ResponseFailed(ctx, http.StatusForbidden, "Insufficient permissions", util.GenerateErrorMessages(errors.New("insufficient permissions"), "forbidden"), nil)
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
