package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SakadaKry/CertVault/internal/util"
	"github.com/gin-gonic/gin"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	if !m.rateLimiter.Enabled() {
		ctx.Next()
		return
	}

	allowed, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allowed {
		ctx.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Rate limit exceeded", util.GenerateErrorMessages(errors.New("rate limit exceeded, retry later")), nil)
		ctx.Abort()
		return
	}

	ctx.Next()
}
