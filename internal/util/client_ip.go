package util

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const UnknownClientOrigin = "unknown"

// ClientOriginFromHeader resolves the caller's origin for audit records.
// X-Forwarded-For may carry a comma separated chain; the first entry is
// the original client.
func ClientOriginFromHeader(forwardedFor, remoteAddr string) string {
	if forwardedFor != "" {
		first := strings.TrimSpace(strings.SplitN(forwardedFor, ",", 2)[0])
		if first != "" {
			return first
		}
	}

	if remoteAddr != "" {
		return remoteAddr
	}

	return UnknownClientOrigin
}

func ClientOrigin(ctx *gin.Context) string {
	return ClientOriginFromHeader(ctx.GetHeader("X-Forwarded-For"), ctx.ClientIP())
}
