package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"student_portal/internal/platform/http/apierror"
	"student_portal/internal/platform/logger"
	"student_portal/internal/shared/ratelimiter"
)

// RateLimit rejects a client IP with 429 once it exceeds the limiter's budget.
func RateLimit(limiter ratelimiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			logger.Warn().Str("client_ip", ip).Str("path", c.FullPath()).Msg("rate limit exceeded")
			apierror.Write(c, http.StatusTooManyRequests, apierror.MsgTooManyRequests)
			return
		}
		c.Next()
	}
}
