// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"student_portal/internal/platform/logger"
)

// Check probes one backing dependency.
type Check struct {
	Name string
	// Required checks turn the overall status into 503 when they fail.
	// Optional ones (e.g. the read cache) only report "degraded".
	Required bool
	Ping     func(ctx context.Context) error
}

// HealthRes is the /healthz body.
type HealthRes struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// NewHealth returns the /healthz handler. With no checks it always reports ok.
func NewHealth(checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Never cache health responses.
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
			return
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		res := HealthRes{Status: "ok"}
		status := http.StatusOK
		for _, chk := range checks {
			if res.Components == nil {
				res.Components = make(map[string]string, len(checks))
			}
			if err := chk.Ping(ctx); err != nil {
				logger.Warn().Err(err).Str("component", chk.Name).Msg("health check failed")
				res.Components[chk.Name] = "down"
				if chk.Required {
					res.Status = "down"
					status = http.StatusServiceUnavailable
				} else if res.Status == "ok" {
					res.Status = "degraded"
				}
				continue
			}
			res.Components[chk.Name] = "up"
		}
		c.JSON(status, res)
	}
}
