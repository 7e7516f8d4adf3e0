// Package router assembles the portal's HTTP routes.
package router

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"student_portal/internal/app/di"
	authentity "student_portal/internal/feature/auth/domain/entity"
	authmw "student_portal/internal/feature/auth/transport/middleware"
	"student_portal/internal/platform/http/handler"
	"student_portal/internal/platform/http/middleware"
	"student_portal/internal/shared/ratelimiter"
)

// NewRouter builds the gin engine. loginLimiter throttles the two login routes per client IP.
// Forwarding headers are honored only from trustedProxies; with none, the client IP is the
// socket peer.
func NewRouter(c *di.Container, loginLimiter ratelimiter.Limiter, trustedProxies []string) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	health := handler.NewHealth(c.HealthChecks...)

	// Public
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)

	login := r.Group("/", middleware.RateLimit(loginLimiter))
	{
		login.POST("/student/login", c.Auth.StudentLogin)
		login.POST("/admin/login", c.Auth.AdminLogin)
	}

	// Any authenticated identity
	auth := r.Group("/", authmw.RequireAuth(c.Authenticator))
	{
		auth.POST("/logout", c.Auth.Logout)
		auth.POST("/logout/all", c.Auth.LogoutAll)
		auth.GET("/me", c.Auth.Me)
		auth.GET("/announcements", c.Announcements.List)
		auth.GET("/announcements/:department", c.Announcements.ListByDepartment)
		auth.GET("/projects", c.Projects.List)
		// Ownership is checked by the wishlist usecase so admins can read any list.
		auth.GET("/student/:id/wishlist", c.Wishlist.List)
		auth.POST("/student/:id/wishlist", c.Wishlist.Add)
		auth.DELETE("/student/wishlist/:id", c.Wishlist.Remove)
	}

	admin := auth.Group("/admin", authmw.RequireKind(authentity.KindAdmin))
	{
		admin.POST("/announcements", c.Announcements.Create)
		admin.POST("/projects", c.Projects.Create)
		admin.GET("/students", c.Students.List)
		admin.GET("/student-wishlists", c.Students.Wishlists)
		admin.GET("/student-wishlists/export", c.Students.Export)
	}

	return r, nil
}
