// Package view renders the portal's pages as text and guards the dashboards.
package view

import (
	"strings"

	"student_portal/internal/client/api"
)

// Page paths.
const (
	PathHome             = "/"
	PathLogin            = "/login"
	PathStudentDashboard = "/student/dashboard"
	PathAdminDashboard   = "/admin/dashboard"
	departmentPrefix     = "/department/"
)

// Page identifies a routed page.
type Page int

const (
	PageNotFound Page = iota
	PageHome
	PageDepartment
	PageLogin
	PageStudentDashboard
	PageAdminDashboard
)

// Session is the read side of the session controller used for guarding.
type Session interface {
	IsAuthenticated() bool
	UserKind() api.Kind
	User() api.User
}

// DepartmentPath returns the public page path of a department slug.
func DepartmentPath(slug string) string { return departmentPrefix + slug }

// Resolve maps a path to its page. For department pages it also returns the slug.
func Resolve(path string) (Page, string) {
	path = "/" + strings.Trim(path, "/")
	switch path {
	case PathHome:
		return PageHome, ""
	case PathLogin:
		return PageLogin, ""
	case PathStudentDashboard:
		return PageStudentDashboard, ""
	case PathAdminDashboard:
		return PageAdminDashboard, ""
	}
	if slug, ok := strings.CutPrefix(path, departmentPrefix); ok && slug != "" && !strings.Contains(slug, "/") {
		return PageDepartment, slug
	}
	return PageNotFound, ""
}

// Guard returns the path to redirect to, or "" when page may be shown.
// Dashboards need a signed-in user of the matching kind.
func Guard(s Session, page Page) string {
	var want api.Kind
	switch page {
	case PageStudentDashboard:
		want = api.KindStudent
	case PageAdminDashboard:
		want = api.KindAdmin
	default:
		return ""
	}
	if !s.IsAuthenticated() || s.UserKind() != want {
		return PathLogin
	}
	return ""
}

// DashboardPath is where a user of kind lands after logging in.
func DashboardPath(kind api.Kind) string {
	if kind == api.KindAdmin {
		return PathAdminDashboard
	}
	return PathStudentDashboard
}
