package view

import (
	"testing"
	"time"

	"student_portal/internal/client/api"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		path     string
		wantPage Page
		wantSlug string
	}{
		{path: "/", wantPage: PageHome},
		{path: "", wantPage: PageHome},
		{path: "/login", wantPage: PageLogin},
		{path: "/student/dashboard", wantPage: PageStudentDashboard},
		{path: "/admin/dashboard/", wantPage: PageAdminDashboard},
		{path: "/department/computer-science", wantPage: PageDepartment, wantSlug: "computer-science"},
		{path: "/department/", wantPage: PageNotFound},
		{path: "/department/math/extra", wantPage: PageNotFound},
		{path: "/nowhere", wantPage: PageNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			page, slug := Resolve(tt.path)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSlug, slug)
		})
	}
}

func TestGuard(t *testing.T) {
	anon := fakeSession{}
	student := fakeSession{user: api.StudentUser(jane)}
	adm := fakeSession{user: api.AdminUser(admin)}

	tests := []struct {
		name    string
		session Session
		page    Page
		want    string
	}{
		{name: "public page for anonymous", session: anon, page: PageHome},
		{name: "department page for anonymous", session: anon, page: PageDepartment},
		{name: "student dashboard for anonymous", session: anon, page: PageStudentDashboard, want: PathLogin},
		{name: "admin dashboard for anonymous", session: anon, page: PageAdminDashboard, want: PathLogin},
		{name: "student dashboard for student", session: student, page: PageStudentDashboard},
		{name: "admin dashboard for student", session: student, page: PageAdminDashboard, want: PathLogin},
		{name: "student dashboard for admin", session: adm, page: PageStudentDashboard, want: PathLogin},
		{name: "admin dashboard for admin", session: adm, page: PageAdminDashboard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Guard(tt.session, tt.page))
		})
	}
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, PathStudentDashboard, DashboardPath(api.KindStudent))
	assert.Equal(t, PathAdminDashboard, DashboardPath(api.KindAdmin))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)
	assert.Equal(t, "Mar 5, 2024 • 2:07 PM", FormatDate(ts, nil))

	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, "Mar 5, 2024 • 11:07 PM", FormatDate(ts, tokyo))
}

func TestDepartmentName(t *testing.T) {
	assert.Equal(t, "Computer Science", DepartmentName("computer-science"))
	assert.Equal(t, "Mathematics", DepartmentName("math"))
	assert.Equal(t, "Department", DepartmentName("history"))
}
