package view

import (
	"context"
	"fmt"

	"student_portal/internal/client/api"
)

// PortalAPI is everything the pages read from the server.
type PortalAPI interface {
	AnnouncementAPI
	StudentAPI
	AdminAPI
}

// App renders a path the way the portal's router would: public pages as is,
// dashboards only for a signed-in user of the matching kind.
type App struct {
	session Session
	api     PortalAPI
	render  *Renderer
}

// NewApp creates an App.
func NewApp(session Session, client PortalAPI, render *Renderer) *App {
	return &App{session: session, api: client, render: render}
}

// NavigateOptions carries the per-page inputs of the admin dashboard.
type NavigateOptions struct {
	Tab    Tab
	Search string
}

// Navigate renders path, following a guard redirect to the login page.
// It returns the path that was rendered.
func (a *App) Navigate(ctx context.Context, path string, opts NavigateOptions) (string, error) {
	page, slug := Resolve(path)
	if to := Guard(a.session, page); to != "" {
		a.render.Login("Please log in to continue.")
		return to, nil
	}

	switch page {
	case PageHome:
		return PathHome, a.render.Home(ctx, a.api, a.session.IsAuthenticated())
	case PageDepartment:
		return DepartmentPath(slug), a.render.Department(ctx, a.api, slug, a.session.IsAuthenticated())
	case PageLogin:
		if a.session.IsAuthenticated() {
			to := DashboardPath(a.session.UserKind())
			return a.Navigate(ctx, to, opts)
		}
		a.render.Login("")
		return PathLogin, nil
	case PageStudentDashboard:
		student, err := sessionStudent(a.session.User())
		if err != nil {
			return "", err
		}
		d := NewStudentDashboard(a.api, student)
		if err := d.Load(ctx); err != nil {
			return "", err
		}
		d.Render(a.render)
		return PathStudentDashboard, nil
	case PageAdminDashboard:
		tab := opts.Tab
		if tab == "" {
			tab = TabAnnouncements
		}
		admin, err := sessionAdmin(a.session.User())
		if err != nil {
			return "", err
		}
		d := NewAdminDashboard(a.api, admin)
		if err := d.Load(ctx, tab); err != nil {
			return "", err
		}
		d.Render(a.render, tab, opts.Search)
		return PathAdminDashboard, nil
	}
	a.render.NotFound(path)
	return path, nil
}

func sessionStudent(u api.User) (api.Student, error) {
	if u.Kind() != api.KindStudent {
		return api.Student{}, fmt.Errorf("signed-in user is not a student")
	}
	return api.MatchUser(u,
		func(s api.Student) api.Student { return s },
		func(api.Admin) api.Student { return api.Student{} },
	), nil
}

func sessionAdmin(u api.User) (api.Admin, error) {
	if u.Kind() != api.KindAdmin {
		return api.Admin{}, fmt.Errorf("signed-in user is not an admin")
	}
	return api.MatchUser(u,
		func(api.Student) api.Admin { return api.Admin{} },
		func(a api.Admin) api.Admin { return a },
	), nil
}
