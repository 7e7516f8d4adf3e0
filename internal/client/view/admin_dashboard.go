package view

import (
	"context"
	"fmt"
	"strings"

	"student_portal/internal/client/api"
	"student_portal/internal/platform/logger"
)

// Tab is a section of the admin dashboard.
type Tab string

const (
	TabAnnouncements Tab = "announcements"
	TabProjects      Tab = "projects"
	TabStudents      Tab = "students"
)

// ParseTab accepts a tab name; "" selects the announcements tab.
func ParseTab(s string) (Tab, error) {
	switch t := Tab(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return TabAnnouncements, nil
	case TabAnnouncements, TabProjects, TabStudents:
		return t, nil
	}
	return "", fmt.Errorf("unknown tab %q", s)
}

// AdminAPI is the part of the API the admin dashboard uses.
type AdminAPI interface {
	Announcements(ctx context.Context) ([]api.Announcement, error)
	Projects(ctx context.Context) ([]api.Project, error)
	StudentWishlists(ctx context.Context) ([]api.StudentWishlist, error)
}

// AdminDashboard holds the data behind the admin tabs.
type AdminDashboard struct {
	api           AdminAPI
	admin         api.Admin
	announcements []api.Announcement
	projects      []api.Project
	students      []api.StudentWishlist
}

// NewAdminDashboard creates a dashboard for admin.
func NewAdminDashboard(client AdminAPI, admin api.Admin) *AdminDashboard {
	return &AdminDashboard{api: client, admin: admin}
}

// Load fetches the data of tab. On failure the previous state is kept.
func (d *AdminDashboard) Load(ctx context.Context, tab Tab) error {
	var err error
	switch tab {
	case TabAnnouncements:
		var list []api.Announcement
		if list, err = d.api.Announcements(ctx); err == nil {
			d.announcements = list
		}
	case TabProjects:
		var list []api.Project
		if list, err = d.api.Projects(ctx); err == nil {
			d.projects = list
		}
	case TabStudents:
		var list []api.StudentWishlist
		if list, err = d.api.StudentWishlists(ctx); err == nil {
			d.students = list
		}
	default:
		return fmt.Errorf("unknown tab %q", tab)
	}
	if err != nil {
		logger.Error().Err(err).Str("tab", string(tab)).Msg("failed to load admin data")
		return fmt.Errorf("load %s: %w", tab, err)
	}
	return nil
}

// FilterStudents returns the students whose name, email or student number
// contains search, case-insensitively. An empty search returns all.
func (d *AdminDashboard) FilterStudents(search string) []api.StudentWishlist {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return d.students
	}
	var out []api.StudentWishlist
	for _, sw := range d.students {
		s := sw.Student
		for _, field := range []string{s.FullName(), s.Email, s.Number()} {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, sw)
				break
			}
		}
	}
	return out
}

// Render writes tab to r, filtering the students tab by search.
func (d *AdminDashboard) Render(r *Renderer, tab Tab, search string) {
	r.heading("Admin Dashboard")
	r.printf("Signed in as %s\n\n", d.admin.FullName)

	switch tab {
	case TabAnnouncements:
		r.printf("Announcements\n\n")
		r.Announcements(d.announcements, "No announcements yet.")
	case TabProjects:
		r.printf("Projects\n")
		if len(d.projects) == 0 {
			r.printf("No projects yet.\n\n")
			return
		}
		rows := make([][]string, 0, len(d.projects))
		for _, p := range d.projects {
			rows = append(rows, []string{fmt.Sprint(p.ID), p.Title, truncate(p.Description, 60)})
		}
		r.table([]string{"ID", "Title", "Description"}, rows)
	case TabStudents:
		r.printf("Students\n")
		students := d.FilterStudents(search)
		if len(students) == 0 {
			r.printf("No students match.\n\n")
			return
		}
		rows := make([][]string, 0, len(students))
		for _, sw := range students {
			titles := make([]string, 0, len(sw.Wishlist))
			for _, it := range sw.Wishlist {
				if it.Project != nil {
					titles = append(titles, it.Project.Title)
				} else {
					titles = append(titles, fmt.Sprintf("#%d", it.ProjectID))
				}
			}
			wish := strings.Join(titles, ", ")
			if wish == "" {
				wish = "-"
			}
			rows = append(rows, []string{sw.Student.Number(), sw.Student.FullName(), sw.Student.Email, wish})
		}
		r.table([]string{"Student Number", "Name", "Email", "Wishlist"}, rows)
	}
}
