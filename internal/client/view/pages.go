package view

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"student_portal/internal/client/api"
	announcemententity "student_portal/internal/feature/announcement/domain/entity"
	"student_portal/internal/platform/logger"
)

// Inline states of the announcement pages.
const (
	MsgLoginForAnnouncements = "Log in to see announcements."
	MsgAnnouncementsFailed   = "Could not load announcements. Please try again later."
)

// AnnouncementAPI is the part of the API the announcement pages read.
type AnnouncementAPI interface {
	Announcements(ctx context.Context) ([]api.Announcement, error)
	DepartmentAnnouncements(ctx context.Context, department string) ([]api.Announcement, error)
}

// Renderer writes pages to an io.Writer.
type Renderer struct {
	w   io.Writer
	loc *time.Location
}

// NewRenderer renders to w with dates in loc (UTC when nil).
func NewRenderer(w io.Writer, loc *time.Location) *Renderer {
	return &Renderer{w: w, loc: loc}
}

func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) heading(title string) {
	r.printf("%s\n%s\n\n", title, strings.Repeat("=", len([]rune(title))))
}

// AnnouncementCard renders one announcement.
func (r *Renderer) AnnouncementCard(a api.Announcement) {
	r.printf("[%s] %s\n", a.DepartmentName, a.Title)
	r.printf("%s\n", FormatDate(a.Datetime, r.loc))
	r.printf("%s\n\n", a.Content)
}

// Announcements renders a list of cards with an empty-state message.
func (r *Renderer) Announcements(list []api.Announcement, empty string) {
	if len(list) == 0 {
		r.printf("%s\n\n", empty)
		return
	}
	for _, a := range list {
		r.AnnouncementCard(a)
	}
}

// departmentAnnouncements renders one department's cards. Announcements need a
// token, so a signed-out visitor gets a login prompt and no call is made.
// A failed call is logged and shown inline; only a rejected token is returned
// so the caller can end the session.
func (r *Renderer) departmentAnnouncements(ctx context.Context, client AnnouncementAPI, slug string, signedIn bool, empty string) error {
	if !signedIn {
		r.printf("%s\n\n", MsgLoginForAnnouncements)
		return nil
	}
	list, err := client.DepartmentAnnouncements(ctx, slug)
	if err != nil {
		logger.Error().Err(err).Str("department", slug).Msg("failed to load announcements")
		if api.IsUnauthorized(err) {
			r.printf("%s\n\n", MsgLoginForAnnouncements)
			return err
		}
		r.printf("%s\n\n", MsgAnnouncementsFailed)
		return nil
	}
	r.Announcements(list, empty)
	return nil
}

// Home renders the landing page: general announcements and department links.
func (r *Renderer) Home(ctx context.Context, client AnnouncementAPI, signedIn bool) error {
	r.heading("University Student Portal")
	r.printf("Latest Announcements\n\n")
	err := r.departmentAnnouncements(ctx, client, string(announcemententity.DepartmentGeneral), signedIn,
		"No announcements available at this time.")
	r.printf("Departments\n")
	for _, d := range announcemententity.Departments {
		if d == announcemententity.DepartmentGeneral {
			continue
		}
		r.printf("  %-18s %s\n", d.Name(), DepartmentPath(d.Slug()))
	}
	r.printf("\n")
	return err
}

// Department renders one department's page.
func (r *Renderer) Department(ctx context.Context, client AnnouncementAPI, slug string, signedIn bool) error {
	r.heading(DepartmentName(slug) + " Department")
	return r.departmentAnnouncements(ctx, client, slug, signedIn,
		"No announcements available for this department at this time.")
}

// Login renders the login prompt.
func (r *Renderer) Login(message string) {
	r.heading("Login")
	if message != "" {
		r.printf("%s\n\n", message)
	}
	r.printf("Sign in with: portal login --type student|admin --email EMAIL\n\n")
}

// NotFound renders the fallback page.
func (r *Renderer) NotFound(path string) {
	r.heading("Page Not Found")
	r.printf("No page at %s\n\n", path)
}

// table writes rows aligned in columns.
func (r *Renderer) table(header []string, rows [][]string) {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
	r.printf("\n")
}
