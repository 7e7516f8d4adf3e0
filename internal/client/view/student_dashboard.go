package view

import (
	"context"
	"fmt"
	"slices"

	"student_portal/internal/client/api"
	"student_portal/internal/platform/logger"
)

// StudentAPI is the part of the API the student dashboard uses.
type StudentAPI interface {
	Projects(ctx context.Context) ([]api.Project, error)
	Wishlist(ctx context.Context, studentID uint) ([]api.WishlistItem, error)
	AddToWishlist(ctx context.Context, studentID, projectID uint) (*api.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, itemID uint) error
}

// StudentDashboard holds the projects and wishlist of the signed-in student.
// Local state changes only after the server accepts a change.
type StudentDashboard struct {
	api      StudentAPI
	student  api.Student
	projects []api.Project
	wishlist []api.WishlistItem
}

// NewStudentDashboard creates a dashboard for student.
func NewStudentDashboard(client StudentAPI, student api.Student) *StudentDashboard {
	return &StudentDashboard{api: client, student: student}
}

// Load fetches projects and the wishlist. On failure the previous state is kept.
func (d *StudentDashboard) Load(ctx context.Context) error {
	projects, err := d.api.Projects(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load projects")
		return fmt.Errorf("load projects: %w", err)
	}
	wishlist, err := d.api.Wishlist(ctx, d.student.ID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load wishlist")
		return fmt.Errorf("load wishlist: %w", err)
	}
	d.projects = projects
	d.wishlist = wishlist
	return nil
}

// Projects returns the loaded projects.
func (d *StudentDashboard) Projects() []api.Project { return d.projects }

// Wishlist returns the loaded wishlist items.
func (d *StudentDashboard) Wishlist() []api.WishlistItem { return d.wishlist }

// InWishlist reports whether projectID is on the wishlist.
func (d *StudentDashboard) InWishlist(projectID uint) bool {
	return d.itemIndex(projectID) >= 0
}

func (d *StudentDashboard) itemIndex(projectID uint) int {
	return slices.IndexFunc(d.wishlist, func(it api.WishlistItem) bool { return it.ProjectID == projectID })
}

// Add puts projectID on the wishlist and appends the created item locally.
func (d *StudentDashboard) Add(ctx context.Context, projectID uint) error {
	item, err := d.api.AddToWishlist(ctx, d.student.ID, projectID)
	if err != nil {
		logger.Error().Err(err).Uint("project_id", projectID).Msg("failed to add project to wishlist")
		return err
	}
	if item.Project == nil {
		if i := slices.IndexFunc(d.projects, func(p api.Project) bool { return p.ID == projectID }); i >= 0 {
			p := d.projects[i]
			item.Project = &p
		}
	}
	d.wishlist = append(d.wishlist, *item)
	return nil
}

// Remove takes projectID off the wishlist and drops the item locally.
func (d *StudentDashboard) Remove(ctx context.Context, projectID uint) error {
	i := d.itemIndex(projectID)
	if i < 0 {
		return fmt.Errorf("project %d is not in your wishlist", projectID)
	}
	if err := d.api.RemoveFromWishlist(ctx, d.wishlist[i].ID); err != nil {
		logger.Error().Err(err).Uint("project_id", projectID).Msg("failed to remove project from wishlist")
		return err
	}
	d.wishlist = slices.Delete(d.wishlist, i, i+1)
	return nil
}

// Render writes the dashboard to r.
func (d *StudentDashboard) Render(r *Renderer) {
	r.heading("Student Dashboard")
	r.printf("Welcome, %s\n\n", d.student.FullName())

	r.printf("Profile\n")
	r.table([]string{"Student Number", "Name", "Email"},
		[][]string{{d.student.Number(), d.student.FullName(), d.student.Email}})

	r.printf("Available Projects\n")
	if len(d.projects) == 0 {
		r.printf("No projects available.\n\n")
	} else {
		rows := make([][]string, 0, len(d.projects))
		for _, p := range d.projects {
			mark := ""
			if d.InWishlist(p.ID) {
				mark = "In Wishlist"
			}
			rows = append(rows, []string{fmt.Sprint(p.ID), p.Title, truncate(p.Description, 60), mark})
		}
		r.table([]string{"ID", "Title", "Description", ""}, rows)
	}

	r.printf("My Wishlist\n")
	if len(d.wishlist) == 0 {
		r.printf("Your wishlist is empty.\n\n")
		return
	}
	rows := make([][]string, 0, len(d.wishlist))
	for _, it := range d.wishlist {
		title := ""
		if it.Project != nil {
			title = it.Project.Title
		}
		rows = append(rows, []string{fmt.Sprint(it.ProjectID), title})
	}
	r.table([]string{"Project ID", "Title"}, rows)
}
