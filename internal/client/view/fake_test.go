package view

import (
	"context"
	"errors"

	"student_portal/internal/client/api"
)

type fakeSession struct {
	user api.User
}

func (s fakeSession) IsAuthenticated() bool { return !s.user.IsZero() }
func (s fakeSession) UserKind() api.Kind    { return s.user.Kind() }
func (s fakeSession) User() api.User        { return s.user }

var errServer = errors.New("api: 500 Internal server error.")

// fakeAPI serves canned data and records wishlist changes.
type fakeAPI struct {
	announcements map[string][]api.Announcement
	projects      []api.Project
	wishlist      []api.WishlistItem
	students      []api.StudentWishlist
	nextID        uint
	fail          bool
	err           error // overrides errServer when fail is set
	calls         int
}

func (f *fakeAPI) failure() error {
	if f.err != nil {
		return f.err
	}
	return errServer
}

func (f *fakeAPI) Announcements(context.Context) ([]api.Announcement, error) {
	if f.fail {
		return nil, errServer
	}
	var all []api.Announcement
	for _, list := range f.announcements {
		all = append(all, list...)
	}
	return all, nil
}

func (f *fakeAPI) DepartmentAnnouncements(_ context.Context, department string) ([]api.Announcement, error) {
	f.calls++
	if f.fail {
		return nil, f.failure()
	}
	return f.announcements[department], nil
}

func (f *fakeAPI) Projects(context.Context) ([]api.Project, error) {
	if f.fail {
		return nil, errServer
	}
	return f.projects, nil
}

func (f *fakeAPI) Wishlist(_ context.Context, studentID uint) ([]api.WishlistItem, error) {
	if f.fail {
		return nil, errServer
	}
	var out []api.WishlistItem
	for _, it := range f.wishlist {
		if it.StudentID == studentID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeAPI) AddToWishlist(_ context.Context, studentID, projectID uint) (*api.WishlistItem, error) {
	if f.fail {
		return nil, errServer
	}
	f.nextID++
	it := api.WishlistItem{ID: 100 + f.nextID, StudentID: studentID, ProjectID: projectID}
	f.wishlist = append(f.wishlist, it)
	return &it, nil
}

func (f *fakeAPI) RemoveFromWishlist(_ context.Context, itemID uint) error {
	if f.fail {
		return errServer
	}
	for i, it := range f.wishlist {
		if it.ID == itemID {
			f.wishlist = append(f.wishlist[:i], f.wishlist[i+1:]...)
			return nil
		}
	}
	return &api.APIError{Status: 404, Message: "Wishlist item not found."}
}

func (f *fakeAPI) StudentWishlists(context.Context) ([]api.StudentWishlist, error) {
	if f.fail {
		return nil, errServer
	}
	return f.students, nil
}

var (
	jane  = api.Student{ID: 1, StudentNumber: "ST000001", FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	john  = api.Student{ID: 2, StudentNumber: "ST000002", FirstName: "John", LastName: "Smith", Email: "john@example.com"}
	admin = api.Admin{ID: 1, Email: "admin@example.com", FullName: "Admin User"}
)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		projects: []api.Project{
			{ID: 1, Title: "AI Research", Description: "Neural networks"},
			{ID: 2, Title: "Quantum Computing", Description: "Qubits"},
		},
	}
}
