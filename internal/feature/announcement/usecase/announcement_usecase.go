package usecase

import (
	"context"
	"fmt"
	"time"

	"student_portal/internal/feature/announcement/domain/entity"
)

// AnnouncementRepository abstracts announcement storage.
// Both list methods return announcements newest first.
type AnnouncementRepository interface {
	List(ctx context.Context) ([]entity.Announcement, error)
	ListByDepartment(ctx context.Context, dept entity.Department) ([]entity.Announcement, error)
	Create(ctx context.Context, a *entity.Announcement) error
}

// CreateInput holds the fields of a new announcement.
type CreateInput struct {
	Title   string
	Content string
	Display entity.Department
	// Datetime defaults to now when zero.
	Datetime time.Time
}

type announcementUsecase struct {
	repo AnnouncementRepository
	now  func() time.Time
}

// NewAnnouncementUsecase creates a new announcementUsecase.
func NewAnnouncementUsecase(repo AnnouncementRepository) *announcementUsecase {
	return &announcementUsecase{repo: repo, now: time.Now}
}

// List returns every announcement, newest first.
func (u *announcementUsecase) List(ctx context.Context) ([]entity.Announcement, error) {
	return u.repo.List(ctx)
}

// ListByDepartment returns the announcements of one department, newest first.
// department may be a stored value or a URL slug.
func (u *announcementUsecase) ListByDepartment(ctx context.Context, department string) ([]entity.Announcement, error) {
	dept, err := entity.ParseDepartment(department)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDepartment, department)
	}
	return u.repo.ListByDepartment(ctx, dept)
}

// Create stores a new announcement.
func (u *announcementUsecase) Create(ctx context.Context, in CreateInput) (*entity.Announcement, error) {
	if !in.Display.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDepartment, in.Display)
	}
	dt := in.Datetime
	if dt.IsZero() {
		dt = u.now()
	}
	a := &entity.Announcement{
		Title:    in.Title,
		Content:  in.Content,
		Display:  in.Display,
		Datetime: dt.UTC().Truncate(time.Second),
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return a, nil
}
