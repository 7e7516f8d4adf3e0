package usecase

import (
	"context"
	"errors"
	"fmt"

	authentity "student_portal/internal/feature/auth/domain/entity"
	"student_portal/internal/feature/wishlist/domain/entity"
)

// WishlistRepository abstracts wishlist storage.
type WishlistRepository interface {
	// ListByStudent returns the student's items in insertion order with Project loaded.
	ListByStudent(ctx context.Context, studentID uint) ([]entity.WishlistItem, error)
	// Create inserts the item. Returns ErrAlreadyInWishlist for a duplicate pair.
	Create(ctx context.Context, item *entity.WishlistItem) error
	// FindByID returns ErrItemNotFound when absent. Project is loaded.
	FindByID(ctx context.Context, id uint) (*entity.WishlistItem, error)
	// Delete returns ErrItemNotFound when absent.
	Delete(ctx context.Context, id uint) error
}

// ProjectChecker reports whether a project exists.
type ProjectChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// StudentChecker reports whether a student exists.
type StudentChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type wishlistUsecase struct {
	items    WishlistRepository
	projects ProjectChecker
	students StudentChecker
}

// NewWishlistUsecase creates a new wishlistUsecase.
func NewWishlistUsecase(items WishlistRepository, projects ProjectChecker, students StudentChecker) *wishlistUsecase {
	return &wishlistUsecase{items: items, projects: projects, students: students}
}

// ListForStudent returns the student's wishlist. Students may read only their
// own wishlist; admins may read any.
func (u *wishlistUsecase) ListForStudent(ctx context.Context, caller authentity.Principal, studentID uint) ([]entity.WishlistItem, error) {
	if caller.Kind != authentity.KindAdmin && !caller.IsStudent(studentID) {
		return nil, ErrForbidden
	}
	if caller.Kind == authentity.KindAdmin {
		ok, err := u.students.Exists(ctx, studentID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up student: %w", err)
		}
		if !ok {
			return nil, ErrStudentNotFound
		}
	}
	return u.items.ListByStudent(ctx, studentID)
}

// Add puts the project on the student's own wishlist.
func (u *wishlistUsecase) Add(ctx context.Context, caller authentity.Principal, studentID, projectID uint) (*entity.WishlistItem, error) {
	if !caller.IsStudent(studentID) {
		return nil, ErrForbidden
	}
	ok, err := u.projects.Exists(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up project: %w", err)
	}
	if !ok {
		return nil, ErrProjectNotFound
	}

	item := &entity.WishlistItem{StudentID: studentID, ProjectID: projectID}
	if err := u.items.Create(ctx, item); err != nil {
		if errors.Is(err, ErrAlreadyInWishlist) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}
	// Reload with the project for the response.
	return u.items.FindByID(ctx, item.ID)
}

// Remove deletes an item owned by the caller. A missing id is ErrItemNotFound;
// someone else's item is ErrForbidden and nothing is deleted.
func (u *wishlistUsecase) Remove(ctx context.Context, caller authentity.Principal, itemID uint) error {
	item, err := u.items.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if !caller.IsStudent(item.StudentID) {
		return ErrForbidden
	}
	return u.items.Delete(ctx, itemID)
}
