package usecase

import (
	"context"
	"fmt"
	"io"

	authentity "student_portal/internal/feature/auth/domain/entity"
	"student_portal/internal/feature/student/domain/entity"
	wishlistentity "student_portal/internal/feature/wishlist/domain/entity"
)

// StudentRepository lists student accounts.
type StudentRepository interface {
	// List returns matching students in insertion order.
	List(ctx context.Context, f entity.Filter) ([]authentity.Student, error)
}

// WishlistAggregator returns every wishlist item grouped by student id.
type WishlistAggregator interface {
	ListAll(ctx context.Context) (map[uint][]wishlistentity.WishlistItem, error)
}

// WorkbookWriter renders the aggregate as a spreadsheet.
type WorkbookWriter interface {
	Write(w io.Writer, rows []entity.StudentWishlist) error
}

type directoryUsecase struct {
	students StudentRepository
	items    WishlistAggregator
	workbook WorkbookWriter
}

// NewDirectoryUsecase creates a new directoryUsecase.
func NewDirectoryUsecase(students StudentRepository, items WishlistAggregator, workbook WorkbookWriter) *directoryUsecase {
	return &directoryUsecase{students: students, items: items, workbook: workbook}
}

// ListAll returns students matching the search text and optional student number.
func (u *directoryUsecase) ListAll(ctx context.Context, search, studentNumber string) ([]authentity.Student, error) {
	f := entity.Filter{Search: search}
	if studentNumber != "" {
		id, ok := authentity.ParseStudentNumber(studentNumber)
		if !ok {
			return nil, ErrInvalidStudentNumber
		}
		f.StudentID = id
	}
	list, err := u.students.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return list, nil
}

// ListAllWishlists returns every student with their wishlist, including
// students whose wishlist is empty.
func (u *directoryUsecase) ListAllWishlists(ctx context.Context) ([]entity.StudentWishlist, error) {
	students, err := u.students.List(ctx, entity.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	byStudent, err := u.items.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlists: %w", err)
	}

	out := make([]entity.StudentWishlist, 0, len(students))
	for _, s := range students {
		items := byStudent[s.ID]
		if items == nil {
			items = []wishlistentity.WishlistItem{}
		}
		out = append(out, entity.StudentWishlist{Student: s, Items: items})
	}
	return out, nil
}

// ExportWishlists writes the aggregate as a workbook to w.
func (u *directoryUsecase) ExportWishlists(ctx context.Context, w io.Writer) error {
	rows, err := u.ListAllWishlists(ctx)
	if err != nil {
		return err
	}
	if err := u.workbook.Write(w, rows); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
