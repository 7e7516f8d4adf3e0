// Package adapters provides repository implementations for the wishlist feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authentity "student_portal/internal/feature/auth/domain/entity"
	projectentity "student_portal/internal/feature/project/domain/entity"
	"student_portal/internal/feature/wishlist/domain/entity"
	"student_portal/internal/feature/wishlist/usecase"
)

type wishlistGorm struct {
	db *gorm.DB
}

var _ usecase.WishlistRepository = (*wishlistGorm)(nil)

// NewWishlistGorm creates a new wishlistGorm.
func NewWishlistGorm(db *gorm.DB) *wishlistGorm {
	return &wishlistGorm{db: db}
}

// ListByStudent returns the student's items in insertion order with Project loaded.
func (r *wishlistGorm) ListByStudent(ctx context.Context, studentID uint) ([]entity.WishlistItem, error) {
	out := []entity.WishlistItem{}
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("student_id = ?", studentID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// ListAll returns every item grouped by student id, with Project loaded.
func (r *wishlistGorm) ListAll(ctx context.Context) (map[uint][]entity.WishlistItem, error) {
	var items []entity.WishlistItem
	if err := r.db.WithContext(ctx).Preload("Project").Order("student_id ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	out := make(map[uint][]entity.WishlistItem)
	for _, it := range items {
		out[it.StudentID] = append(out[it.StudentID], it)
	}
	return out, nil
}

// Create inserts the item. The unique (student_id, project_id) index turns a
// duplicate into usecase.ErrAlreadyInWishlist, including under concurrent adds.
func (r *wishlistGorm) Create(ctx context.Context, item *entity.WishlistItem) error {
	// Omit associations so a nil Project/Student is never upserted.
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadyInWishlist
		}
		return err
	}
	return nil
}

// FindByID returns usecase.ErrItemNotFound when absent.
func (r *wishlistGorm) FindByID(ctx context.Context, id uint) (*entity.WishlistItem, error) {
	var item entity.WishlistItem
	if err := r.db.WithContext(ctx).Preload("Project").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Delete returns usecase.ErrItemNotFound when no row was removed.
func (r *wishlistGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.WishlistItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

// recordExists implements usecase.ProjectChecker and usecase.StudentChecker.
type recordExists struct {
	db    *gorm.DB
	model any
}

var (
	_ usecase.ProjectChecker = (*recordExists)(nil)
	_ usecase.StudentChecker = (*recordExists)(nil)
)

// NewProjectChecker checks ids against the projects table.
func NewProjectChecker(db *gorm.DB) *recordExists {
	return &recordExists{db: db, model: &projectentity.Project{}}
}

// NewStudentChecker checks ids against the students table.
func NewStudentChecker(db *gorm.DB) *recordExists {
	return &recordExists{db: db, model: &authentity.Student{}}
}

// Exists reports whether a row with the id exists.
func (r *recordExists) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(r.model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
