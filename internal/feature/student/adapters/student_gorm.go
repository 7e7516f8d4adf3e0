// Package adapters provides the student directory's storage and export implementations.
package adapters

import (
	"context"
	"strings"

	"gorm.io/gorm"

	authentity "student_portal/internal/feature/auth/domain/entity"
	"student_portal/internal/feature/student/domain/entity"
	"student_portal/internal/feature/student/usecase"
)

type studentGorm struct {
	db *gorm.DB
}

var _ usecase.StudentRepository = (*studentGorm)(nil)

// NewStudentGorm creates a new studentGorm.
func NewStudentGorm(db *gorm.DB) *studentGorm {
	return &studentGorm{db: db}
}

// List returns matching students ordered by id.
func (r *studentGorm) List(ctx context.Context, f entity.Filter) ([]authentity.Student, error) {
	q := r.db.WithContext(ctx).Model(&authentity.Student{})
	if f.StudentID != 0 {
		q = q.Where("id = ?", f.StudentID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + escapeLike(strings.ToLower(s)) + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? ESCAPE '\\' OR LOWER(last_name) LIKE ? ESCAPE '\\' OR LOWER(first_name || ' ' || last_name) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\'",
			like, like, like, like,
		)
	}

	out := []authentity.Student{}
	err := q.Order("id ASC").Find(&out).Error
	return out, err
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
