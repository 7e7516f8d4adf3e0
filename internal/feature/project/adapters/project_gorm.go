// Package adapters provides repository implementations for the project feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"student_portal/internal/feature/project/domain/entity"
	"student_portal/internal/feature/project/usecase"
)

type projectGorm struct {
	db *gorm.DB
}

var _ usecase.ProjectRepository = (*projectGorm)(nil)

// NewProjectGorm creates a new projectGorm.
func NewProjectGorm(db *gorm.DB) *projectGorm {
	return &projectGorm{db: db}
}

// List returns all projects ordered by id, i.e. insertion order.
func (r *projectGorm) List(ctx context.Context) ([]entity.Project, error) {
	out := []entity.Project{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

// Create inserts the project and fills its ID.
func (r *projectGorm) Create(ctx context.Context, p *entity.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByID returns usecase.ErrProjectNotFound when absent.
func (r *projectGorm) FindByID(ctx context.Context, id uint) (*entity.Project, error) {
	var p entity.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}
