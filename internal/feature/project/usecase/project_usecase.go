// Package usecase implements the business logic for the project feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"student_portal/internal/feature/project/domain/entity"
)

// ErrProjectNotFound is returned when a project id does not exist.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository abstracts project storage.
type ProjectRepository interface {
	// List returns all projects in insertion order.
	List(ctx context.Context) ([]entity.Project, error)
	Create(ctx context.Context, p *entity.Project) error
	// FindByID returns ErrProjectNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Project, error)
}

type projectUsecase struct {
	repo ProjectRepository
}

// NewProjectUsecase creates a new projectUsecase.
func NewProjectUsecase(repo ProjectRepository) *projectUsecase {
	return &projectUsecase{repo: repo}
}

// List returns all projects in insertion order.
func (u *projectUsecase) List(ctx context.Context) ([]entity.Project, error) {
	return u.repo.List(ctx)
}

// Create stores a new project.
func (u *projectUsecase) Create(ctx context.Context, title, description string) (*entity.Project, error) {
	p := &entity.Project{Title: title, Description: description}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}
