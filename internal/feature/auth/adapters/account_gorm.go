// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"student_portal/internal/feature/auth/domain/entity"
	"student_portal/internal/feature/auth/usecase"
)

// studentGorm implements usecase.StudentRepository with GORM.
type studentGorm struct {
	db *gorm.DB
}

// adminGorm implements usecase.AdminRepository with GORM.
type adminGorm struct {
	db *gorm.DB
}

// Compile-time interface checks.
var (
	_ usecase.StudentRepository = (*studentGorm)(nil)
	_ usecase.AdminRepository   = (*adminGorm)(nil)
)

// NewStudentGorm creates a student repository on the given connection.
func NewStudentGorm(db *gorm.DB) *studentGorm {
	return &studentGorm{db: db}
}

// NewAdminGorm creates an admin repository on the given connection.
func NewAdminGorm(db *gorm.DB) *adminGorm {
	return &adminGorm{db: db}
}

// Create inserts the student. A duplicate email yields usecase.ErrEmailAlreadyExists.
func (r *studentGorm) Create(ctx context.Context, s *entity.Student) error {
	return createAccount(ctx, r.db, s)
}

// FindByEmail returns usecase.ErrUserNotFound when no student matches.
func (r *studentGorm) FindByEmail(ctx context.Context, email string) (*entity.Student, error) {
	return firstAccount[entity.Student](ctx, r.db, "email = ?", email)
}

// FindByID returns usecase.ErrUserNotFound when no student matches.
func (r *studentGorm) FindByID(ctx context.Context, id uint) (*entity.Student, error) {
	return firstAccount[entity.Student](ctx, r.db, "id = ?", id)
}

// Create inserts the admin. A duplicate email yields usecase.ErrEmailAlreadyExists.
func (r *adminGorm) Create(ctx context.Context, a *entity.Admin) error {
	return createAccount(ctx, r.db, a)
}

// FindByEmail returns usecase.ErrUserNotFound when no admin matches.
func (r *adminGorm) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return firstAccount[entity.Admin](ctx, r.db, "email = ?", email)
}

// FindByID returns usecase.ErrUserNotFound when no admin matches.
func (r *adminGorm) FindByID(ctx context.Context, id uint) (*entity.Admin, error) {
	return firstAccount[entity.Admin](ctx, r.db, "id = ?", id)
}

func createAccount(ctx context.Context, db *gorm.DB, account any) error {
	if err := db.WithContext(ctx).Create(account).Error; err != nil {
		// Requires gorm.Config{TranslateError: true}.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

func firstAccount[T any](ctx context.Context, db *gorm.DB, query string, arg any) (*T, error) {
	var account T
	if err := db.WithContext(ctx).Where(query, arg).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &account, nil
}
