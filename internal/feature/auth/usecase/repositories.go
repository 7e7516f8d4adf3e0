package usecase

import (
	"context"

	"student_portal/internal/feature/auth/domain/entity"
)

// StudentRepository abstracts the persistence layer for student accounts.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type StudentRepository interface {
	// Create persists a new student. Returns ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, s *entity.Student) error

	// FindByEmail returns ErrUserNotFound when no student has the email.
	FindByEmail(ctx context.Context, email string) (*entity.Student, error)

	// FindByID returns ErrUserNotFound when no student has the id.
	FindByID(ctx context.Context, id uint) (*entity.Student, error)
}

// AdminRepository abstracts the persistence layer for admin accounts.
type AdminRepository interface {
	Create(ctx context.Context, a *entity.Admin) error
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
	FindByID(ctx context.Context, id uint) (*entity.Admin, error)
}

// TokenRepository abstracts storage of issued bearer tokens.
type TokenRepository interface {
	// Create persists a newly issued token.
	Create(ctx context.Context, token *entity.Token) error

	// FindByID retrieves a token by its value. Returns ErrTokenNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.Token, error)

	// Revoke marks a token as revoked. Returns ErrTokenNotFound when absent.
	Revoke(ctx context.Context, id string) error

	// RevokeAll revokes every live token of one identity and returns how many were revoked.
	RevokeAll(ctx context.Context, kind entity.Kind, identityID uint) (int64, error)

	// DeleteExpired removes all expired tokens and returns how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
