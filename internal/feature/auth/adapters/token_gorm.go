package adapters

import (
	"context"
	"errors"
	"time"

	"student_portal/internal/feature/auth/domain/entity"
	"student_portal/internal/feature/auth/usecase"

	"gorm.io/gorm"
)

// tokenGorm is a SQL implementation of the TokenRepository interface.
type tokenGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure tokenGorm implements TokenRepository.
var _ usecase.TokenRepository = (*tokenGorm)(nil)

// NewTokenGorm creates a new instance of tokenGorm.
func NewTokenGorm(db *gorm.DB) *tokenGorm {
	return &tokenGorm{db: db}
}

// Create persists a new token to the database.
func (r *tokenGorm) Create(ctx context.Context, token *entity.Token) error {
	return r.db.WithContext(ctx).Create(TokenModelFromEntity(token)).Error
}

// FindByID retrieves a token by its value.
func (r *tokenGorm) FindByID(ctx context.Context, id string) (*entity.Token, error) {
	var model TokenModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Revoke marks a token as revoked by its ID.
func (r *tokenGorm) Revoke(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&TokenModel{}).
		Where("id = ?", id).
		Update("revoked_at", time.Now())

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTokenNotFound
	}
	return nil
}

// RevokeAll marks every unrevoked, unexpired token of the identity as revoked.
func (r *tokenGorm) RevokeAll(ctx context.Context, kind entity.Kind, identityID uint) (int64, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&TokenModel{}).
		Where("kind = ? AND identity_id = ? AND revoked_at IS NULL AND expires_at > ?", string(kind), identityID, now).
		Update("revoked_at", now)
	return result.RowsAffected, result.Error
}

// DeleteExpired removes all expired tokens from storage.
func (r *tokenGorm) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&TokenModel{})
	return result.RowsAffected, result.Error
}
