package adapters

import (
	"time"

	"student_portal/internal/feature/auth/domain/entity"
)

// TokenModel is the GORM model for the auth_tokens table.
type TokenModel struct {
	ID         string     `gorm:"primaryKey;size:64"`
	Kind       string     `gorm:"size:16;not null;index:idx_auth_tokens_identity"`
	IdentityID uint       `gorm:"not null;index:idx_auth_tokens_identity"`
	UserAgent  string     `gorm:"size:512"`
	IPAddress  string     `gorm:"size:45"` // IPv6 max length
	CreatedAt  time.Time  `gorm:"not null"`
	ExpiresAt  time.Time  `gorm:"index;not null"`
	RevokedAt  *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM.
func (TokenModel) TableName() string {
	return "auth_tokens"
}

// ToEntity converts the GORM model to a domain entity.
func (m *TokenModel) ToEntity() *entity.Token {
	return &entity.Token{
		ID:         m.ID,
		Kind:       entity.Kind(m.Kind),
		IdentityID: m.IdentityID,
		UserAgent:  m.UserAgent,
		IPAddress:  m.IPAddress,
		CreatedAt:  m.CreatedAt,
		ExpiresAt:  m.ExpiresAt,
		RevokedAt:  m.RevokedAt,
	}
}

// TokenModelFromEntity converts a domain entity to a GORM model.
func TokenModelFromEntity(t *entity.Token) *TokenModel {
	return &TokenModel{
		ID:         t.ID,
		Kind:       string(t.Kind),
		IdentityID: t.IdentityID,
		UserAgent:  t.UserAgent,
		IPAddress:  t.IPAddress,
		CreatedAt:  t.CreatedAt,
		ExpiresAt:  t.ExpiresAt,
		RevokedAt:  t.RevokedAt,
	}
}
