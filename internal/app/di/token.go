// Package di wires repositories, usecases and handlers into the application graph.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "student_portal/internal/feature/auth/adapters"
	"student_portal/internal/feature/auth/usecase"
	"student_portal/internal/platform/session"
)

// NewTokenRepository creates a TokenRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the auth_tokens table.
func NewTokenRepository(rdb *redis.Client, db *gorm.DB) usecase.TokenRepository {
	if rdb != nil {
		return session.NewTokenRedis(rdb, "token")
	}
	return authadapters.NewTokenGorm(db)
}
