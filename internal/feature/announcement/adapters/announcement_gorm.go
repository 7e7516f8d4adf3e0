// Package adapters provides repository implementations for the announcement feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"student_portal/internal/feature/announcement/domain/entity"
	"student_portal/internal/feature/announcement/usecase"
)

// announcementGorm implements usecase.AnnouncementRepository with GORM.
type announcementGorm struct {
	db *gorm.DB
}

var _ usecase.AnnouncementRepository = (*announcementGorm)(nil)

// NewAnnouncementGorm creates a new announcementGorm.
func NewAnnouncementGorm(db *gorm.DB) *announcementGorm {
	return &announcementGorm{db: db}
}

// newestFirst orders by publication time. Ties keep the later insert first.
const newestFirst = "datetime DESC, id DESC"

// List returns every announcement, newest first.
func (r *announcementGorm) List(ctx context.Context) ([]entity.Announcement, error) {
	out := []entity.Announcement{}
	err := r.db.WithContext(ctx).Order(newestFirst).Find(&out).Error
	return out, err
}

// ListByDepartment returns the announcements of dept, newest first.
func (r *announcementGorm) ListByDepartment(ctx context.Context, dept entity.Department) ([]entity.Announcement, error) {
	out := []entity.Announcement{}
	err := r.db.WithContext(ctx).Where("display = ?", dept).Order(newestFirst).Find(&out).Error
	return out, err
}

// Create inserts the announcement and fills its ID.
func (r *announcementGorm) Create(ctx context.Context, a *entity.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}
