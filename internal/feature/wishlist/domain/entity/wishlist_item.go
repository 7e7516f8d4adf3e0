// Package entity defines the domain entities for the wishlist feature.
package entity

import (
	"time"

	authentity "student_portal/internal/feature/auth/domain/entity"
	projectentity "student_portal/internal/feature/project/domain/entity"
)

// WishlistItem records one student's interest in one project.
// A (StudentID, ProjectID) pair appears at most once.
type WishlistItem struct {
	ID        uint `gorm:"primaryKey"`
	StudentID uint `gorm:"not null;uniqueIndex:idx_wishlist_student_project"`
	ProjectID uint `gorm:"not null;uniqueIndex:idx_wishlist_student_project"`
	CreatedAt time.Time

	// Project is loaded on reads.
	Project *projectentity.Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	// Student is only declared for the cascading foreign key.
	Student *authentity.Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (WishlistItem) TableName() string {
	return "wishlist_items"
}
