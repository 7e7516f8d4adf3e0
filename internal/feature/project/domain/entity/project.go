// Package entity defines the domain entities for the project feature.
package entity

import "time"

// Project is a final-year project students can add to their wishlist.
type Project struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
