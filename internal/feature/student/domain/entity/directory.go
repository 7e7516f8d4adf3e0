// Package entity defines the read models of the admin student directory.
package entity

import (
	authentity "student_portal/internal/feature/auth/domain/entity"
	wishlistentity "student_portal/internal/feature/wishlist/domain/entity"
)

// Filter narrows the student listing. Zero values match everything.
type Filter struct {
	// Search matches first name, last name, full name or email, case-insensitively.
	Search string
	// StudentID restricts the listing to one student, parsed from a student number.
	StudentID uint
}

// StudentWishlist pairs a student with their wishlist items.
type StudentWishlist struct {
	Student authentity.Student
	Items   []wishlistentity.WishlistItem
}
