// Package usecase implements the business logic for the wishlist feature.
package usecase

import "errors"

var (
	// ErrItemNotFound is returned when a wishlist item id does not exist.
	ErrItemNotFound = errors.New("wishlist item not found")

	// ErrAlreadyInWishlist is returned when the project is already on the student's wishlist.
	ErrAlreadyInWishlist = errors.New("project already in wishlist")

	// ErrProjectNotFound is returned when adding a project that does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrStudentNotFound is returned when the wishlist owner does not exist.
	ErrStudentNotFound = errors.New("student not found")

	// ErrForbidden is returned when the caller may not read or change the wishlist.
	ErrForbidden = errors.New("forbidden")
)
