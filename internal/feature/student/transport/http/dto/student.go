// Package dto defines data transfer objects for the student directory's HTTP transport layer.
package dto

import (
	authentity "student_portal/internal/feature/auth/domain/entity"
	"student_portal/internal/feature/student/domain/entity"
	wishlistdto "student_portal/internal/feature/wishlist/transport/http/dto"
)

// ListStudentsQuery is the query string of GET /admin/students.
type ListStudentsQuery struct {
	Search        string `form:"search" binding:"max=100"`
	StudentNumber string `form:"student_number" binding:"max=20"`
}

// StudentRes is the admin view of a student.
type StudentRes struct {
	ID            uint   `json:"id"`
	StudentNumber string `json:"student_number"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
}

// StudentWishlistRes is one entry of GET /admin/student-wishlists.
type StudentWishlistRes struct {
	Student  StudentRes                    `json:"student"`
	Wishlist []wishlistdto.WishlistItemRes `json:"wishlist"`
}

// ToStudentRes converts the entity.
func ToStudentRes(s authentity.Student) StudentRes {
	return StudentRes{
		ID:            s.ID,
		StudentNumber: s.Number(),
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		Email:         s.Email,
	}
}

// ToStudentResList converts a list, never returning nil.
func ToStudentResList(list []authentity.Student) []StudentRes {
	out := make([]StudentRes, 0, len(list))
	for _, s := range list {
		out = append(out, ToStudentRes(s))
	}
	return out
}

// ToStudentWishlistResList converts the aggregate, never returning nil.
func ToStudentWishlistResList(list []entity.StudentWishlist) []StudentWishlistRes {
	out := make([]StudentWishlistRes, 0, len(list))
	for _, sw := range list {
		out = append(out, StudentWishlistRes{
			Student:  ToStudentRes(sw.Student),
			Wishlist: wishlistdto.ToWishlistItemResList(sw.Items),
		})
	}
	return out
}
