package api

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind names the account table a user belongs to.
type Kind string

const (
	KindStudent Kind = "student"
	KindAdmin   Kind = "admin"
)

// Student is the API view of a student account.
type Student struct {
	ID            uint   `json:"id"`
	StudentNumber string `json:"student_number,omitempty"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
}

// FullName joins first and last name.
func (s Student) FullName() string { return s.FirstName + " " + s.LastName }

// Number returns the student number, deriving it from the id when the
// payload did not carry one (login and /me responses).
func (s Student) Number() string {
	if s.StudentNumber != "" {
		return s.StudentNumber
	}
	return fmt.Sprintf("ST%06d", s.ID)
}

// Admin is the API view of an admin account.
type Admin struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// User is either a Student or an Admin. Read it with MatchUser.
type User struct {
	kind    Kind
	student *Student
	admin   *Admin
}

// StudentUser wraps a student.
func StudentUser(s Student) User { return User{kind: KindStudent, student: &s} }

// AdminUser wraps an admin.
func AdminUser(a Admin) User { return User{kind: KindAdmin, admin: &a} }

// Kind returns the user's kind, or "" for the zero User.
func (u User) Kind() Kind { return u.kind }

// IsZero reports whether u holds no account.
func (u User) IsZero() bool { return u.kind == "" }

// ID returns the account id.
func (u User) ID() uint {
	return MatchUser(u, func(s Student) uint { return s.ID }, func(a Admin) uint { return a.ID })
}

// DisplayName returns the name shown in page headers.
func (u User) DisplayName() string {
	return MatchUser(u, Student.FullName, func(a Admin) string { return a.FullName })
}

// MatchUser calls exactly one of the functions. It panics on the zero User.
func MatchUser[T any](u User, onStudent func(Student) T, onAdmin func(Admin) T) T {
	switch u.kind {
	case KindStudent:
		return onStudent(*u.student)
	case KindAdmin:
		return onAdmin(*u.admin)
	}
	panic("api: MatchUser on zero User")
}

// MarshalJSON encodes the wrapped account without the kind.
func (u User) MarshalJSON() ([]byte, error) {
	switch u.kind {
	case KindStudent:
		return json.Marshal(u.student)
	case KindAdmin:
		return json.Marshal(u.admin)
	}
	return []byte("null"), nil
}

// DecodeUser parses a user payload of the given kind.
func DecodeUser(kind Kind, raw []byte) (User, error) {
	switch kind {
	case KindStudent:
		var s Student
		if err := json.Unmarshal(raw, &s); err != nil {
			return User{}, fmt.Errorf("decode student: %w", err)
		}
		if s.ID == 0 {
			return User{}, fmt.Errorf("decode student: missing id")
		}
		return StudentUser(s), nil
	case KindAdmin:
		var a Admin
		if err := json.Unmarshal(raw, &a); err != nil {
			return User{}, fmt.Errorf("decode admin: %w", err)
		}
		if a.ID == 0 {
			return User{}, fmt.Errorf("decode admin: missing id")
		}
		return AdminUser(a), nil
	}
	return User{}, fmt.Errorf("unknown user type %q", kind)
}

// LoginResult is the decoded body of a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      User
}

// Announcement is a department announcement.
type Announcement struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Display        string    `json:"display"`
	DepartmentName string    `json:"department_name"`
	Datetime       time.Time `json:"datetime"`
}

// NewAnnouncement is the body of an announcement create call.
type NewAnnouncement struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Display  string `json:"display"`
	Datetime string `json:"datetime,omitempty"`
}

// Project is a final-year project.
type Project struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WishlistItem is one project on a student's wishlist.
type WishlistItem struct {
	ID        uint     `json:"id"`
	StudentID uint     `json:"student_id"`
	ProjectID uint     `json:"project_id"`
	Project   *Project `json:"project"`
}

// StudentWishlist is one entry of the admin aggregate view.
type StudentWishlist struct {
	Student  Student        `json:"student"`
	Wishlist []WishlistItem `json:"wishlist"`
}

// MessageResponse is the body of endpoints that return only a message.
type MessageResponse struct {
	Message string `json:"message"`
}
