package dto

import (
	"time"

	"student_portal/internal/feature/auth/domain/entity"
)

// StudentRes is the public view of a student. The password hash is never serialized.
type StudentRes struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// AdminRes is the public view of an admin.
type AdminRes struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// LoginRes is returned by a successful login.
type LoginRes struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserType  string    `json:"user_type"`
	User      any       `json:"user"`
}

// LogoutAllRes is returned by POST /logout/all.
type LogoutAllRes struct {
	Message string `json:"message"`
	Revoked int64  `json:"revoked"`
}

// MeRes describes the caller of GET /me.
type MeRes struct {
	UserType string `json:"user_type"`
	User     any    `json:"user"`
}

// UserFromIdentity renders the identity as a StudentRes or AdminRes.
func UserFromIdentity(i entity.Identity) any {
	return entity.Match(i,
		func(s *entity.Student) any {
			return StudentRes{ID: s.ID, FirstName: s.FirstName, LastName: s.LastName, Email: s.Email}
		},
		func(a *entity.Admin) any {
			return AdminRes{ID: a.ID, Email: a.Email, FullName: a.FullName}
		},
	)
}
