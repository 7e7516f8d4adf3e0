// Package entity defines the domain entities for the auth feature.
package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind distinguishes the two account tables that can log in.
type Kind string

const (
	KindStudent Kind = "student"
	KindAdmin   Kind = "admin"
)

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindStudent, KindAdmin:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown user kind %q", s)
}

// Student is an enrolled student account.
type Student struct {
	// ID is the unique identifier for the student.
	ID uint `gorm:"primaryKey"`

	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`

	// Email must be unique across all students.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash, never plaintext.
	Password string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins first and last name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Number is the display student number, e.g. ST000042.
func (s *Student) Number() string {
	return fmt.Sprintf("ST%06d", s.ID)
}

// ParseStudentNumber accepts "ST000042", "st42" or a bare "42" and returns the id.
func ParseStudentNumber(s string) (uint, bool) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.EqualFold(s[:2], "ST") {
		s = s[2:]
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// Admin is a department administrator account.
type Admin struct {
	ID uint `gorm:"primaryKey"`

	// Email must be unique across all admins.
	Email    string `gorm:"uniqueIndex;size:255;not null"`
	FullName string `gorm:"size:255;not null"`

	// Password is the bcrypt hash, never plaintext.
	Password string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
