// Package entity defines the domain entities for the announcement feature.
package entity

import (
	"fmt"
	"strings"
	"time"
)

// Department scopes an announcement to an audience.
type Department string

const (
	DepartmentGeneral         Department = "general"
	DepartmentComputerScience Department = "computer_science"
	DepartmentPhysics         Department = "physics"
	DepartmentChemistry       Department = "chemistry"
	DepartmentMath            Department = "math"
)

// Departments lists every department in display order.
var Departments = []Department{
	DepartmentGeneral,
	DepartmentComputerScience,
	DepartmentPhysics,
	DepartmentChemistry,
	DepartmentMath,
}

var departmentNames = map[Department]string{
	DepartmentGeneral:         "General",
	DepartmentComputerScience: "Computer Science",
	DepartmentPhysics:         "Physics",
	DepartmentChemistry:       "Chemistry",
	DepartmentMath:            "Mathematics",
}

// ParseDepartment accepts the stored value ("computer_science") or the URL
// slug ("computer-science").
func ParseDepartment(s string) (Department, error) {
	d := Department(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if _, ok := departmentNames[d]; !ok {
		return "", fmt.Errorf("unknown department %q", s)
	}
	return d, nil
}

// Valid reports whether d is one of the fixed departments.
func (d Department) Valid() bool {
	_, ok := departmentNames[d]
	return ok
}

// Name is the human-readable department name.
func (d Department) Name() string {
	return departmentNames[d]
}

// Slug is the URL form used by public department pages.
func (d Department) Slug() string {
	return strings.ReplaceAll(string(d), "_", "-")
}

// Announcement is a department notice. Announcements are append-only.
type Announcement struct {
	ID      uint       `gorm:"primaryKey"`
	Title   string     `gorm:"size:255;not null"`
	Content string     `gorm:"type:text;not null"`
	Display Department `gorm:"size:32;not null;index"`
	// Datetime is when the announcement is published, shown on the card.
	Datetime  time.Time `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
