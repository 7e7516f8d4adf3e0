package view

import (
	"strings"
	"time"

	announcemententity "student_portal/internal/feature/announcement/domain/entity"
)

// DateLayout is the announcement card date format.
const DateLayout = "Jan 2, 2006 • 3:04 PM"

// FormatDate renders t in the card format, in loc (UTC when nil).
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}

// DepartmentName returns the display name of a slug, or "Department" when unknown.
func DepartmentName(slug string) string {
	d, err := announcemententity.ParseDepartment(slug)
	if err != nil {
		return "Department"
	}
	return d.Name()
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-3]) + "..."
}
