// Package dto defines data transfer objects for the announcement feature's HTTP transport layer.
package dto

import (
	"fmt"
	"time"

	"student_portal/internal/feature/announcement/domain/entity"
)

// CreateAnnouncementReq is the body of POST /admin/announcements.
type CreateAnnouncementReq struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
	Display string `json:"display" binding:"required,oneof=general computer_science physics chemistry math"`
	// Datetime is optional; RFC 3339 or the HTML datetime-local form "2006-01-02T15:04".
	Datetime string `json:"datetime"`
}

// datetimeLayouts are tried in order. Layouts without a zone are read as UTC.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseDatetime parses the optional datetime field. An empty string yields the zero time.
func ParseDatetime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

// AnnouncementRes is the public view of an announcement.
type AnnouncementRes struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Display        string    `json:"display"`
	DepartmentName string    `json:"department_name"`
	Datetime       time.Time `json:"datetime"`
}

// ToAnnouncementRes converts the entity.
func ToAnnouncementRes(a entity.Announcement) AnnouncementRes {
	return AnnouncementRes{
		ID:             a.ID,
		Title:          a.Title,
		Content:        a.Content,
		Display:        string(a.Display),
		DepartmentName: a.Display.Name(),
		Datetime:       a.Datetime.UTC(),
	}
}

// ToAnnouncementResList converts a list, never returning nil.
func ToAnnouncementResList(list []entity.Announcement) []AnnouncementRes {
	out := make([]AnnouncementRes, 0, len(list))
	for _, a := range list {
		out = append(out, ToAnnouncementRes(a))
	}
	return out
}
