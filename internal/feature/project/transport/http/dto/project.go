// Package dto defines data transfer objects for the project feature's HTTP transport layer.
package dto

import "student_portal/internal/feature/project/domain/entity"

// CreateProjectReq is the body of POST /admin/projects.
type CreateProjectReq struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
}

// ProjectRes is the public view of a project.
type ProjectRes struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ToProjectRes converts the entity.
func ToProjectRes(p entity.Project) ProjectRes {
	return ProjectRes{ID: p.ID, Title: p.Title, Description: p.Description}
}

// ToProjectResList converts a list, never returning nil.
func ToProjectResList(list []entity.Project) []ProjectRes {
	out := make([]ProjectRes, 0, len(list))
	for _, p := range list {
		out = append(out, ToProjectRes(p))
	}
	return out
}
