// Package dto defines data transfer objects for the wishlist feature's HTTP transport layer.
package dto

import (
	projectdto "student_portal/internal/feature/project/transport/http/dto"
	"student_portal/internal/feature/wishlist/domain/entity"
)

// AddWishlistReq is the body of POST /student/:id/wishlist.
type AddWishlistReq struct {
	ProjectID uint `json:"project_id" binding:"required"`
}

// WishlistItemRes is a wishlist item with its project resolved.
type WishlistItemRes struct {
	ID        uint                   `json:"id"`
	StudentID uint                   `json:"student_id"`
	ProjectID uint                   `json:"project_id"`
	Project   *projectdto.ProjectRes `json:"project"`
}

// ToWishlistItemRes converts the entity.
func ToWishlistItemRes(it entity.WishlistItem) WishlistItemRes {
	res := WishlistItemRes{ID: it.ID, StudentID: it.StudentID, ProjectID: it.ProjectID}
	if it.Project != nil {
		p := projectdto.ToProjectRes(*it.Project)
		res.Project = &p
	}
	return res
}

// ToWishlistItemResList converts a list, never returning nil.
func ToWishlistItemResList(items []entity.WishlistItem) []WishlistItemRes {
	out := make([]WishlistItemRes, 0, len(items))
	for _, it := range items {
		out = append(out, ToWishlistItemRes(it))
	}
	return out
}
