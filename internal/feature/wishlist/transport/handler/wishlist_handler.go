// Package handler provides HTTP handlers for the wishlist feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authentity "student_portal/internal/feature/auth/domain/entity"
	"student_portal/internal/feature/auth/transport/middleware"
	"student_portal/internal/feature/wishlist/domain/entity"
	"student_portal/internal/feature/wishlist/transport/http/dto"
	"student_portal/internal/feature/wishlist/usecase"
	"student_portal/internal/platform/http/apierror"
	"student_portal/internal/platform/http/params"
	"student_portal/internal/platform/logger"
)

const (
	msgDuplicate       = "The project is already in your wishlist."
	msgProjectNotFound = "Project not found."
	msgStudentNotFound = "Student not found."
	msgItemNotFound    = "Wishlist item not found."
	msgRemoved         = "Project removed from wishlist."
)

// WishlistUsecase defines the wishlist operations used by the handler.
type WishlistUsecase interface {
	ListForStudent(ctx context.Context, caller authentity.Principal, studentID uint) ([]entity.WishlistItem, error)
	Add(ctx context.Context, caller authentity.Principal, studentID, projectID uint) (*entity.WishlistItem, error)
	Remove(ctx context.Context, caller authentity.Principal, itemID uint) error
}

// WishlistHandler serves the wishlist routes.
type WishlistHandler struct {
	uc WishlistUsecase
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(uc WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// List handles GET /student/:id/wishlist.
func (h *WishlistHandler) List(c *gin.Context) {
	caller, studentID, ok := callerAndID(c)
	if !ok {
		return
	}
	items, err := h.uc.ListForStudent(c.Request.Context(), caller, studentID)
	if err != nil {
		h.fail(c, err, "failed to list wishlist")
		return
	}
	c.JSON(http.StatusOK, dto.ToWishlistItemResList(items))
}

// Add handles POST /student/:id/wishlist.
func (h *WishlistHandler) Add(c *gin.Context) {
	caller, studentID, ok := callerAndID(c)
	if !ok {
		return
	}
	var req dto.AddWishlistReq
	if !apierror.BindJSON(c, &req) {
		return
	}
	item, err := h.uc.Add(c.Request.Context(), caller, studentID, req.ProjectID)
	if err != nil {
		h.fail(c, err, "failed to add wishlist item")
		return
	}
	logger.Info().Uint("student_id", studentID).Uint("project_id", req.ProjectID).Msg("wishlist item added")
	c.JSON(http.StatusCreated, dto.ToWishlistItemRes(*item))
}

// Remove handles DELETE /student/wishlist/:id.
func (h *WishlistHandler) Remove(c *gin.Context) {
	caller, itemID, ok := callerAndID(c)
	if !ok {
		return
	}
	if err := h.uc.Remove(c.Request.Context(), caller, itemID); err != nil {
		h.fail(c, err, "failed to remove wishlist item")
		return
	}
	c.JSON(http.StatusOK, apierror.MessageResponse{Message: msgRemoved})
}

// callerAndID reads the principal and the :id path parameter, writing the
// error response itself when either is missing.
func callerAndID(c *gin.Context) (authentity.Principal, uint, bool) {
	caller, ok := middleware.PrincipalFrom(c)
	if !ok {
		apierror.Unauthorized(c)
		return authentity.Principal{}, 0, false
	}
	id, err := params.PathID(c, "id")
	if err != nil {
		apierror.Fields(c, apierror.MsgInvalidData, apierror.FieldError("id", "The id must be a positive integer."))
		return authentity.Principal{}, 0, false
	}
	return caller, id, true
}

func (h *WishlistHandler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		apierror.Forbidden(c)
	case errors.Is(err, usecase.ErrItemNotFound):
		apierror.NotFound(c, msgItemNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		apierror.NotFound(c, msgProjectNotFound)
	case errors.Is(err, usecase.ErrStudentNotFound):
		apierror.NotFound(c, msgStudentNotFound)
	case errors.Is(err, usecase.ErrAlreadyInWishlist):
		apierror.Write(c, http.StatusConflict, msgDuplicate)
	default:
		logger.Error().Err(err).Msg(msg)
		apierror.Internal(c)
	}
}
