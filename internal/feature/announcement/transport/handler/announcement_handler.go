// Package handler provides HTTP handlers for the announcement feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"student_portal/internal/feature/announcement/domain/entity"
	"student_portal/internal/feature/announcement/transport/http/dto"
	"student_portal/internal/feature/announcement/usecase"
	"student_portal/internal/platform/http/apierror"
	"student_portal/internal/platform/logger"
)

// AnnouncementUsecase defines the announcement operations used by the handler.
type AnnouncementUsecase interface {
	List(ctx context.Context) ([]entity.Announcement, error)
	ListByDepartment(ctx context.Context, department string) ([]entity.Announcement, error)
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Announcement, error)
}

// AnnouncementHandler serves the announcement routes.
type AnnouncementHandler struct {
	uc AnnouncementUsecase
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(uc AnnouncementUsecase) *AnnouncementHandler {
	return &AnnouncementHandler{uc: uc}
}

// List handles GET /announcements.
func (h *AnnouncementHandler) List(c *gin.Context) {
	list, err := h.uc.List(c.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("failed to list announcements")
		apierror.Internal(c)
		return
	}
	c.JSON(http.StatusOK, dto.ToAnnouncementResList(list))
}

// ListByDepartment handles GET /announcements/:department.
// An unknown department is a validation error (422).
func (h *AnnouncementHandler) ListByDepartment(c *gin.Context) {
	department := c.Param("department")
	list, err := h.uc.ListByDepartment(c.Request.Context(), department)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDepartment) {
			apierror.Fields(c, apierror.MsgInvalidData, apierror.FieldError("department", "The selected department is invalid."))
			return
		}
		logger.Error().Err(err).Str("department", department).Msg("failed to list announcements")
		apierror.Internal(c)
		return
	}
	c.JSON(http.StatusOK, dto.ToAnnouncementResList(list))
}

// Create handles POST /admin/announcements.
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.CreateAnnouncementReq
	if !apierror.BindJSON(c, &req) {
		return
	}
	dt, err := dto.ParseDatetime(req.Datetime)
	if err != nil {
		apierror.Fields(c, apierror.MsgInvalidData, apierror.FieldError("datetime", "The datetime field must be a valid date."))
		return
	}

	a, err := h.uc.Create(c.Request.Context(), usecase.CreateInput{
		Title:    req.Title,
		Content:  req.Content,
		Display:  entity.Department(req.Display),
		Datetime: dt,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDepartment) {
			apierror.Fields(c, apierror.MsgInvalidData, apierror.FieldError("display", "The selected display is invalid."))
			return
		}
		logger.Error().Err(err).Msg("failed to create announcement")
		apierror.Internal(c)
		return
	}
	logger.Info().Uint("announcement_id", a.ID).Str("display", string(a.Display)).Msg("announcement created")
	c.JSON(http.StatusCreated, dto.ToAnnouncementRes(*a))
}
