// Package handler provides HTTP handlers for the project feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"student_portal/internal/feature/project/domain/entity"
	"student_portal/internal/feature/project/transport/http/dto"
	"student_portal/internal/platform/http/apierror"
	"student_portal/internal/platform/logger"
)

// ProjectUsecase defines the project operations used by the handler.
type ProjectUsecase interface {
	List(ctx context.Context) ([]entity.Project, error)
	Create(ctx context.Context, title, description string) (*entity.Project, error)
}

// ProjectHandler serves the project routes.
type ProjectHandler struct {
	uc ProjectUsecase
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(uc ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// List handles GET /projects.
func (h *ProjectHandler) List(c *gin.Context) {
	list, err := h.uc.List(c.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("failed to list projects")
		apierror.Internal(c)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResList(list))
}

// Create handles POST /admin/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectReq
	if !apierror.BindJSON(c, &req) {
		return
	}
	p, err := h.uc.Create(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create project")
		apierror.Internal(c)
		return
	}
	logger.Info().Uint("project_id", p.ID).Msg("project created")
	c.JSON(http.StatusCreated, dto.ToProjectRes(*p))
}
