// Package handler provides HTTP handlers for the admin student directory.
package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	authentity "student_portal/internal/feature/auth/domain/entity"
	"student_portal/internal/feature/student/domain/entity"
	"student_portal/internal/feature/student/transport/http/dto"
	"student_portal/internal/feature/student/usecase"
	"student_portal/internal/platform/http/apierror"
	"student_portal/internal/platform/logger"
)

const (
	// XLSXContentType is the media type of the wishlist export.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFilename  = "student-wishlists.xlsx"
)

// DirectoryUsecase defines the directory operations used by the handler.
type DirectoryUsecase interface {
	ListAll(ctx context.Context, search, studentNumber string) ([]authentity.Student, error)
	ListAllWishlists(ctx context.Context) ([]entity.StudentWishlist, error)
	ExportWishlists(ctx context.Context, w io.Writer) error
}

// StudentHandler serves the admin student routes.
type StudentHandler struct {
	uc DirectoryUsecase
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(uc DirectoryUsecase) *StudentHandler {
	return &StudentHandler{uc: uc}
}

// List handles GET /admin/students.
func (h *StudentHandler) List(c *gin.Context) {
	var q dto.ListStudentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierror.Validation(c, err)
		return
	}
	list, err := h.uc.ListAll(c.Request.Context(), q.Search, q.StudentNumber)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStudentNumber) {
			apierror.Fields(c, apierror.MsgInvalidData, apierror.FieldError("student_number", "The student number format is invalid."))
			return
		}
		logger.Error().Err(err).Msg("failed to list students")
		apierror.Internal(c)
		return
	}
	c.JSON(http.StatusOK, dto.ToStudentResList(list))
}

// Wishlists handles GET /admin/student-wishlists.
func (h *StudentHandler) Wishlists(c *gin.Context) {
	list, err := h.uc.ListAllWishlists(c.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("failed to list student wishlists")
		apierror.Internal(c)
		return
	}
	c.JSON(http.StatusOK, dto.ToStudentWishlistResList(list))
}

// Export handles GET /admin/student-wishlists/export.
func (h *StudentHandler) Export(c *gin.Context) {
	// Buffer so a failure can still be reported as JSON.
	var buf bytes.Buffer
	if err := h.uc.ExportWishlists(c.Request.Context(), &buf); err != nil {
		logger.Error().Err(err).Msg("failed to export student wishlists")
		apierror.Internal(c)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.Data(http.StatusOK, XLSXContentType, buf.Bytes())
}
