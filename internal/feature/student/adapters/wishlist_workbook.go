package adapters

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"student_portal/internal/feature/student/domain/entity"
	"student_portal/internal/feature/student/usecase"
	"student_portal/internal/platform/logger"
)

// SheetName is the only sheet of the exported workbook.
const SheetName = "Wishlists"

// WorkbookHeader is the first row of the exported sheet.
var WorkbookHeader = []any{"Student Number", "Student Name", "Email", "Project ID", "Project Title"}

type wishlistWorkbook struct{}

var _ usecase.WorkbookWriter = (*wishlistWorkbook)(nil)

// NewWishlistWorkbook creates an .xlsx writer for the wishlist aggregate.
func NewWishlistWorkbook() *wishlistWorkbook {
	return &wishlistWorkbook{}
}

// Write renders one row per (student, project). A student without items gets
// a single row with empty project columns.
func (wishlistWorkbook) Write(w io.Writer, rows []entity.StudentWishlist) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close workbook")
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &WorkbookHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := 2
	for _, sw := range rows {
		s := sw.Student
		base := []any{s.Number(), s.FullName(), s.Email}
		if len(sw.Items) == 0 {
			if err := setRow(f, row, base); err != nil {
				return err
			}
			row++
			continue
		}
		for _, it := range sw.Items {
			title := ""
			if it.Project != nil {
				title = it.Project.Title
			}
			if err := setRow(f, row, append(base[:3:3], it.ProjectID, title)); err != nil {
				return err
			}
			row++
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
