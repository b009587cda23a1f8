// Package writer populates the character sheet template.
package writer

import (
	"fmt"

	"github.com/ukaji3/charsheet-go/pkg/charsheet/models"
	"github.com/ukaji3/charsheet-go/pkg/charsheet/parser"
	"github.com/xuri/excelize/v2"
)

// WriteError represents a failed write into the template.
type WriteError struct {
	Sheet string
	Range string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error in sheet %q (%s): %v", e.Sheet, e.Range, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteMerged stores value in the top-left cell of r and leaves r merged
// as one cell. The range does not have to be merged beforehand.
func WriteMerged(f *excelize.File, sheet string, r models.CellRange, value interface{}) error {
	topLeft, bottomRight, err := parser.RangeCells(r)
	if err != nil {
		return &WriteError{Sheet: sheet, Range: parser.FormatRange(r), Err: err}
	}

	// Unmerging a range that is not merged is not an error.
	_ = f.UnmergeCell(sheet, topLeft, bottomRight)

	if err := f.SetCellValue(sheet, topLeft, value); err != nil {
		return &WriteError{Sheet: sheet, Range: topLeft + ":" + bottomRight, Err: err}
	}
	if topLeft == bottomRight {
		return nil
	}
	if err := f.MergeCell(sheet, topLeft, bottomRight); err != nil {
		return &WriteError{Sheet: sheet, Range: topLeft + ":" + bottomRight, Err: err}
	}
	return nil
}

// WriteCell stores value into a single cell.
func WriteCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return &WriteError{Sheet: sheet, Range: fmt.Sprintf("R%dC%d", row, col), Err: err}
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return &WriteError{Sheet: sheet, Range: cell, Err: err}
	}
	return nil
}
