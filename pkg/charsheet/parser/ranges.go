package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/charsheet-go/pkg/charsheet/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range string like E1:F1 or $E$1:$F$1.
// A single cell reference yields a one-cell range.
func ParseRange(rangeStr string) (models.CellRange, error) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")
	if rangeStr == "" {
		return models.CellRange{}, fmt.Errorf("empty range")
	}

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.CellRange{}, fmt.Errorf("invalid range %q", rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}

	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}

	return models.CellRange{
		C1: startCol,
		R1: startRow,
		C2: endCol,
		R2: endRow,
	}, nil
}

// RangeCells returns the top-left and bottom-right cell names of r.
func RangeCells(r models.CellRange) (topLeft, bottomRight string, err error) {
	topLeft, err = excelize.CoordinatesToCellName(r.C1, r.R1)
	if err != nil {
		return "", "", err
	}
	bottomRight, err = excelize.CoordinatesToCellName(r.C2, r.R2)
	if err != nil {
		return "", "", err
	}
	return topLeft, bottomRight, nil
}

// FormatRange renders r as E1:F1.
func FormatRange(r models.CellRange) string {
	topLeft, bottomRight, err := RangeCells(r)
	if err != nil {
		return fmt.Sprintf("R%dC%d:R%dC%d", r.R1, r.C1, r.R2, r.C2)
	}
	return topLeft + ":" + bottomRight
}

// ColumnPair renders a left/right column pair as E:F.
func ColumnPair(left, right int) string {
	l, err := excelize.ColumnNumberToName(left)
	if err != nil {
		return fmt.Sprintf("%d:%d", left, right)
	}
	r, err := excelize.ColumnNumberToName(right)
	if err != nil {
		return fmt.Sprintf("%d:%d", left, right)
	}
	return l + ":" + r
}
