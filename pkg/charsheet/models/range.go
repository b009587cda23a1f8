package models

// CellRange represents the cell coordinate bounds of a rectangular range.
type CellRange struct {
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
}

// RowSpan returns a range covering columns c1..c2 of a single row.
func RowSpan(row, c1, c2 int) CellRange {
	return CellRange{C1: c1, R1: row, C2: c2, R2: row}
}
