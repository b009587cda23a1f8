package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ukaji3/charsheet-go/pkg/charsheet/models"
	"github.com/xuri/excelize/v2"
)

// SkillBook is a read-only view of the skill workbook. Each sheet is named
// after a pathway id and is loaded on first use.
type SkillBook struct {
	f      *excelize.File
	sheets map[string]*SkillSheet
}

// OpenSkillBook opens the skill workbook at path.
func OpenSkillBook(path string) (*SkillBook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return NewSkillBook(f), nil
}

// NewSkillBook wraps an already opened workbook.
func NewSkillBook(f *excelize.File) *SkillBook {
	return &SkillBook{
		f:      f,
		sheets: make(map[string]*SkillSheet),
	}
}

// Close closes the underlying workbook.
func (b *SkillBook) Close() error {
	return b.f.Close()
}

// SheetNames returns the sheet names in workbook order.
func (b *SkillBook) SheetNames() []string {
	return b.f.GetSheetList()
}

// Sheet returns the sheet with the given name. The boolean is false when
// no such sheet exists.
func (b *SkillBook) Sheet(name string) (*SkillSheet, bool, error) {
	if sheet, ok := b.sheets[name]; ok {
		return sheet, true, nil
	}
	if !slices.Contains(b.f.GetSheetList(), name) {
		return nil, false, nil
	}

	rows, err := b.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, false, fmt.Errorf("read skill sheet %q: %w", name, err)
	}

	sheet := &SkillSheet{
		Name: name,
		f:    b.f,
		rows: rows,
	}
	b.sheets[name] = sheet
	return sheet, true, nil
}

// SkillSheet holds the cell values of one pathway sheet.
type SkillSheet struct {
	Name string

	f    *excelize.File
	rows [][]string
}

// Cell returns the literal value at (col, row), both 1-based. A formula
// cell without a cached result is evaluated.
func (s *SkillSheet) Cell(col, row int) string {
	if v := s.cached(col, row); v != "" {
		return v
	}
	if s.f == nil {
		return ""
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	formula, err := s.f.GetCellFormula(s.Name, cell)
	if err != nil || formula == "" {
		return ""
	}
	v, err := s.f.CalcCellValue(s.Name, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return ""
	}
	return v
}

func (s *SkillSheet) cached(col, row int) string {
	if row < 1 || row > len(s.rows) {
		return ""
	}
	cells := s.rows[row-1]
	if col < 1 || col > len(cells) {
		return ""
	}
	return cells[col-1]
}

// CellByName returns the literal value of a cell such as "A3".
func (s *SkillSheet) CellByName(name string) string {
	col, row, err := excelize.CellNameToCoordinates(name)
	if err != nil {
		return ""
	}
	return s.Cell(col, row)
}

// FindSkillRow scans the skill column from the first row and returns the
// first row whose trimmed value equals the trimmed id.
func (s *SkillSheet) FindSkillRow(id string) (int, bool) {
	target := strings.TrimSpace(id)
	for r := 1; r <= len(s.rows); r++ {
		v := s.cached(models.SkillColumn, r)
		if v == "" {
			continue
		}
		if strings.TrimSpace(v) == target {
			return r, true
		}
	}
	return 0, false
}

// LifeSkill reads the life skill label and detail anchors of the sheet.
func (s *SkillSheet) LifeSkill() models.LifeSkill {
	return models.LifeSkill{
		Label:  StripBrackets(AfterColon(s.CellByName(models.LifeSkillLabelCell))),
		Detail: strings.TrimSpace(s.CellByName(models.LifeSkillDetailCell)),
	}
}

// Skill resolves the six block fields of the skill with the given id.
// The boolean is false when the id is not in the sheet.
func (s *SkillSheet) Skill(id string) (models.Skill, bool) {
	anchor, ok := s.FindSkillRow(id)
	if !ok {
		return models.Skill{ID: id}, false
	}
	return s.SkillAt(id, anchor), true
}

// SkillAt reads the block fields relative to a known anchor row.
func (s *SkillSheet) SkillAt(id string, anchor int) models.Skill {
	skill := models.Skill{ID: id}
	for _, fo := range models.SkillFields {
		v := AfterColon(s.Cell(models.SkillColumn, anchor+fo.Offset))
		if fo.Field == models.FieldName {
			v = StripBrackets(v)
		}
		skill.SetField(fo.Field, v)
	}
	return skill
}
