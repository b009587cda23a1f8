package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/charsheet-go/pkg/charsheet/models"
	"github.com/xuri/excelize/v2"
)

// newSkillWorkbook builds a pathway sheet "7" with a life skill and two skills.
func newSkillWorkbook(t *testing.T) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "7"))

	cells := map[string]interface{}{
		"A3":  "生活技能：【潜水】",
		"B3":  "  可在水下自由行动  ",
		"B20": 101,
		"B21": "技能名称：【火球】",
		"B25": "效果：造成火焰伤害",
		"B26": "判定：敏捷",
		"B27": "ME消耗：3",
		"B28": "范围：10米",
		"B30": "持续时间：1回合",
		"B40": " S-2 ",
		"B41": "(冰墙)",
		"B45": "无冒号效果",
	}
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue("7", cell, v))
	}
	return f
}

func TestFindSkillRow(t *testing.T) {
	book := NewSkillBook(newSkillWorkbook(t))
	defer book.Close()

	sheet, ok, err := book.Sheet("7")
	require.NoError(t, err)
	require.True(t, ok)

	row, found := sheet.FindSkillRow("101")
	assert.True(t, found)
	assert.Equal(t, 20, row)

	row, found = sheet.FindSkillRow(" S-2")
	assert.True(t, found)
	assert.Equal(t, 40, row)

	_, found = sheet.FindSkillRow("999")
	assert.False(t, found)
}

func TestSkillBookMissingSheet(t *testing.T) {
	book := NewSkillBook(newSkillWorkbook(t))
	defer book.Close()

	sheet, ok, err := book.Sheet("07")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, sheet)
}

func TestSkillSheetLifeSkill(t *testing.T) {
	book := NewSkillBook(newSkillWorkbook(t))
	defer book.Close()

	sheet, _, err := book.Sheet("7")
	require.NoError(t, err)

	assert.Equal(t, models.LifeSkill{Label: "潜水", Detail: "可在水下自由行动"}, sheet.LifeSkill())
}

func TestSkillSheetSkill(t *testing.T) {
	book := NewSkillBook(newSkillWorkbook(t))
	defer book.Close()

	sheet, _, err := book.Sheet("7")
	require.NoError(t, err)

	skill, found := sheet.Skill("101")
	require.True(t, found)
	assert.Equal(t, models.Skill{
		ID:       "101",
		Name:     "火球",
		Effect:   "造成火焰伤害",
		Cost:     "3",
		Range:    "10米",
		Duration: "1回合",
		Judgment: "敏捷",
	}, skill)

	skill, found = sheet.Skill("S-2")
	require.True(t, found)
	assert.Equal(t, "冰墙", skill.Name)
	assert.Equal(t, "无冒号效果", skill.Effect)
	assert.Equal(t, "", skill.Cost)

	_, found = sheet.Skill("404")
	assert.False(t, found)
}

func TestSkillSheetFormulaWithoutCachedValue(t *testing.T) {
	f := newSkillWorkbook(t)
	require.NoError(t, f.SetCellFormula("7", "C1", "1+2"))

	book := NewSkillBook(f)
	defer book.Close()

	sheet, _, err := book.Sheet("7")
	require.NoError(t, err)
	assert.Equal(t, "3", sheet.Cell(3, 1))
	assert.Equal(t, "", sheet.Cell(3, 2))
	assert.Equal(t, "", sheet.Cell(50, 500))
}

func TestOpenSkillBook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.xlsx")
	f := newSkillWorkbook(t)
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	book, err := OpenSkillBook(path)
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{"7"}, book.SheetNames())

	sheet, ok, err := book.Sheet("7")
	require.NoError(t, err)
	require.True(t, ok)
	row, found := sheet.FindSkillRow("101")
	assert.True(t, found)
	assert.Equal(t, 20, row)
}
