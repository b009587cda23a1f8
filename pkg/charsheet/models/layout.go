package models

// Row bands and columns of the character sheet template and the skill workbook.
const (
	NameRow    = 1
	SeqNameRow = 2

	LifeSkillNameRow   = 15
	LifeSkillDetailRow = 16

	SkillBlockStartRow = 17
	SkillBlockHeight   = 6

	// DefaultStartColumn is the right column of the first character (F).
	DefaultStartColumn = 6
	// ColumnStride is the number of columns each character occupies.
	ColumnStride = 2

	// SkillColumn is the skill sheet column holding ids and skill text (B).
	SkillColumn = 2

	LifeSkillLabelCell  = "A3"
	LifeSkillDetailCell = "B3"

	// LifeSkillPrefix prefixes the life skill label in the output.
	LifeSkillPrefix = "生活技能："
)

// AttributeRow maps an attribute key to its template row.
type AttributeRow struct {
	Key string
	Row int
	// Scaled attributes have their left column divided by 5 (floored).
	Scaled bool
}

// AttributeRows lists the eight attributes in template order.
var AttributeRows = []AttributeRow{
	{Key: "hp", Row: 4},
	{Key: "me", Row: 5},
	{Key: "str", Row: 6, Scaled: true},
	{Key: "agi", Row: 7, Scaled: true},
	{Key: "wil", Row: 8, Scaled: true},
	{Key: "obs", Row: 9, Scaled: true},
	{Key: "wis", Row: 10, Scaled: true},
	{Key: "cha", Row: 11, Scaled: true},
}

// SkillField identifies one row of a skill block.
type SkillField int

const (
	FieldName SkillField = iota
	FieldEffect
	FieldCost
	FieldRange
	FieldDuration
	FieldJudgment
)

// SkillFieldOffset pairs a block field with its row offset below the skill's anchor row.
type SkillFieldOffset struct {
	Field  SkillField
	Offset int
}

// SkillFields lists the block rows in output order with their anchor offsets.
var SkillFields = []SkillFieldOffset{
	{Field: FieldName, Offset: 1},
	{Field: FieldEffect, Offset: 5},
	{Field: FieldCost, Offset: 7},
	{Field: FieldRange, Offset: 8},
	{Field: FieldDuration, Offset: 10},
	{Field: FieldJudgment, Offset: 6},
}
