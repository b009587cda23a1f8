package models

// Skill holds the resolved text of one six-row skill block.
type Skill struct {
	// ID is the identifier looked up in the skill sheet.
	ID       string `json:"id"`
	Name     string `json:"name"`
	Effect   string `json:"effect"`
	Cost     string `json:"cost"`
	Range    string `json:"range"`
	Duration string `json:"duration"`
	Judgment string `json:"judgment"`
}

// Field returns the text of the named skill field.
func (s Skill) Field(f SkillField) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEffect:
		return s.Effect
	case FieldCost:
		return s.Cost
	case FieldRange:
		return s.Range
	case FieldDuration:
		return s.Duration
	case FieldJudgment:
		return s.Judgment
	}
	return ""
}

// SetField stores text into the named skill field.
func (s *Skill) SetField(f SkillField, v string) {
	switch f {
	case FieldName:
		s.Name = v
	case FieldEffect:
		s.Effect = v
	case FieldCost:
		s.Cost = v
	case FieldRange:
		s.Range = v
	case FieldDuration:
		s.Duration = v
	case FieldJudgment:
		s.Judgment = v
	}
}

// LifeSkill is the two-row life skill summary of a pathway.
type LifeSkill struct {
	// Label is the cleaned life skill name, without the "生活技能：" prefix.
	Label string `json:"label"`
	// Detail is the descriptive text, trimmed.
	Detail string `json:"detail"`
}
