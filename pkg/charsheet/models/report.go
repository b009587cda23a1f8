package models

// CharacterReport summarizes what was written for one character.
type CharacterReport struct {
	// Source is the JSON file the record came from.
	Source string `json:"source"`
	Name string  `json:"name"`
	Agi  float64 `json:"agi"`
	// Columns is the column pair occupied, e.g. "E:F".
	Columns string `json:"columns"`
	// Pathway is the skill sheet name (pathway id without leading zeros).
	Pathway string `json:"pathway"`
	// PathwayFound reports whether the skill sheet existed.
	PathwayFound bool `json:"pathway_found"`
	// SkillsWritten counts resolved skill blocks.
	SkillsWritten int `json:"skills_written"`
	// SkillsMissing lists ids that were not found in the skill sheet.
	SkillsMissing []string `json:"skills_missing,omitempty"`
}

// RunReport is the result of one generation run.
type RunReport struct {
	// Template is the template workbook file name (no path).
	Template string `json:"template"`
	// Output is the saved output path.
	Output string `json:"output"`
	// Sheet is the template sheet that was populated.
	Sheet      string            `json:"sheet"`
	Characters []CharacterReport `json:"characters"`
}
