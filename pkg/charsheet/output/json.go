// Package output serializes run results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/charsheet-go/pkg/charsheet/models"
)

// ToJSON serializes a run report.
func ToJSON(report *models.RunReport, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// CharacterToJSON serializes the report of a single character.
func CharacterToJSON(cr *models.CharacterReport, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(cr, "", "  ")
	}
	return json.Marshal(cr)
}
