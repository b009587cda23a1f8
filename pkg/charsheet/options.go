// Package charsheet fills a character sheet template from JSON character records.
package charsheet

import (
	"github.com/ukaji3/charsheet-go/pkg/charsheet/models"
	"go.uber.org/zap"
)

// DefaultOutputName is the output file name used when none is configured.
const DefaultOutputName = "成品输出.xlsx"

// Options configures a generation run.
type Options struct {
	// TemplatePath is the character sheet template workbook.
	TemplatePath string
	// SkillsPath is the skill workbook with one sheet per pathway.
	SkillsPath string
	// OutputPath is where the populated workbook is saved.
	OutputPath string
	// Inputs lists the JSON character files, one record each.
	Inputs []string
	// Sheet names the template sheet to populate.
	// If empty, the workbook's active sheet is used.
	Sheet string
	// StartColumn is the right column of the first character block.
	// If zero, models.DefaultStartColumn is used.
	StartColumn int
	// Logger receives progress and diagnostics. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		OutputPath:  DefaultOutputName,
		StartColumn: models.DefaultStartColumn,
	}
}

func (o Options) startColumn() int {
	if o.StartColumn == 0 {
		return models.DefaultStartColumn
	}
	return o.StartColumn
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
