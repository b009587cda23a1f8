package charsheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/charsheet-go/pkg/charsheet/models"
	"github.com/ukaji3/charsheet-go/pkg/charsheet/parser"
	"github.com/ukaji3/charsheet-go/pkg/charsheet/writer"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Generate loads every input record, writes them into the template in
// descending agi order and saves the result to opts.OutputPath. Nothing is
// saved if any step fails.
func Generate(opts Options) (*models.RunReport, error) {
	logger := opts.logger()
	startCol := opts.startColumn()
	if startCol < 2 {
		return nil, fmt.Errorf("invalid start column %d: must be at least 2", startCol)
	}
	if len(opts.Inputs) == 0 {
		return nil, ErrNoInputs
	}
	if opts.OutputPath == "" {
		opts.OutputPath = DefaultOutputName
	}

	tmpl, err := OpenWorkbook(opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	defer tmpl.Close()

	skillFile, err := OpenWorkbook(opts.SkillsPath)
	if err != nil {
		return nil, err
	}
	skills := parser.NewSkillBook(skillFile)
	defer skills.Close()

	entries, err := LoadCharacters(opts.Inputs)
	if err != nil {
		return nil, err
	}
	SortByAgi(entries)

	sheet, err := ResolveSheet(tmpl, opts.Sheet)
	if err != nil {
		return nil, err
	}

	report := &models.RunReport{
		Template: filepath.Base(opts.TemplatePath),
		Output:   opts.OutputPath,
		Sheet:    sheet,
	}

	w := writer.New(tmpl, sheet, skills, logger)
	for i, e := range entries {
		rightCol := startCol + i*models.ColumnStride
		name := e.Record.Name
		if name == "" {
			name = "未知"
		}
		logger.Info("写入角色",
			zap.String("name", name),
			zap.Float64("agi", e.Record.Agi),
			zap.String("columns", parser.ColumnPair(rightCol-1, rightCol)))

		cr, err := w.WriteCharacter(rightCol, e.Record)
		if err != nil {
			return nil, fmt.Errorf("write character %q from %s: %w", name, e.Path, err)
		}
		cr.Source = e.Path
		report.Characters = append(report.Characters, cr)
	}

	if err := tmpl.SaveAs(opts.OutputPath); err != nil {
		return nil, fmt.Errorf("save output %s: %w", opts.OutputPath, err)
	}
	logger.Info("成品生成完成", zap.String("output", opts.OutputPath), zap.Int("characters", len(entries)))

	return report, nil
}

// OpenWorkbook opens an xlsx workbook, distinguishing a missing file from
// an unreadable one.
func OpenWorkbook(path string) (*excelize.File, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrFileNotFound)
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
	}
	return f, nil
}

// ResolveSheet returns name if it exists, or the active sheet when name is empty.
func ResolveSheet(f *excelize.File, name string) (string, error) {
	if name == "" {
		return f.GetSheetName(f.GetActiveSheetIndex()), nil
	}
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return "", err
	}
	if idx < 0 {
		return "", fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}
	return name, nil
}
