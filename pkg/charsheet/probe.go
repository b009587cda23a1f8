package charsheet

import (
	"fmt"

	"github.com/ukaji3/charsheet-go/pkg/charsheet/parser"
	"github.com/ukaji3/charsheet-go/pkg/charsheet/writer"
)

// Probe writes a single value into one merged range of a template and saves
// the result. It is used to check a template's merged geometry by hand.
func Probe(templatePath, sheet, rangeStr, value, outputPath string) error {
	r, err := parser.ParseRange(rangeStr)
	if err != nil {
		return err
	}

	f, err := OpenWorkbook(templatePath)
	if err != nil {
		return err
	}
	defer f.Close()

	sheet, err = ResolveSheet(f, sheet)
	if err != nil {
		return err
	}
	if err := writer.WriteMerged(f, sheet, r, value); err != nil {
		return err
	}
	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save output %s: %w", outputPath, err)
	}
	return nil
}
