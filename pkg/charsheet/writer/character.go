package writer

import (
	"fmt"
	"math"

	"github.com/ukaji3/charsheet-go/pkg/charsheet/models"
	"github.com/ukaji3/charsheet-go/pkg/charsheet/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Diagnostic texts written in place of unresolved data.
const (
	MissingSheetFormat = "(未找到技能Sheet：%s)"
	MissingSkillFormat = "技能未找到：%s"
)

// Writer writes character blocks into one sheet of the template.
type Writer struct {
	f      *excelize.File
	sheet  string
	skills *parser.SkillBook
	logger *zap.Logger
}

// New creates a Writer. A nil logger discards log output.
func New(f *excelize.File, sheet string, skills *parser.SkillBook, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		f:      f,
		sheet:  sheet,
		skills: skills,
		logger: logger,
	}
}

// ScaleAttribute returns floor(v / 5).
func ScaleAttribute(v float64) int {
	return int(math.Floor(v / 5))
}

// WriteCharacter writes ch into the column pair ending at rightCol.
// Missing skill sheets and skill ids are written as diagnostic text and
// recorded in the report; only template write failures return an error.
func (w *Writer) WriteCharacter(rightCol int, ch *models.Character) (models.CharacterReport, error) {
	leftCol := rightCol - 1
	report := models.CharacterReport{
		Name:    ch.Name,
		Agi:     ch.Agi,
		Columns: parser.ColumnPair(leftCol, rightCol),
		Pathway: ch.SheetName(),
	}

	if err := w.merged(models.NameRow, leftCol, rightCol, ch.Name); err != nil {
		return report, err
	}
	if err := w.merged(models.SeqNameRow, leftCol, rightCol, ch.SeqName); err != nil {
		return report, err
	}

	for _, attr := range models.AttributeRows {
		v := ch.Attribute(attr.Key)
		var derived interface{} = v
		if attr.Scaled {
			derived = ScaleAttribute(v)
		}
		if err := WriteCell(w.f, w.sheet, leftCol, attr.Row, derived); err != nil {
			return report, err
		}
		if err := WriteCell(w.f, w.sheet, rightCol, attr.Row, v); err != nil {
			return report, err
		}
	}

	sheet, ok, err := w.skills.Sheet(report.Pathway)
	if err != nil {
		return report, err
	}
	if !ok {
		w.logger.Warn("skill sheet not found",
			zap.String("name", ch.Name),
			zap.String("pathway", report.Pathway))
		if err := w.merged(models.LifeSkillNameRow, leftCol, rightCol, models.LifeSkillPrefix); err != nil {
			return report, err
		}
		if err := w.merged(models.LifeSkillDetailRow, leftCol, rightCol, fmt.Sprintf(MissingSheetFormat, report.Pathway)); err != nil {
			return report, err
		}
		return report, nil
	}
	report.PathwayFound = true

	lifeSkill := sheet.LifeSkill()
	if err := w.merged(models.LifeSkillNameRow, leftCol, rightCol, models.LifeSkillPrefix+lifeSkill.Label); err != nil {
		return report, err
	}
	if err := w.merged(models.LifeSkillDetailRow, leftCol, rightCol, lifeSkill.Detail); err != nil {
		return report, err
	}

	row := models.SkillBlockStartRow
	for _, sid := range ch.SkillIDs {
		id := string(sid)
		if id == "" {
			continue
		}

		skill, found := sheet.Skill(id)
		if found {
			err = w.writeSkillBlock(row, leftCol, rightCol, skill)
			report.SkillsWritten++
		} else {
			w.logger.Warn("skill not found",
				zap.String("name", ch.Name),
				zap.String("pathway", report.Pathway),
				zap.String("skill_id", id))
			err = w.writeMissingSkillBlock(row, leftCol, rightCol, id)
			report.SkillsMissing = append(report.SkillsMissing, id)
		}
		if err != nil {
			return report, err
		}
		row += models.SkillBlockHeight
	}

	return report, nil
}

func (w *Writer) writeSkillBlock(row, leftCol, rightCol int, skill models.Skill) error {
	for i, fo := range models.SkillFields {
		if err := w.merged(row+i, leftCol, rightCol, skill.Field(fo.Field)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeMissingSkillBlock(row, leftCol, rightCol int, id string) error {
	if err := w.merged(row, leftCol, rightCol, fmt.Sprintf(MissingSkillFormat, id)); err != nil {
		return err
	}
	for i := 1; i < models.SkillBlockHeight; i++ {
		if err := w.merged(row+i, leftCol, rightCol, ""); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) merged(row, leftCol, rightCol int, value interface{}) error {
	return WriteMerged(w.f, w.sheet, models.RowSpan(row, leftCol, rightCol), value)
}
