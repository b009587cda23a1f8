package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/charsheet-go/pkg/charsheet/models"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected models.CellRange
	}{
		{"E1:F1", models.CellRange{C1: 5, R1: 1, C2: 6, R2: 1}},
		{"$E$15:$F$16", models.CellRange{C1: 5, R1: 15, C2: 6, R2: 16}},
		{"F2:E1", models.CellRange{C1: 5, R1: 1, C2: 6, R2: 2}},
		{"B3", models.CellRange{C1: 2, R1: 3, C2: 2, R2: 3}},
	}

	for _, tt := range tests {
		got, err := ParseRange(tt.input)
		require.NoError(t, err, "ParseRange(%q)", tt.input)
		assert.Equal(t, tt.expected, got, "ParseRange(%q)", tt.input)
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, input := range []string{"", "A1:B2:C3", "not a cell", "A0:B1"} {
		_, err := ParseRange(input)
		assert.Error(t, err, "ParseRange(%q)", input)
	}
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "E17:F17", FormatRange(models.RowSpan(17, 5, 6)))
	assert.Equal(t, "AA1:AB1", FormatRange(models.RowSpan(1, 27, 28)))
}

func TestColumnPair(t *testing.T) {
	assert.Equal(t, "E:F", ColumnPair(5, 6))
	assert.Equal(t, "G:H", ColumnPair(7, 8))
	assert.Equal(t, "Z:AA", ColumnPair(26, 27))
}
