package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func resetFlags(t *testing.T) {
	t.Helper()
	configPath = filepath.Join(t.TempDir(), "config.toml")
	inputDir, templatePath, skillsPath, outputPath = "", "", "", ""
	sheetName, reportPath = "", ""
	startColumn = 0
	pretty, verbose, quiet = false, false, false
	logger = zap.NewNop()
}

func newWorkbook(t *testing.T, path, sheet string, cells map[string]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	require.NoError(t, f.SaveAs(path))
}

func testCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestRunGeneratesWorkbook(t *testing.T) {
	resetFlags(t)
	ws := t.TempDir()

	inputDir = filepath.Join(ws, "input_jsons")
	require.NoError(t, os.Mkdir(inputDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "a.json"), []byte(`{"name":"甲","agi":5,"pathwayId":"7"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "b.json"), []byte(`{"name":"乙","agi":9,"pathwayId":"7"}`), 0644))

	templatePath = filepath.Join(ws, "成品.xlsx")
	newWorkbook(t, templatePath, "Sheet1", nil)
	skillsPath = filepath.Join(ws, "skills.xlsx")
	newWorkbook(t, skillsPath, "7", map[string]interface{}{"A3": "生活技能：潜水"})
	outputPath = filepath.Join(ws, "成品输出.xlsx")
	reportPath = filepath.Join(ws, "report.json")

	cmd, out := testCmd()
	require.NoError(t, run(cmd, nil))

	assert.Contains(t, out.String(), "检测到 2 个角色")
	assert.Contains(t, out.String(), "✅ 成品生成完成: "+outputPath)

	f, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	defer f.Close()
	name, err := f.GetCellValue("Sheet1", "E1")
	require.NoError(t, err)
	assert.Equal(t, "乙", name)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Len(t, report["characters"], 2)
}

func TestRunNoInputs(t *testing.T) {
	resetFlags(t)
	ws := t.TempDir()
	inputDir = ws
	outputPath = filepath.Join(ws, "out.xlsx")

	cmd, out := testCmd()
	require.NoError(t, run(cmd, nil))

	assert.Contains(t, out.String(), "没有找到 JSON 文件")
	_, err := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRunMissingTemplate(t *testing.T) {
	resetFlags(t)
	ws := t.TempDir()
	inputDir = ws
	require.NoError(t, os.WriteFile(filepath.Join(ws, "a.json"), []byte(`{}`), 0644))
	templatePath = filepath.Join(ws, "missing.xlsx")
	skillsPath = filepath.Join(ws, "missing-skills.xlsx")
	outputPath = filepath.Join(ws, "out.xlsx")

	cmd, _ := testCmd()
	err := run(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.xlsx")
}

func TestRunProbe(t *testing.T) {
	resetFlags(t)
	ws := t.TempDir()
	tmpl := filepath.Join(ws, "成品.xlsx")
	newWorkbook(t, tmpl, "Sheet1", nil)

	cmd, out := testCmd()
	require.NoError(t, runProbe(cmd, []string{tmpl, "E1:F1", "史蒂芬"}))
	assert.Contains(t, out.String(), "E1:F1 = '史蒂芬'")

	f, err := excelize.OpenFile(filepath.Join(ws, "成品测试输出.xlsx"))
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Sheet1", "E1")
	require.NoError(t, err)
	assert.Equal(t, "史蒂芬", v)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "input-dir", "template", "skills", "output", "start-column", "report", "pretty"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("sheet"))

	probe, _, err := cmd.Find([]string{"probe"})
	require.NoError(t, err)
	assert.Equal(t, "probe", probe.Name())
}
