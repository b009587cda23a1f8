// Package main provides the CLI entry point for charsheet-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/charsheet-go/pkg/charsheet"
	"github.com/ukaji3/charsheet-go/pkg/charsheet/config"
	"github.com/ukaji3/charsheet-go/pkg/charsheet/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath   string
	inputDir     string
	templatePath string
	skillsPath   string
	outputPath   string
	sheetName    string
	startColumn  int
	reportPath   string
	pretty       bool
	verbose      bool
	quiet        bool

	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "charsheet",
		Short: "Fill the character sheet template from JSON records",
		Long: `charsheet reads every .json character record from the input directory,
sorts them by agi (highest first) and writes each one into a two-column
block of the template workbook, resolving skill text from the skill workbook.

Without flags, paths are taken relative to the executable:
  input_jsons/   character records
  成品.xlsx       template
  成品输出.xlsx   output`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: initLogger,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: run,
	}

	addRootFlags(rootCmd.Flags())
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Template sheet to populate (default: active sheet)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log warnings and errors")

	rootCmd.AddCommand(newProbeCmd())
	return rootCmd
}

func addRootFlags(fs *pflag.FlagSet) {
	fs.StringVar(&configPath, "config", "", "Config file (default: config.toml next to the executable)")
	fs.StringVar(&inputDir, "input-dir", "", "Directory of character .json files")
	fs.StringVar(&templatePath, "template", "", "Template workbook")
	fs.StringVar(&skillsPath, "skills", "", "Skill workbook")
	fs.StringVarP(&outputPath, "output", "o", "", "Output workbook")
	fs.IntVar(&startColumn, "start-column", 0, "Right column of the first character block (6 = F)")
	fs.StringVar(&reportPath, "report", "", "Write a JSON run report to this path")
	fs.BoolVar(&pretty, "pretty", false, "Pretty-print the JSON run report")
}

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe <template.xlsx> <range> <value>",
		Short: "Write one value into a merged range of a template",
		Example: `  charsheet probe 成品.xlsx E1:F1 史蒂芬
  charsheet probe 成品.xlsx E1:F1 史蒂芬 -o out.xlsx`,
		Args: cobra.ExactArgs(3),
		RunE: runProbe,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook (default: <template>测试输出.xlsx)")
	return cmd
}

func initLogger(cmd *cobra.Command, args []string) error {
	level := "info"
	if cfg, err := loadConfig(); err == nil && cfg.Log.Level != "" {
		level = cfg.Log.Level
	}
	switch {
	case verbose:
		level = "debug"
	case quiet:
		level = "warn"
	}

	var err error
	logger, err = newLogger(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cfg := zap.Config{
		Level:             lvl,
		Encoding:          "console",
		EncoderConfig:     encoderCfg,
		DisableCaller:     true,
		DisableStacktrace: true,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	return cfg.Build()
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	base, err := config.ExeDir()
	if err != nil {
		base = "."
	}

	path := configPath
	if path == "" {
		path = filepath.Join(base, config.FileName)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.Resolve(base)

	if inputDir != "" {
		cfg.Paths.InputDir = inputDir
	}
	if templatePath != "" {
		cfg.Paths.Template = templatePath
	}
	if skillsPath != "" {
		cfg.Paths.Skills = skillsPath
	}
	if outputPath != "" {
		cfg.Paths.Output = outputPath
	}
	if reportPath != "" {
		cfg.Paths.Report = reportPath
	}
	if sheetName != "" {
		cfg.Layout.Sheet = sheetName
	}
	if startColumn != 0 {
		cfg.Layout.StartColumn = startColumn
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	out := cmd.OutOrStdout()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	inputs, err := charsheet.DiscoverInputs(cfg.Paths.InputDir)
	if err != nil {
		return fmt.Errorf("discover inputs: %w", err)
	}
	if len(inputs) == 0 {
		fmt.Fprintln(out, "⚠️ 没有找到 JSON 文件")
		return nil
	}

	fmt.Fprintf(out, "检测到 %d 个角色，将生成 Excel...\n", len(inputs))

	opts := charsheet.DefaultOptions()
	opts.TemplatePath = cfg.Paths.Template
	opts.SkillsPath = cfg.Paths.Skills
	opts.OutputPath = cfg.Paths.Output
	opts.Inputs = inputs
	opts.Sheet = cfg.Layout.Sheet
	opts.StartColumn = cfg.Layout.StartColumn
	opts.Logger = logger

	report, err := charsheet.Generate(opts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if cfg.Paths.Report != "" {
		jsonData, err := output.ToJSON(report, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(cfg.Paths.Report, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	fmt.Fprintf(out, "✅ 成品生成完成: %s\n", report.Output)
	return nil
}

func runProbe(cmd *cobra.Command, args []string) error {
	template, rangeStr, value := args[0], args[1], args[2]

	out := outputPath
	if out == "" {
		ext := filepath.Ext(template)
		out = strings.TrimSuffix(template, ext) + "测试输出" + ext
	}

	if err := charsheet.Probe(template, sheetName, rangeStr, value, out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ 已成功写入 %s = '%s'\n", rangeStr, value)
	return nil
}
