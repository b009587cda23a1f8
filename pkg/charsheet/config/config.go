// Package config loads charsheet settings from config.toml and the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/ukaji3/charsheet-go/pkg/charsheet/models"
)

// FileName is the config file looked up next to the executable.
const FileName = "config.toml"

// Config holds all settings of a run.
type Config struct {
	Paths  PathsConfig  `toml:"paths"`
	Layout LayoutConfig `toml:"layout"`
	Log    LogConfig    `toml:"log"`
}

// PathsConfig locates inputs and outputs. Relative paths are resolved
// against the base directory.
type PathsConfig struct {
	InputDir string `toml:"input_dir"`
	Template string `toml:"template"`
	Skills   string `toml:"skills"`
	Output   string `toml:"output"`
	// Report is an optional JSON run report path.
	Report string `toml:"report"`
}

// LayoutConfig selects where characters are written.
type LayoutConfig struct {
	Sheet       string `toml:"sheet"`
	StartColumn int    `toml:"start_column"`
}

// LogConfig controls console logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			InputDir: "input_jsons",
			Template: "成品.xlsx",
			Skills:   "《奇点之后》车卡序列资料正式版V0.6.6).xlsx",
			Output:   "成品输出.xlsx",
		},
		Layout: LayoutConfig{
			StartColumn: models.DefaultStartColumn,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ExeDir returns the directory of the running executable.
func ExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// Load reads the config file at path over the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		// use defaults
	default:
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides settings from CHARSHEET_* variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("CHARSHEET_INPUT_DIR"); v != "" {
		c.Paths.InputDir = v
	}
	if v := os.Getenv("CHARSHEET_TEMPLATE"); v != "" {
		c.Paths.Template = v
	}
	if v := os.Getenv("CHARSHEET_SKILLS"); v != "" {
		c.Paths.Skills = v
	}
	if v := os.Getenv("CHARSHEET_OUTPUT"); v != "" {
		c.Paths.Output = v
	}
	if v := os.Getenv("CHARSHEET_SHEET"); v != "" {
		c.Layout.Sheet = v
	}
	if v := os.Getenv("CHARSHEET_START_COLUMN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Layout.StartColumn = n
		}
	}
}

// Resolve makes every relative path absolute against base.
func (c *Config) Resolve(base string) {
	c.Paths.InputDir = resolve(base, c.Paths.InputDir)
	c.Paths.Template = resolve(base, c.Paths.Template)
	c.Paths.Skills = resolve(base, c.Paths.Skills)
	c.Paths.Output = resolve(base, c.Paths.Output)
	c.Paths.Report = resolve(base, c.Paths.Report)
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
