// Package config loads toolchain settings from a TOML or YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format of a configuration file.
type Format int

// Available formats.
const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// Tree views.
const (
	TreeText = "text"
	TreeYAML = "yaml"
	TreeDump = "dump"
)

// Config holds the settings of the toolchain.
type Config struct {
	Codegen CodegenConfig `toml:"codegen" yaml:"codegen"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

// CodegenConfig controls the compiler listing.
type CodegenConfig struct {
	// Comments toggles the "; <source>" line before each statement.
	// A pointer so an explicit false survives applyDefaults.
	Comments *bool `toml:"comments" yaml:"comments"`
}

// OutputConfig controls the CLI views.
type OutputConfig struct {
	TreeFormat string `toml:"tree_format" yaml:"tree_format"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads the configuration file at path.
// The format is detected from the extension, defaulting to TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(content, detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes content in the given format, applies defaults and validates.
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, fmt.Errorf("parse toml config: %w", err)
		}
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func (c *Config) applyDefaults() {
	if c.Codegen.Comments == nil {
		comments := true
		c.Codegen.Comments = &comments
	}
	if c.Output.TreeFormat == "" {
		c.Output.TreeFormat = TreeText
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Output.TreeFormat {
	case TreeText, TreeYAML, TreeDump:
	default:
		return fmt.Errorf("invalid output.tree_format %q, expected one of text, yaml, dump", c.Output.TreeFormat)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Comments reports whether listings carry source comments.
func (c *Config) Comments() bool {
	return c.Codegen.Comments == nil || *c.Codegen.Comments
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	lvl, _ := ParseLevel(c.Log.Level)
	return lvl
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log.level %q, expected one of debug, info, warn, error", name)
}
