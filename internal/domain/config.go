package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-"`
	Store    StoreConfig  `toml:"store"`
	Log      LogConfig    `toml:"log"`
	Output   OutputConfig `toml:"output"`
}

// StoreConfig holds settings for the task file from [store] section.
type StoreConfig struct {
	Path     string `toml:"path"`     // Task file path, relative to the working directory
	Lock     bool   `toml:"lock"`     // Take an advisory lock around each load/store
	Validate bool   `toml:"validate"` // Validate the task file against its JSON schema on load
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level"`          // Log level: debug, info, warn, error
	File  string `toml:"file,omitempty"` // Append-only log file (empty = disabled)
}

// OutputConfig holds list output settings from [output] section.
type OutputConfig struct {
	Format OutputFormat `toml:"format"` // json, yaml or table
	Color  ColorMode    `toml:"color"`  // auto, always or never
}

// OutputFormat selects how task lists are rendered.
type OutputFormat string

// Output formats.
const (
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatTable OutputFormat = "table"
)

// AllOutputFormats returns all supported output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{FormatJSON, FormatYAML, FormatTable}
}

// ParseOutputFormat parses an output format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for _, f := range AllOutputFormats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ColorMode controls styling of table output.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Default configuration values.
const (
	DefaultStoreFile = "tasks.json"
	DefaultLogLevel  = "info"
)

// Config file locations.
const (
	AppDirName            = "task-cli"       // Directory name under the XDG config home
	ConfigFileName        = "config.toml"    // Global config file name
	ProjectConfigFileName = ".task-cli.toml" // Project config file name in the working directory
	StoreFileEnv          = "TASK_CLI_FILE"  // Environment override for the task file path
)

// GlobalConfigDir returns the global config directory path.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config file path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// ProjectConfigPath returns the project config file path for a working directory.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}

// NewDefaultConfig returns a new Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path:     DefaultStoreFile,
			Lock:     true,
			Validate: true,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Output: OutputConfig{
			Format: FormatJSON,
			Color:  ColorAuto,
		},
	}
}

// RenderConfigTemplate renders the commented config template with the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
