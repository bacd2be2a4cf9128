// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/task-cli/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Working directory holding .task-cli.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/task-cli)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (default <- global <- project).
// A non-empty TASK_CLI_FILE environment variable overrides the store path.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	for _, path := range l.paths() {
		fc, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		base = mergeConfig(base, fc)
	}

	if p := os.Getenv(domain.StoreFileEnv); p != "" {
		base.Store.Path = p
	}

	return base, nil
}

// paths returns the config file paths in merge order.
func (l *Loader) paths() []string {
	var paths []string
	if l.globalConfDir != "" {
		paths = append(paths, filepath.Join(l.globalConfDir, domain.ConfigFileName))
	}
	if l.projectDir != "" {
		paths = append(paths, domain.ProjectConfigPath(l.projectDir))
	}
	return paths
}

// fileConfig is one parsed config file.
// Pointer fields distinguish "unset" from an explicit false.
type fileConfig struct {
	format   domain.OutputFormat
	color    domain.ColorMode
	lock     *bool
	validate *bool
	path     string
	level    string
	logFile  string
	warnings []string
}

// loadFile loads a configuration from a file.
func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return convertRaw(raw), nil
}

// convertRaw converts the raw map to a fileConfig and collects warnings.
func convertRaw(raw map[string]any) *fileConfig {
	res := &fileConfig{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "store":
			for k, v := range m {
				switch k {
				case "path":
					if s, ok := v.(string); ok {
						res.path = s
					} else {
						warnings = append(warnings, typeWarning("store", k, "a string"))
					}
				case "lock":
					if b, ok := v.(bool); ok {
						res.lock = &b
					} else {
						warnings = append(warnings, typeWarning("store", k, "a boolean"))
					}
				case "validate":
					if b, ok := v.(bool); ok {
						res.validate = &b
					} else {
						warnings = append(warnings, typeWarning("store", k, "a boolean"))
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					s, ok := v.(string)
					if !ok || !validLevel(s) {
						warnings = append(warnings, typeWarning("log", k, "one of debug, info, warn, error"))
						continue
					}
					res.level = s
				case "file":
					if s, ok := v.(string); ok {
						res.logFile = s
					} else {
						warnings = append(warnings, typeWarning("log", k, "a string"))
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "output":
			for k, v := range m {
				switch k {
				case "format":
					s, _ := v.(string)
					f, err := domain.ParseOutputFormat(s)
					if err != nil {
						warnings = append(warnings, typeWarning("output", k, "one of json, yaml, table"))
						continue
					}
					res.format = f
				case "color":
					s, _ := v.(string)
					c := domain.ColorMode(s)
					if c != domain.ColorAuto && c != domain.ColorAlways && c != domain.ColorNever {
						warnings = append(warnings, typeWarning("output", k, "one of auto, always, never"))
						continue
					}
					res.color = c
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [output]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.warnings = warnings
	return res
}

func typeWarning(section, key, want string) string {
	return fmt.Sprintf("invalid value for %s.%s: must be %s", section, key, want)
}

func validLevel(s string) bool {
	switch s {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// mergeConfig merges a file config into base, with the file taking precedence.
func mergeConfig(base *domain.Config, override *fileConfig) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.warnings...)

	if override.path != "" {
		result.Store.Path = override.path
	}
	if override.lock != nil {
		result.Store.Lock = *override.lock
	}
	if override.validate != nil {
		result.Store.Validate = *override.validate
	}
	if override.level != "" {
		result.Log.Level = override.level
	}
	if override.logFile != "" {
		result.Log.File = override.logFile
	}
	if override.format != "" {
		result.Output.Format = override.format
	}
	if override.color != "" {
		result.Output.Color = override.color
	}

	return &result
}
