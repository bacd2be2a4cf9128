package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/task-cli/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	projectDir    string // Working directory holding .task-cli.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/task-cli)
}

// NewManager creates a new Manager.
func NewManager(projectDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(projectDir, globalConfDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// GetInfo returns the locations of both config files and whether they exist.
func (m *Manager) GetInfo() domain.ConfigInfo {
	info := domain.ConfigInfo{
		ProjectPath: domain.ProjectConfigPath(m.projectDir),
	}
	info.ProjectExists = fileExists(info.ProjectPath)

	if m.globalConfDir != "" {
		info.GlobalPath = filepath.Join(m.globalConfDir, domain.ConfigFileName)
		info.GlobalExists = fileExists(info.GlobalPath)
	}

	return info
}

// InitProject creates a project config file with default template.
func (m *Manager) InitProject() error {
	return initConfig(domain.ProjectConfigPath(m.projectDir))
}

// InitGlobal creates a global config file with default template.
func (m *Manager) InitGlobal() error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return err
	}

	return initConfig(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// initConfig creates a config file with default template.
func initConfig(path string) error {
	if fileExists(path) {
		return domain.ErrConfigExists
	}

	content := domain.RenderConfigTemplate(domain.NewDefaultConfig())

	return os.WriteFile(path, []byte(content), 0o600)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
