package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/task-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetInfo(t *testing.T) {
	t.Run("reports existing files", func(t *testing.T) {
		projectDir := t.TempDir()
		globalDir := t.TempDir()
		writeConfig(t, domain.ProjectConfigPath(projectDir), "[log]\nlevel = \"debug\"\n")
		writeConfig(t, filepath.Join(globalDir, domain.ConfigFileName), "")

		info := NewManagerWithGlobalDir(projectDir, globalDir).GetInfo()

		assert.Equal(t, filepath.Join(projectDir, ".task-cli.toml"), info.ProjectPath)
		assert.True(t, info.ProjectExists)
		assert.Equal(t, filepath.Join(globalDir, "config.toml"), info.GlobalPath)
		assert.True(t, info.GlobalExists)
	})

	t.Run("reports missing files", func(t *testing.T) {
		info := NewManagerWithGlobalDir(t.TempDir(), t.TempDir()).GetInfo()

		assert.False(t, info.ProjectExists)
		assert.False(t, info.GlobalExists)
	})

	t.Run("returns empty global path when global dir is empty", func(t *testing.T) {
		info := NewManagerWithGlobalDir(t.TempDir(), "").GetInfo()

		assert.Empty(t, info.GlobalPath)
		assert.False(t, info.GlobalExists)
	})
}

func TestManager_InitProject(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		projectDir := t.TempDir()

		require.NoError(t, NewManagerWithGlobalDir(projectDir, "").InitProject())

		content, err := os.ReadFile(domain.ProjectConfigPath(projectDir))
		require.NoError(t, err)
		assert.Contains(t, string(content), "[store]")
		assert.Contains(t, string(content), `path = "tasks.json"`)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		projectDir := t.TempDir()
		path := domain.ProjectConfigPath(projectDir)
		writeConfig(t, path, "# mine\n")

		err := NewManagerWithGlobalDir(projectDir, "").InitProject()
		assert.ErrorIs(t, err, domain.ErrConfigExists)

		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "# mine\n", string(content))
	})
}

func TestManager_InitGlobal(t *testing.T) {
	t.Run("creates directory and file", func(t *testing.T) {
		globalDir := filepath.Join(t.TempDir(), "nested", "task-cli")

		require.NoError(t, NewManagerWithGlobalDir(t.TempDir(), globalDir).InitGlobal())

		_, err := os.Stat(filepath.Join(globalDir, domain.ConfigFileName))
		assert.NoError(t, err)
	})

	t.Run("fails without global dir", func(t *testing.T) {
		err := NewManagerWithGlobalDir(t.TempDir(), "").InitGlobal()
		assert.Error(t, err)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		globalDir := t.TempDir()
		writeConfig(t, filepath.Join(globalDir, domain.ConfigFileName), "")

		err := NewManagerWithGlobalDir(t.TempDir(), globalDir).InitGlobal()
		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
