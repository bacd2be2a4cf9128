package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/task-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Load_NoFiles(t *testing.T) {
	t.Setenv(domain.StoreFileEnv, "")

	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_ProjectConfigOnly(t *testing.T) {
	t.Setenv(domain.StoreFileEnv, "")
	projectDir := t.TempDir()

	writeConfig(t, domain.ProjectConfigPath(projectDir), `
[store]
path = "data/tasks.json"
lock = false

[log]
level = "debug"
file = "task-cli.log"

[output]
format = "table"
color = "never"
`)

	cfg, err := NewLoaderWithGlobalDir(projectDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, "data/tasks.json", cfg.Store.Path)
	assert.False(t, cfg.Store.Lock)
	assert.True(t, cfg.Store.Validate, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "task-cli.log", cfg.Log.File)
	assert.Equal(t, domain.FormatTable, cfg.Output.Format)
	assert.Equal(t, domain.ColorNever, cfg.Output.Color)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_ProjectOverridesGlobal(t *testing.T) {
	t.Setenv(domain.StoreFileEnv, "")
	projectDir := t.TempDir()
	globalDir := t.TempDir()

	writeConfig(t, filepath.Join(globalDir, domain.ConfigFileName), `
[store]
path = "/home/me/tasks.json"
validate = false

[output]
format = "yaml"
`)
	writeConfig(t, domain.ProjectConfigPath(projectDir), `
[output]
format = "table"
`)

	cfg, err := NewLoaderWithGlobalDir(projectDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "/home/me/tasks.json", cfg.Store.Path, "global value survives")
	assert.False(t, cfg.Store.Validate)
	assert.Equal(t, domain.FormatTable, cfg.Output.Format, "project wins")
}

func TestLoader_Load_ExplicitTrueOverridesGlobalFalse(t *testing.T) {
	t.Setenv(domain.StoreFileEnv, "")
	projectDir := t.TempDir()
	globalDir := t.TempDir()

	writeConfig(t, filepath.Join(globalDir, domain.ConfigFileName), "[store]\nlock = false\n")
	writeConfig(t, domain.ProjectConfigPath(projectDir), "[store]\nlock = true\n")

	cfg, err := NewLoaderWithGlobalDir(projectDir, globalDir).Load()
	require.NoError(t, err)
	assert.True(t, cfg.Store.Lock)
}

func TestLoader_Load_EnvOverridesStorePath(t *testing.T) {
	projectDir := t.TempDir()
	writeConfig(t, domain.ProjectConfigPath(projectDir), "[store]\npath = \"from-config.json\"\n")
	t.Setenv(domain.StoreFileEnv, "/tmp/from-env.json")

	cfg, err := NewLoaderWithGlobalDir(projectDir, "").Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.json", cfg.Store.Path)
}

func TestLoader_Load_Warnings(t *testing.T) {
	t.Setenv(domain.StoreFileEnv, "")
	projectDir := t.TempDir()

	writeConfig(t, domain.ProjectConfigPath(projectDir), `
stray = 1

[store]
lock = "yes"
color = "red"

[log]
level = "loud"

[output]
format = "xml"
color = "blue"

[server]
port = 8080
`)

	cfg, err := NewLoaderWithGlobalDir(projectDir, "").Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"invalid value for log.level: must be one of debug, info, warn, error",
		"invalid value for output.color: must be one of auto, always, never",
		"invalid value for output.format: must be one of json, yaml, table",
		"invalid value for store.lock: must be a boolean",
		"unknown key in [store]: color",
		"unknown key: stray",
		"unknown section: server",
	}, cfg.Warnings)

	// Invalid values fall back to defaults
	def := domain.NewDefaultConfig()
	assert.Equal(t, def.Store.Lock, cfg.Store.Lock)
	assert.Equal(t, def.Log.Level, cfg.Log.Level)
	assert.Equal(t, def.Output, cfg.Output)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	projectDir := t.TempDir()
	writeConfig(t, domain.ProjectConfigPath(projectDir), "[store\npath = ")

	_, err := NewLoaderWithGlobalDir(projectDir, "").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoader_Load_TemplateRoundTrip(t *testing.T) {
	t.Setenv(domain.StoreFileEnv, "")
	projectDir := t.TempDir()

	require.NoError(t, NewManagerWithGlobalDir(projectDir, "").InitProject())

	cfg, err := NewLoaderWithGlobalDir(projectDir, "").Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings, "generated template must load cleanly")
	assert.Equal(t, domain.NewDefaultConfig().Store, cfg.Store)
}

func TestDefaultGlobalConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, "/xdg/task-cli", defaultGlobalConfigDir())
}
