package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zamm-dev/interaccion-usuario/internal/models"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("INTERACCION_CONFIG_PATH", "")
	return home
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.Window.Width)
	assert.Equal(t, 200, cfg.Window.Height)
	assert.Equal(t, "terminate_process", cfg.Window.CloseBehavior)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(home, ".interaccion", "logs", "interaccion.log"), cfg.Logging.File)

	behavior, err := cfg.CloseBehavior()
	require.NoError(t, err)
	assert.Equal(t, models.CloseTerminateProcess, behavior)
}

func TestLoadReadsConfigFile(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, `window:
  width: 640
  height: 480
logging:
  level: debug
  file: /tmp/interaccion-test.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, "terminate_process", cfg.Window.CloseBehavior)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/interaccion-test.log", cfg.Logging.File)
}

func TestLoadConfigPathFromEnvironment(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, "window:\n  height: 250\n")
	t.Setenv("INTERACCION_CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Window.Height)
}

func TestLoadFindsConfigInAppDir(t *testing.T) {
	home := isolateHome(t)
	dir := filepath.Join(home, ".interaccion")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("window:\n  width: 320\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Window.Width)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, "window:\n  width: 640\n")
	t.Setenv("INTERACCION_WINDOW_WIDTH", "800")
	t.Setenv("INTERACCION_LOGGING_LEVEL", "off")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, "off", cfg.Logging.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"close behavior", "window:\n  close_behavior: hide\n"},
		{"zero width", "window:\n  width: 0\n"},
		{"negative height", "window:\n  height: -5\n"},
		{"log level", "logging:\n  level: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateHome(t)
			path := writeConfig(t, tt.content)

			_, err := Load(path)
			require.Error(t, err)

			var appErr *models.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, models.ErrTypeValidation, appErr.Type)
		})
	}
}

func TestLoadReportsMalformedFile(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, "window: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.ErrTypeConfig, appErr.Type)
}

func TestWriteDefaultConfigRoundTrips(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	written, created, err := WriteDefaultConfig(path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, path, written)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
}

func TestWriteDefaultConfigKeepsExistingFile(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, "window:\n  width: 999\n")

	_, created, err := WriteDefaultConfig(path)
	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "window:\n  width: 999\n", string(data))
}

func TestGetConfigPath(t *testing.T) {
	home := isolateHome(t)

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".interaccion", "config.yaml"), path)

	t.Setenv("INTERACCION_CONFIG_PATH", "/etc/interaccion.yaml")
	path, err = GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/interaccion.yaml", path)
}

func TestExpandPath(t *testing.T) {
	home := isolateHome(t)

	assert.Equal(t, home, expandPath("~"))
	assert.Equal(t, filepath.Join(home, "logs", "a.log"), expandPath("~/logs/a.log"))
	assert.Equal(t, "/var/log/a.log", expandPath("/var/log/a.log"))
	assert.True(t, filepath.IsAbs(expandPath("relative.log")))
	assert.Equal(t, "", expandPath(""))
}
