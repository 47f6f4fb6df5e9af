package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zamm-dev/interaccion-usuario/internal/config"
	"github.com/zamm-dev/interaccion-usuario/internal/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("INTERACCION_CONFIG_PATH", "")

	app := NewApp()
	t.Cleanup(func() { app.Close() })

	cmd := app.CreateRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "Interacción Usuario "+Version+"\n", out)
}

func TestConfigInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "Config file: "+path+"\n", out)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Window.Width)
	assert.Equal(t, 200, cfg.Window.Height)
}

func TestConfigInitIgnoresBrokenExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [broken\n"), 0644))

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
}

func TestConfigPathCommand(t *testing.T) {
	out, err := execute(t, "--config", "/tmp/custom.yaml", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml\n", out)
}

func TestRootRejectsArguments(t *testing.T) {
	_, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestSetupDebugFlagRaisesLogLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("INTERACCION_CONFIG_PATH", "")
	logFile := filepath.Join(t.TempDir(), "logs", "interaccion.log")
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  level: info\n  file: "+logFile+"\n"), 0644))

	app := NewApp()
	app.configPath = configPath
	app.debug = true
	require.NoError(t, app.setup())

	app.logger.Debugf("probe %d", 42)
	require.NoError(t, app.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DEBUG probe 42")
	assert.Equal(t, "debug", app.config.Logging.Level)
}

func TestSetupRejectsInvalidConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("window:\n  close_behavior: minimize\n"), 0644))

	app := NewApp()
	app.configPath = configPath
	err := app.setup()

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrTypeValidation, appErr.Type)
}

func TestWindowOptionsFromConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := config.Defaults()
	cfg.Window.Width = 640

	opts, err := windowOptions(&cfg)
	require.NoError(t, err)

	assert.Equal(t, float32(640), opts.Width)
	assert.Equal(t, float32(200), opts.Height)
	assert.Equal(t, models.CloseTerminateProcess, opts.CloseBehavior)
}
