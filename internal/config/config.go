package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/zamm-dev/interaccion-usuario/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	appDirName = ".interaccion"
	envPrefix  = "INTERACCION"
)

// Config holds all configuration for the application
type Config struct {
	Window  WindowConfig  `mapstructure:"window" yaml:"window"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// WindowConfig holds window geometry and lifecycle policy
type WindowConfig struct {
	Width         int    `mapstructure:"width" yaml:"width"`
	Height        int    `mapstructure:"height" yaml:"height"`
	CloseBehavior string `mapstructure:"close_behavior" yaml:"close_behavior"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Window: WindowConfig{
			Width:         models.DefaultWindowWidth,
			Height:        models.DefaultWindowHeight,
			CloseBehavior: string(models.CloseTerminateProcess),
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  defaultLogPath(),
		},
	}
}

// CloseBehavior returns the parsed close policy
func (c *Config) CloseBehavior() (models.CloseBehavior, error) {
	return models.ParseCloseBehavior(c.Window.CloseBehavior)
}

// Load loads configuration from file and environment variables. An empty
// path searches the default locations.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if configPath == "" {
		configPath = os.Getenv(envPrefix + "_CONFIG_PATH")
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if dir, err := appDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	setDefaults(v)

	// INTERACCION_WINDOW_WIDTH -> window.width
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is OK, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, models.NewAppErrorWithCause(models.ErrTypeConfig, "failed to read config file", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, models.NewAppErrorWithCause(models.ErrTypeConfig, "failed to unmarshal config", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	if config.Logging.File != "" {
		config.Logging.File = expandPath(config.Logging.File)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	d := Defaults()

	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.close_behavior", d.Window.CloseBehavior)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
}

func validate(config *Config) error {
	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		return models.NewAppErrorWithDetails(models.ErrTypeValidation, "window size must be positive",
			fmt.Sprintf("%dx%d", config.Window.Width, config.Window.Height))
	}
	if _, err := config.CloseBehavior(); err != nil {
		return err
	}
	switch config.Logging.Level {
	case "debug", "info", "off":
	default:
		return models.NewAppErrorWithDetails(models.ErrTypeValidation, "unsupported log level", config.Logging.Level)
	}
	return nil
}

func appDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, appDirName), nil
}

func defaultLogPath() string {
	dir, err := appDir()
	if err != nil {
		return filepath.Join(appDirName, "logs", "interaccion.log") // fallback
	}
	return filepath.Join(dir, "logs", "interaccion.log")
}

// expandPath expands ~ to the home directory and resolves relative paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		if homeDir, err := os.UserHomeDir(); err == nil {
			if len(path) == 1 {
				return homeDir
			}
			if path[1] == '/' || path[1] == filepath.Separator {
				return filepath.Join(homeDir, path[2:])
			}
		}
	}

	if !filepath.IsAbs(path) {
		if absPath, err := filepath.Abs(path); err == nil {
			return absPath
		}
	}

	return path
}

// WriteDefaultConfig writes a default configuration file. An existing file
// is left alone; the returned bool reports whether a file was written.
func WriteDefaultConfig(configPath string) (string, bool, error) {
	if configPath == "" {
		var err error
		configPath, err = GetConfigPath()
		if err != nil {
			return "", false, err
		}
	}

	if _, err := os.Stat(configPath); err == nil {
		return configPath, false, nil
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", false, models.NewAppErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to create config directory: %s", dir), err)
	}

	content, err := yaml.Marshal(Defaults())
	if err != nil {
		return "", false, models.NewAppErrorWithCause(models.ErrTypeSystem, "failed to encode default config", err)
	}

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return "", false, models.NewAppErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to write config file: %s", configPath), err)
	}

	return configPath, true, nil
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	if configPath := os.Getenv(envPrefix + "_CONFIG_PATH"); configPath != "" {
		return configPath, nil
	}

	dir, err := appDir()
	if err != nil {
		return "", models.NewAppErrorWithCause(models.ErrTypeSystem, "failed to get user home directory", err)
	}

	return filepath.Join(dir, "config.yaml"), nil
}
