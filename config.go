package lofx

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/lofx/backend"
)

// Config selects and configures the surface Init creates. It is usually
// loaded from YAML:
//
//	backend: glfw
//	window:
//	  width: 1280
//	  height: 720
//	  title: demo
//	  gl_version: "4.5"
//	  debug: true
//	debug_output: true
//	log_level: debug
type Config struct {
	// Backend names a registered backend. Empty selects the default.
	Backend string `yaml:"backend"`

	Window backend.Config `yaml:"window"`

	// DebugOutput forwards KHR_debug driver messages as diagnostics.
	// Set Window.Debug as well so the driver produces them.
	DebugOutput bool `yaml:"debug_output"`

	// LogLevel is a slog level name ("debug", "info", "warn", "error").
	// Empty means info.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the default backend with an 800x600 OpenGL 4.5
// window.
func DefaultConfig() Config {
	return Config{
		Window: backend.DefaultConfig(),
	}
}

// ParseConfig decodes YAML over DefaultConfig, so missing keys keep their
// defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("lofx: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Debug("config loaded", "path", path, "backend", cfg.Backend)
	return cfg, nil
}

// Validate checks the window size, the GL version and the log level.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if _, _, err := c.Window.Version(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return l, nil
}
