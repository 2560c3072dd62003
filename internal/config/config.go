package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joaopnk/ignite-timer/internal/util"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure reported by Load.
var ErrInvalidConfig = errors.New("invalid configuration")

// ThemeNames lists the themes the terminal UI knows how to render.
var ThemeNames = []string{"default", "dracula"}

// Config holds user-tunable settings.
type Config struct {
	Timer TimerConfig `toml:"timer" yaml:"timer"`
	UI    UIConfig    `toml:"ui" yaml:"ui"`
	Log   LogConfig   `toml:"log" yaml:"log"`
}

// TimerConfig configures the new-cycle form defaults.
type TimerConfig struct {
	DefaultMinutes int `toml:"default_minutes" yaml:"default_minutes"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	Theme       string   `toml:"theme" yaml:"theme"`
	Suggestions []string `toml:"suggestions" yaml:"suggestions"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file,omitempty" yaml:"file,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Timer: TimerConfig{DefaultMinutes: DefaultCycleMinutes},
		UI: UIConfig{
			Theme:       "default",
			Suggestions: slices.Clone(DefaultTaskSuggestions),
		},
		Log: LogConfig{Level: LogLevelInfo},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/ignite/config.toml, falling back to ~/.config.
func DefaultPath() string {
	return filepath.Join(util.UserDirs(AppName).Config(), ConfigFileName)
}

// Load reads the file at path over the defaults. The format is chosen by
// extension: .yaml/.yml use YAML, everything else TOML. A missing file yields
// the defaults when allowMissing is set.
func Load(path string, allowMissing bool) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings and normalizes what can be normalized.
func (c *Config) Validate() error {
	if c.Timer.DefaultMinutes < MinCycleMinutes || c.Timer.DefaultMinutes > MaxCycleMinutes {
		return fmt.Errorf("%w: timer.default_minutes must be between %d and %d, got %d",
			ErrInvalidConfig, MinCycleMinutes, MaxCycleMinutes, c.Timer.DefaultMinutes)
	}
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	if c.UI.Theme == "" {
		c.UI.Theme = "default"
	}
	if !slices.Contains(ThemeNames, c.UI.Theme) {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, c.UI.Theme)
	}
	suggestions := c.UI.Suggestions[:0]
	for _, s := range c.UI.Suggestions {
		if s = strings.TrimSpace(s); s != "" {
			suggestions = append(suggestions, s)
		}
	}
	c.UI.Suggestions = suggestions
	switch strings.ToLower(c.Log.Level) {
	case "":
		c.Log.Level = LogLevelInfo
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		c.Log.Level = strings.ToLower(c.Log.Level)
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// EncodeTOML renders the configuration as TOML.
func (c *Config) EncodeTOML() ([]byte, error) {
	return toml.Marshal(c)
}
