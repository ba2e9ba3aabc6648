package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes environment overrides, e.g. MAGNIFY_ZOOM_STEP.
const EnvPrefix = "MAGNIFY"

// Config holds user-tunable settings. Hotkeys are fixed and not part of it.
type Config struct {
	Zoom      ZoomConfig  `mapstructure:"zoom"      yaml:"zoom"`
	Track     TrackConfig `mapstructure:"track"     yaml:"track"`
	Smoothing bool        `mapstructure:"smoothing" yaml:"smoothing"`
	Log       LogConfig   `mapstructure:"log"       yaml:"log"`
}

// ZoomConfig controls hotkey zoom steps.
type ZoomConfig struct {
	Step float64 `mapstructure:"step" yaml:"step"`
}

// TrackConfig controls window tracking.
type TrackConfig struct {
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// MinInterval is the shortest tick the tracker accepts.
const MinInterval = 10 * time.Millisecond

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Zoom:      ZoomConfig{Step: 0.1},
		Track:     TrackConfig{Interval: 100 * time.Millisecond},
		Smoothing: true,
		Log:       LogConfig{Level: "info", Format: "console"},
	}
}

// DefaultConfigPath returns %APPDATA%\magnify\config.yaml (or the OS
// equivalent).
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "magnify", "config.yaml"), nil
}

// SetDefaults registers every key on v so environment overrides resolve.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("zoom.step", d.Zoom.Step)
	v.SetDefault("track.interval", d.Track.Interval)
	v.SetDefault("smoothing", d.Smoothing)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Load merges defaults, the YAML file at path, MAGNIFY_* environment
// variables and any flags already bound on v. A missing file is not an
// error.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the magnifier cannot run with.
func (c *Config) Validate() error {
	if c.Zoom.Step <= 0 {
		return fmt.Errorf("zoom.step must be positive, got %v", c.Zoom.Step)
	}
	if c.Track.Interval < MinInterval {
		return fmt.Errorf("track.interval must be at least %s, got %s", MinInterval, c.Track.Interval)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
