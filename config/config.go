// Package config loads the nixnet command line configuration.
//
// Settings come from DefaultConfig, then a TOML file, then NIXNET_*
// environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/status"
)

// Config holds every setting of the nixnet tool.
type Config struct {
	Driver    DriverConfig    `toml:"driver"`
	Logging   LoggingConfig   `toml:"logging"`
	Resources ResourcesConfig `toml:"resources"`
	Recorder  RecorderConfig  `toml:"recorder"`
	Aliases   []AliasConfig   `toml:"alias"`
}

type DriverConfig struct {
	// Library is the driver DLL to load.
	Library string `toml:"library"`
	// StatusBufferSize bounds status descriptions; 0 selects the default.
	StatusBufferSize int `toml:"status_buffer_size"`
}

type LoggingConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

type ResourcesConfig struct {
	// ReportLeaks reports sessions and databases still open at exit.
	ReportLeaks bool `toml:"report_leaks"`
}

// RecorderConfig places frame recordings. Files go to a dated directory
// under Dir and a new file is started every Rotate; zero never rotates.
type RecorderConfig struct {
	Dir    string   `toml:"dir"`
	Name   string   `toml:"name"`
	Rotate Duration `toml:"rotate"`
}

// AliasConfig is a database alias registered on start.
type AliasConfig struct {
	Name     string `toml:"name"`
	Path     string `toml:"path"`
	BaudRate uint64 `toml:"baud_rate"`
}

// Duration is a time.Duration read from a TOML string such as "5m".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d Duration) Duration() time.Duration { return time.Duration(d) }
func (d Duration) String() string          { return time.Duration(d).String() }

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Driver: DriverConfig{
			Library:          driver.DefaultLibrary,
			StatusBufferSize: status.DefaultBufferSize,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Resources: ResourcesConfig{
			ReportLeaks: true,
		},
		Recorder: RecorderConfig{
			Dir:    ".",
			Name:   "nixnet",
			Rotate: Duration(5 * time.Minute),
		},
	}
}

// Load reads path from fs over the defaults, applies environment overrides
// through getenv and validates the result. A missing file is not an error.
// A nil getenv reads the process environment.
func Load(fs billy.Filesystem, path string, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	if getenv == nil {
		getenv = os.Getenv
	}
	if path != "" {
		if err := cfg.loadTOML(fs, path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadTOML(fs billy.Filesystem, path string) error {
	data, err := util.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return fmt.Errorf("%s: unknown keys %s: %w", path, strings.Join(names, ", "), status.ErrInvalidArgument)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("NIXNET_LIBRARY"); v != "" {
		c.Driver.Library = v
	}
	if v := getenv("NIXNET_STATUS_BUFFER_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NIXNET_STATUS_BUFFER_SIZE: %w", status.ErrInvalidArgument)
		}
		c.Driver.StatusBufferSize = n
	}
	if v := getenv("NIXNET_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getenv("NIXNET_REPORT_LEAKS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("NIXNET_REPORT_LEAKS: %w", status.ErrInvalidArgument)
		}
		c.Resources.ReportLeaks = b
	}
	if v := getenv("NIXNET_RECORDER_DIR"); v != "" {
		c.Recorder.Dir = v
	}
	if v := getenv("NIXNET_RECORDER_ROTATE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("NIXNET_RECORDER_ROTATE: %w", status.ErrInvalidArgument)
		}
		c.Recorder.Rotate = Duration(d)
	}
	return nil
}

// Validate checks ranges and that every name handed to the driver is ASCII.
func (c *Config) Validate() error {
	if c.Driver.StatusBufferSize < 0 {
		return fmt.Errorf("status_buffer_size %d: %w", c.Driver.StatusBufferSize, status.ErrInvalidArgument)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging level %q: %w", c.Logging.Level, status.ErrInvalidArgument)
	}
	if c.Recorder.Rotate < 0 {
		return fmt.Errorf("recorder rotate %s: %w", c.Recorder.Rotate, status.ErrInvalidArgument)
	}
	if c.Recorder.Name == "" {
		return fmt.Errorf("recorder name is empty: %w", status.ErrInvalidArgument)
	}
	seen := make(map[string]bool, len(c.Aliases))
	for _, a := range c.Aliases {
		if a.Name == "" || a.Path == "" {
			return fmt.Errorf("alias %q needs a name and a path: %w", a.Name, status.ErrInvalidArgument)
		}
		if seen[a.Name] {
			return fmt.Errorf("alias %q defined twice: %w", a.Name, status.ErrInvalidArgument)
		}
		seen[a.Name] = true
		if err := driver.ASCII(a.Name); err != nil {
			return err
		}
		if err := driver.ASCII(a.Path); err != nil {
			return err
		}
	}
	return nil
}

// Build returns a console logger at the configured level.
func (l LoggingConfig) Build() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("logging level %q: %w", l.Level, status.ErrInvalidArgument)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = level > zapcore.DebugLevel
	return zc.Build()
}
