// Package internal holds the pieces shared by the schwift commands:
// configuration and error reports.
package internal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// ConfigEnv names the environment variable which may hold the path of the
// configuration file.
const ConfigEnv = "SCHWIFT_CONFIG"

// ConfigFile is the configuration file used when neither a flag nor the
// environment names one.
const ConfigFile = ".schwift.yaml"

// Config is the configuration of the schwift commands.
type Config struct {
	// Builtins controls whether the builtins preamble runs before programs.
	Builtins bool `yaml:"builtins"`
	// Preload lists source files to run after the builtins.
	Preload []string `yaml:"preload"`
	// LogLevel is one of debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`
	// Quotes controls whether error reports include a quote.
	Quotes bool `yaml:"quotes"`
	// History is the REPL history file. A leading ~ is the home directory.
	History string `yaml:"history"`
	// StaticOnly refuses to open plugins, so that only microverses linked
	// into the interpreter can be loaded.
	StaticOnly bool `yaml:"static_only"`
}

// DefaultConfig returns the configuration used when there is no file.
func DefaultConfig() Config {
	return Config{
		Builtins: true,
		LogLevel: "warn",
		Quotes:   true,
		History:  "~/.schwift_history",
	}
}

// ReadConfig decodes a configuration. Keys absent from the document keep
// their default values.
func ReadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	b, err := io.ReadAll(r)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig finds and reads the configuration. An explicit path comes first,
// then the file named by $SCHWIFT_CONFIG, then .schwift.yaml in the working
// directory. It is an error for an explicitly named file to be missing, but
// the default file is optional.
func LoadConfig(path string) (Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		path, explicit = ConfigFile, false
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Level returns the configured log level.
func (c Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

// HistoryPath returns the history file with ~ expanded. It is empty if no
// history should be kept.
func (c Config) HistoryPath() string {
	p := c.History
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		p = filepath.Join(home, p[1:])
	}
	return p
}

// ParseLevel converts a level name to a log level. The empty string is warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
}
