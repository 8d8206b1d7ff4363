// Package config handles configuration loading and defaults.
//
// Sources are applied in order, later ones winning:
// 1. Built-in defaults
// 2. TOML file (explicit path, else ./todo.toml when present)
// 3. Environment variables (TODO_*)
// 4. CLI flags, applied by the caller
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTitle     = "Todos"
	DefaultTheme     = "classic"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// ProjectFile is looked up in the working directory when no path is given.
	ProjectFile = "todo.toml"
)

// Config is the full set of knobs for the todo CLI.
type Config struct {
	Title     string       `toml:"title"`
	Theme     string       `toml:"theme"`
	LogLevel  string       `toml:"log_level"`
	LogFormat string       `toml:"log_format"`
	SeedFile  string       `toml:"seed_file"`
	Items     []ItemConfig `toml:"items"`
}

// ItemConfig seeds one todo into the starting list.
type ItemConfig struct {
	Title string `toml:"title"`
	Done  bool   `toml:"done"`
}

// Default returns a config with every default applied.
func Default() Config {
	return Config{
		Title:     DefaultTitle,
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load resolves defaults, the TOML file at path and the environment.
// An empty path falls back to ProjectFile, which may be absent.
// The result is not validated; call Validate once flag overrides are applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = ProjectFile
	}
	if err := loadFile(&cfg, path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(&cfg)
	return &cfg, nil
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_TITLE"); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TODO_SEED"); v != "" {
		cfg.SeedFile = v
	}
}

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("theme: unsupported value %q", c.Theme)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level: unsupported value %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}
	for i, it := range c.Items {
		if strings.TrimSpace(it.Title) == "" {
			return fmt.Errorf("items[%d]: empty title", i)
		}
	}
	return nil
}
