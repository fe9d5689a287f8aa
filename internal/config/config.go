package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/fex/internal/search"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "FEX_CONFIG"
	// EnvLogFile overrides Log.File.
	EnvLogFile = "FEX_LOG"

	appDirName     = "fex"
	configFileName = "config.toml"
)

// Config represents the application configuration.
type Config struct {
	Search SearchConfig `toml:"search"`
	Log    LogConfig    `toml:"log"`
	UI     UIConfig     `toml:"ui"`
}

// SearchConfig controls how '/' patterns are interpreted.
type SearchConfig struct {
	Syntax        string `toml:"syntax"`
	CaseSensitive bool   `toml:"case_sensitive"`
}

// LogConfig controls the diagnostic log. An empty File disables logging.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// UIConfig holds display toggles.
type UIConfig struct {
	ShowSize bool `toml:"show_size"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Syntax:        string(search.SyntaxRegex),
			CaseSensitive: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			ShowSize: true,
		},
	}
}

// DefaultPath returns the config file location, honouring FEX_CONFIG.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, appDirName, configFileName)
}

// Load reads the TOML file at path on top of the defaults. A missing file
// yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			dec := toml.NewDecoder(bytes.NewReader(data))
			dec.DisallowUnknownFields()
			if err := dec.Decode(cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if logFile := strings.TrimSpace(os.Getenv(EnvLogFile)); logFile != "" {
		cfg.Log.File = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	syntax, err := search.ParseSyntax(c.Search.Syntax)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	c.Search.Syntax = string(syntax)

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// SearchSyntax returns the validated search syntax.
func (c *Config) SearchSyntax() search.Syntax {
	return search.Syntax(c.Search.Syntax)
}
