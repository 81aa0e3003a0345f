// Package config provides configuration management for transjson.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the project root.
const FileName = ".transjson.yml"

const (
	DefaultManifest  = "main.tex"
	DefaultOutput    = "web/translation-data.json"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
)

// Language names one side of the bilingual content.
type Language struct {
	Key   string `yaml:"key"`   // JSON field name in the output
	Label string `yaml:"label"` // column heading in exports
}

// Languages holds the two languages in argument order of the entry macros.
type Languages struct {
	A Language `yaml:"a"`
	B Language `yaml:"b"`
}

// Config holds the transjson configuration.
type Config struct {
	Manifest  string    `yaml:"manifest"`
	Output    string    `yaml:"output"`
	Languages Languages `yaml:"languages"`
	LogLevel  string    `yaml:"log_level,omitempty"`
	LogFormat string    `yaml:"log_format,omitempty"`
}

// Default returns the configuration used when no file or override is present.
func Default() *Config {
	return &Config{
		Manifest: DefaultManifest,
		Output:   DefaultOutput,
		Languages: Languages{
			A: Language{Key: "danish", Label: "Dansk"},
			B: Language{Key: "german", Label: "Deutsch"},
		},
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// ApplyDefaults fills every empty field with its default value.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.Manifest == "" {
		c.Manifest = d.Manifest
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Languages.A.Key == "" {
		c.Languages.A.Key = d.Languages.A.Key
	}
	if c.Languages.A.Label == "" {
		c.Languages.A.Label = d.Languages.A.Label
	}
	if c.Languages.B.Key == "" {
		c.Languages.B.Key = d.Languages.B.Key
	}
	if c.Languages.B.Label == "" {
		c.Languages.B.Label = d.Languages.B.Label
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
}

// Validate checks that all required fields are present and valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Manifest) == "" {
		return errors.New("manifest is required")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output is required")
	}

	a, b := c.Languages.A.Key, c.Languages.B.Key
	if a == "" || b == "" {
		return errors.New("both language keys are required")
	}
	if a == b {
		return fmt.Errorf("language keys must differ (both are %q)", a)
	}
	if a == "type" || b == "type" {
		return errors.New(`language key "type" is reserved`)
	}

	return nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("TRANSJSON_MANIFEST"); v != "" {
		c.Manifest = v
	}
	if v := os.Getenv("TRANSJSON_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("TRANSJSON_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// ResolvePath returns p unchanged when absolute, otherwise joined onto root.
func ResolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// DefaultConfigPath returns the configuration file path inside a project root.
func DefaultConfigPath(root string) string {
	return filepath.Join(root, FileName)
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file, overrides it with environment
// variables and fills in defaults. A missing file is not an error.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	cfg.ApplyDefaults()
	return cfg, nil
}
