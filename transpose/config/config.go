package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/RyanBlaney/nashville/theory"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Format selects how resolved chords are rendered.
type Format string

const (
	FormatHTML    Format = "html"    // <span class="chord">G</span>
	FormatPlain   Format = "plain"   // G
	FormatBracket Format = "bracket" // [G]
	FormatANSI    Format = "ansi"    // styled terminal output, rendered by the CLI
)

var formats = []Format{FormatHTML, FormatPlain, FormatBracket, FormatANSI}

// Environment overrides applied by LoadConfig.
const (
	EnvDefaultKey = "NNS_DEFAULT_KEY"
	EnvChordClass = "NNS_CHORD_CLASS"
	EnvFormat     = "NNS_FORMAT"
	EnvLogLevel   = "NNS_LOG_LEVEL"
)

// Config configures conversion and the presentation around it.
type Config struct {
	DefaultKey string `yaml:"default_key" json:"default_key"`
	ChordClass string `yaml:"chord_class" json:"chord_class"`
	Format     Format `yaml:"format" json:"format"`
	LogLevel   string `yaml:"log_level" json:"log_level"`

	// SectionLabels are added to the built-in label set ("Verse", "Chorus", ...).
	SectionLabels []string `yaml:"section_labels" json:"section_labels,omitempty"`

	// DisplayKeys is the key picker order. Empty means theory.DisplayKeys().
	DisplayKeys []string `yaml:"display_keys" json:"display_keys,omitempty"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		DefaultKey:  "C",
		ChordClass:  "chord",
		Format:      FormatHTML,
		LogLevel:    "info",
		DisplayKeys: theory.DisplayKeys(),
	}
}

// LoadConfig layers .env, the YAML file at path (skipped when path is empty)
// and NNS_* environment variables over DefaultConfig, then validates.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if len(cfg.DisplayKeys) == 0 {
		cfg.DisplayKeys = theory.DisplayKeys()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDefaultKey); v != "" {
		c.DefaultKey = v
	}
	if v := os.Getenv(EnvChordClass); v != "" {
		c.ChordClass = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = Format(strings.ToLower(v))
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks that every key and the format are known.
func (c *Config) Validate() error {
	var errs []error
	if !theory.IsSupported(c.DefaultKey) {
		errs = append(errs, fmt.Errorf("default_key: %w: %q", theory.ErrUnsupportedKey, c.DefaultKey))
	}
	if !slices.Contains(formats, c.Format) {
		errs = append(errs, fmt.Errorf("format: unknown format %q", c.Format))
	}
	for _, k := range c.DisplayKeys {
		if !theory.IsSupported(k) {
			errs = append(errs, fmt.Errorf("display_keys: %w: %q", theory.ErrUnsupportedKey, k))
		}
	}
	return errors.Join(errs...)
}
