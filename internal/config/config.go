// Package config loads, normalizes, and validates baburchi configuration.
//
// It supplies repository defaults, expands user paths, reads TOML files,
// and validates threshold ranges so downstream code receives sane knobs in
// one pass.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Config centralizes every knob the CLI and engine wiring need.
type Config struct {
	// SimilarityThreshold gates positive alignment scores.
	SimilarityThreshold float64 `toml:"similarity_threshold"`
	// HighSimilarityThreshold marks reference tokens as confirmed
	// corrections.
	HighSimilarityThreshold float64 `toml:"high_similarity_threshold"`
	// MinMatchScore is the relevance floor for excerpt search.
	MinMatchScore float64 `toml:"min_match_score"`
	// TypoSymbols are preserved as atomic tokens during alignment.
	TypoSymbols []string `toml:"typo_symbols"`
	// CorpusPath locates the SQLite corpus database.
	CorpusPath string `toml:"corpus_path"`
	LogLevel   string `toml:"log_level"`
	LogFormat  string `toml:"log_format"`
}

const (
	defaultCorpusPath = "~/.local/share/baburchi/corpus.db"
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		SimilarityThreshold:     0.6,
		HighSimilarityThreshold: 0.8,
		MinMatchScore:           0.55,
		TypoSymbols:             []string{"ﷺ"},
		CorpusPath:              defaultCorpusPath,
		LogLevel:                defaultLogLevel,
		LogFormat:               defaultLogFormat,
	}
}

// DefaultConfigPath returns the expected config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "baburchi", "config.toml"), nil
}

// EnvConfigPath overrides the default config location when set.
const EnvConfigPath = "BABURCHI_CONFIG"

// Load reads the TOML file at path on top of the defaults, then normalizes
// and validates the result. An empty path falls back to $BABURCHI_CONFIG,
// then to the default location when the file exists, then to plain
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if env := os.Getenv(EnvConfigPath); env != "" {
			path = env
			explicit = true
		} else if defaultPath, err := DefaultConfigPath(); err == nil {
			path = defaultPath
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// Defaults are fine without a config file.
		default:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteSample writes the embedded sample config to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

func (c *Config) normalize() error {
	var err error
	if c.CorpusPath, err = expandPath(c.CorpusPath); err != nil {
		return fmt.Errorf("corpus_path: %w", err)
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}
	return nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return errors.New("similarity_threshold must be between 0 and 1")
	}
	if c.HighSimilarityThreshold < 0 || c.HighSimilarityThreshold > 1 {
		return errors.New("high_similarity_threshold must be between 0 and 1")
	}
	if c.HighSimilarityThreshold < c.SimilarityThreshold {
		return errors.New("high_similarity_threshold must not be below similarity_threshold")
	}
	if c.MinMatchScore < 0 || c.MinMatchScore > 1 {
		return errors.New("min_match_score must be between 0 and 1")
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}
	if c.CorpusPath == "" {
		return errors.New("corpus_path must be set")
	}
	return nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
