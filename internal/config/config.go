// Package config loads the retype configuration from YAML.
//
// A configuration file looks like
//
//	whitelist:
//	  - "[name]"
//	  - "[date]; [place]"
//	max_tokens: 5000
//	typo_distance: 2
//	format: markdown
//	log_level: info
//
// Whitelist items are parsed like the raw whitelist input of a practice
// session, i.e. each item may hold several entries separated by ',', ';'
// or newlines.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/fractalqb/retype"
)

// FileName is looked up in the working directory.
const FileName = ".retype.yaml"

// XDGName is looked up relative to the XDG config directories.
var XDGName = filepath.Join("retype", "config.yaml")

// ErrNotFound is returned by [Find] when no configuration file exists.
var ErrNotFound = errors.New("configuration file not found")

// Report formats
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

type Format string

func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatMarkdown, FormatJSON:
		return true
	}
	return false
}

type LogLevel string

func (l LogLevel) IsValid() bool {
	switch l {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// Level maps l to a slog level. Empty and invalid levels map to info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

type Config struct {
	Whitelist    []string `yaml:"whitelist"`
	MaxTokens    int      `yaml:"max_tokens"`
	TypoDistance int      `yaml:"typo_distance"`
	Format       Format   `yaml:"format"`
	LogLevel     LogLevel `yaml:"log_level"`
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	return &Config{
		MaxTokens:    retype.DefaultMaxTokens,
		TypoDistance: 2,
		Format:       FormatText,
		LogLevel:     "info",
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()
	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r on top of [Default] and validates the
// result. Unknown fields are errors.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns all problems of cfg joined into one error.
func Validate(cfg *Config) error {
	var errs []error
	if cfg.MaxTokens < -1 {
		errs = append(errs, fmt.Errorf("max_tokens %d is invalid; use -1 for no limit", cfg.MaxTokens))
	}
	if cfg.TypoDistance < 0 {
		errs = append(errs, fmt.Errorf("typo_distance %d must not be negative", cfg.TypoDistance))
	}
	if cfg.Format != "" && !cfg.Format.IsValid() {
		errs = append(errs, fmt.Errorf("format %q is invalid; valid values: text, markdown, json", cfg.Format))
	}
	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	if cfg.MaxTokens > 20000 {
		slog.Warn("large max_tokens, comparisons may need a lot of memory",
			"max_tokens", cfg.MaxTokens)
	}
	for i, item := range cfg.Whitelist {
		if len(retype.ParseWhitelist(item)) == 0 {
			slog.Warn("empty whitelist item", "index", i)
		}
	}
	return errors.Join(errs...)
}

// Find returns the configuration file to use. An explicit path is returned
// if it exists. Otherwise [FileName] in the working directory and then
// [XDGName] in the XDG config directories are searched.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config %q: %w", explicit, err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName, nil
	}
	if path, err := xdg.SearchConfigFile(XDGName); err == nil {
		return path, nil
	}
	return "", ErrNotFound
}

// RawWhitelist joins the configured whitelist items and extra into one
// raw whitelist.
func (cfg *Config) RawWhitelist(extra string) string {
	return strings.Join(append(append([]string{}, cfg.Whitelist...), extra), "\n")
}

// Compare returns a comparison configured by cfg.
func (cfg *Config) Compare(extraWhitelist string) retype.Compare {
	return retype.Compare{
		Whitelist:    retype.SessionWhitelist(cfg.RawWhitelist(extraWhitelist)),
		MaxTokens:    cfg.MaxTokens,
		TypoDistance: cfg.TypoDistance,
	}
}
