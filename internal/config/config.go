// Package config provides checker configuration from defaults, an optional
// YAML file and the KEYCHECK_ROOT environment variable.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/finops-claw-gang/keycheck/internal/domain"
	"github.com/finops-claw-gang/keycheck/internal/keyset"
	"github.com/finops-claw-gang/keycheck/internal/locator"
)

// EnvRoot overrides the root directory when set.
const EnvRoot = "KEYCHECK_ROOT"

// Config holds all checker configuration.
type Config struct {
	// RootDir contains LocalesDir; documents live at
	// RootDir/LocalesDir/<locale>/FileName.
	RootDir    string `yaml:"root"`
	LocalesDir string `yaml:"locales_dir"`
	FileName   string `yaml:"file"`

	Locales   []string `yaml:"locales"`
	Reference string   `yaml:"reference"`

	// Ignore holds glob patterns of key paths excluded from every locale.
	Ignore []string `yaml:"ignore"`

	Format   domain.OutputFormat `yaml:"format"`
	LogLevel string              `yaml:"log_level"`
	Workers  int                 `yaml:"workers"`
	Trace    bool                `yaml:"trace"`
}

// Default returns the configuration for the project's client tree:
// client/public/locales/{en,fi,sv}/translation.json with en as reference.
func Default() Config {
	return Config{
		RootDir:    "client/public",
		LocalesDir: "locales",
		FileName:   "translation.json",
		Locales:    []string{"en", "fi", "sv"},
		Reference:  "en",
		Format:     domain.FormatText,
		LogLevel:   "info",
		Workers:    4,
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when
// path is empty) and applies the environment. It does not validate, so
// callers can apply flag overrides before calling Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// ApplyEnv applies KEYCHECK_ROOT when it is set.
func (c *Config) ApplyEnv() {
	c.RootDir = envOr(EnvRoot, c.RootDir)
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if c.RootDir == "" {
		return fmt.Errorf("config: root directory is required")
	}
	if c.LocalesDir == "" || c.FileName == "" {
		return fmt.Errorf("config: locales_dir and file are required")
	}
	if err := domain.ValidateLocales(c.Locales); err != nil {
		return fmt.Errorf("config: locales: %w", err)
	}
	if c.Reference == "" {
		return fmt.Errorf("config: reference locale is required")
	}
	if !c.Format.Valid() {
		return fmt.Errorf("config: invalid format %q (must be text or json)", c.Format)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if _, err := keyset.NewMatcher(c.Ignore); err != nil {
		return fmt.Errorf("config: ignore: %w", err)
	}
	return nil
}

// Layout returns the document layout described by c.
func (c Config) Layout() locator.Layout {
	return locator.Layout{Root: c.RootDir, LocalesDir: c.LocalesDir, FileName: c.FileName}
}

// ParseList splits a comma separated flag value, dropping blank entries.
func ParseList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
