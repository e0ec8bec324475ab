// Package config resolves counter settings from defaults, an optional
// counter.yaml, COUNTER_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/counter/pkg/render"
)

// FileName is the optional project configuration file.
const FileName = "counter.yaml"

// Defaults used when nothing else sets a value.
const (
	DefaultStart          = 5
	DefaultIncrementLabel = "increment"
	DefaultDecrementLabel = "decrement"
	DefaultFormat         = render.FormatText
)

// Config represents the optional counter.yaml configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Counter CounterConfig `yaml:"counter"`
	Render  RenderConfig  `yaml:"render"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// CounterConfig configures the counter widget.
type CounterConfig struct {
	Start          *int   `yaml:"start,omitempty"`
	IncrementLabel string `yaml:"incrementLabel,omitempty"`
	DecrementLabel string `yaml:"decrementLabel,omitempty"`
	Locale         string `yaml:"locale,omitempty"`
}

// RenderConfig selects the output format.
type RenderConfig struct {
	Format string `yaml:"format,omitempty"`
}

// Env holds the COUNTER_* environment overrides. Pointer fields stay nil
// when the variable is unset.
type Env struct {
	Start   *int    `env:"COUNTER_START"`
	Locale  *string `env:"COUNTER_LOCALE"`
	Format  *string `env:"COUNTER_FORMAT"`
	Verbose bool    `env:"COUNTER_VERBOSE"`
	Trace   bool    `env:"COUNTER_TRACE"`
}

// Overrides carries values set on the command line. Nil fields were not set.
type Overrides struct {
	Start  *int
	Locale *string
	Format *string
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root           string
	ModulePath     string
	AppName        string
	Start          int
	IncrementLabel string
	DecrementLabel string
	Locale         string
	Format         render.Format
	Verbose        bool
	Trace          bool
}

// LoadOptional reads counter.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// ParseEnv loads the COUNTER_* environment variables.
func ParseEnv() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &e, nil
}

// Resolve loads counter.yaml (if present), applies environment and flag
// overrides and validates the result. dir does not have to be inside a Go
// module; the app name then falls back to the directory name.
func Resolve(dir string, flags Overrides) (*Resolved, error) {
	modPath, err := modulePath(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	envCfg, err := ParseEnv()
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Root:           dir,
		ModulePath:     modPath,
		AppName:        strings.TrimSpace(cfg.App.Name),
		Start:          DefaultStart,
		IncrementLabel: firstNonEmpty(cfg.Counter.IncrementLabel, DefaultIncrementLabel),
		DecrementLabel: firstNonEmpty(cfg.Counter.DecrementLabel, DefaultDecrementLabel),
		Locale:         strings.TrimSpace(cfg.Counter.Locale),
		Verbose:        envCfg.Verbose,
		Trace:          envCfg.Trace,
	}
	if r.AppName == "" {
		r.AppName = defaultAppName(modPath, dir)
	}
	format := firstNonEmpty(cfg.Render.Format, string(DefaultFormat))

	if cfg.Counter.Start != nil {
		r.Start = *cfg.Counter.Start
	}
	if envCfg.Start != nil {
		r.Start = *envCfg.Start
	}
	if flags.Start != nil {
		r.Start = *flags.Start
	}

	if envCfg.Locale != nil {
		r.Locale = strings.TrimSpace(*envCfg.Locale)
	}
	if flags.Locale != nil {
		r.Locale = strings.TrimSpace(*flags.Locale)
	}

	if envCfg.Format != nil {
		format = *envCfg.Format
	}
	if flags.Format != nil {
		format = *flags.Format
	}

	if r.Format, err = render.ParseFormat(format); err != nil {
		return nil, fmt.Errorf("render.format: %w", err)
	}
	if err := validateLocale(r.Locale); err != nil {
		return nil, err
	}
	if r.IncrementLabel == r.DecrementLabel {
		return nil, fmt.Errorf("counter labels must differ (both %q)", r.IncrementLabel)
	}

	return r, nil
}

// FindProjectRoot walks up from start to find go.mod. If none is found,
// start itself is returned.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for d := dir; ; {
		if _, err := os.Stat(filepath.Join(d, "go.mod")); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return dir, nil
		}
		d = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if modName, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "counter"
	}
	return base
}

func validateLocale(locale string) error {
	if locale == "" {
		return nil
	}
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("counter.locale %q is not a BCP 47 tag: %w", locale, err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
