package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/cookiecalc/internal/domain"
)

// EnvOverrides are applied on top of cookiecalc.yaml.
type EnvOverrides struct {
	Workspace       string `env:"COOKIECALC_WORKSPACE"`
	Debug           bool   `env:"COOKIECALC_DEBUG"`
	Precision       *int   `env:"COOKIECALC_PRECISION"`
	Locale          string `env:"COOKIECALC_LOCALE"`
	System          string `env:"COOKIECALC_SYSTEM"`
	IngredientsFile string `env:"COOKIECALC_INGREDIENTS_FILE"`
	RecipesDir      string `env:"COOKIECALC_RECIPES_DIR"`
}

// ParseEnv reads EnvOverrides from the process environment.
func ParseEnv() (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return EnvOverrides{}, &domain.OpError{
			Op:   "workspacefinder.env",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("parse env: %w", err),
		}
	}
	return o, nil
}

// LoadConfig loads cookiecalc.yaml from the workspace root, applies defaults,
// then environment overrides.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	y.applyTo(&cfg)

	overrides, err := ParseEnv()
	if err != nil {
		return cfg, err
	}
	overrides.Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

func (y yamlConfig) applyTo(cfg *domain.Config) {
	c := y.CookieCalc
	if c.Display.Precision != nil {
		cfg.Display.Precision = *c.Display.Precision
	}
	if c.Display.Locale != "" {
		cfg.Display.Locale = c.Display.Locale
	}
	if c.Defaults.System != "" {
		cfg.Defaults.System = c.Defaults.System
	}
	if c.Paths.IngredientsFile != "" {
		cfg.Paths.IngredientsFile = c.Paths.IngredientsFile
	}
	if c.Paths.RecipesDir != "" {
		cfg.Paths.RecipesDir = c.Paths.RecipesDir
	}
}

// Apply copies every set override onto cfg.
func (o EnvOverrides) Apply(cfg *domain.Config) {
	if o.Precision != nil {
		cfg.Display.Precision = *o.Precision
	}
	if o.Locale != "" {
		cfg.Display.Locale = o.Locale
	}
	if o.System != "" {
		cfg.Defaults.System = o.System
	}
	if o.IngredientsFile != "" {
		cfg.Paths.IngredientsFile = o.IngredientsFile
	}
	if o.RecipesDir != "" {
		cfg.Paths.RecipesDir = o.RecipesDir
	}
}

type yamlConfig struct {
	CookieCalc struct {
		Display struct {
			Precision *int   `yaml:"precision"`
			Locale    string `yaml:"locale"`
		} `yaml:"display"`

		Defaults struct {
			System string `yaml:"system"`
		} `yaml:"defaults"`

		Paths struct {
			IngredientsFile string `yaml:"ingredients_file"`
			RecipesDir      string `yaml:"recipes_dir"`
		} `yaml:"paths"`
	} `yaml:"cookiecalc"`
}
