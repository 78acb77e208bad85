package domain

import (
	"fmt"
	"strings"
)

// Config represents the cookiecalc configuration loaded from cookiecalc.yaml.
type Config struct {
	Display  DisplayConfig
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type DisplayConfig struct {
	Precision int
	Locale    string
}

type DefaultsConfig struct {
	// System is the default target for convert when --to is omitted: "metric" or "imperial".
	System string
}

type PathsConfig struct {
	IngredientsFile string
	RecipesDir      string
}

// DefaultConfig provides sane defaults if cookiecalc.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Precision: 2,
			Locale:    "en",
		},
		Defaults: DefaultsConfig{
			System: "metric",
		},
		Paths: PathsConfig{
			IngredientsFile: "ingredients.yaml",
			RecipesDir:      "recipes",
		},
	}
}

// MaxPrecision bounds Display.Precision.
const MaxPrecision = 9

// Validate checks values that defaults cannot repair.
func (c Config) Validate() error {
	if c.Display.Precision < 0 || c.Display.Precision > MaxPrecision {
		return fmt.Errorf("display.precision must be between 0 and %d, got %d: %w", MaxPrecision, c.Display.Precision, ErrInvalidConfig)
	}
	if _, err := ParseSystem(c.Defaults.System); err != nil {
		return fmt.Errorf("defaults.system: %w", err)
	}
	if strings.TrimSpace(c.Paths.IngredientsFile) == "" {
		return fmt.Errorf("paths.ingredients_file is required: %w", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Paths.RecipesDir) == "" {
		return fmt.Errorf("paths.recipes_dir is required: %w", ErrInvalidConfig)
	}
	return nil
}
