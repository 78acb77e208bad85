package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/cookiecalc/internal/domain"
	"github.com/aalvaropc/cookiecalc/internal/ports"
)

func LoadIngredients(path string) ([]domain.Ingredient, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "config.load_ingredients",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLIngredients
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "config.load_ingredients",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapIngredients(path, dto)
}

func LoadRecipe(path string, cat ports.IngredientCatalog) (domain.Recipe, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Recipe{}, &domain.OpError{
			Op:   "config.load_recipe",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLRecipe
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Recipe{}, &domain.OpError{
			Op:   "config.load_recipe",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapRecipe(path, dto, cat)
}
