package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/cookiecalc/internal/domain"
	"github.com/aalvaropc/cookiecalc/internal/infra/catalog"
	"github.com/aalvaropc/cookiecalc/internal/ports"
)

func MapIngredients(path string, yi YAMLIngredients) ([]domain.Ingredient, error) {
	out := make([]domain.Ingredient, 0, len(yi.Ingredients))
	seen := map[string]int{}

	for i, y := range yi.Ingredients {
		fieldPrefix := fmt.Sprintf("ingredients[%d]", i)
		if strings.TrimSpace(y.Name) == "" {
			return nil, invalidField(path, fieldPrefix+".name", "name is required")
		}
		if y.Density == nil {
			return nil, invalidField(path, fieldPrefix+".density", "density is required")
		}

		key := catalog.Key(y.Name)
		if prev, dup := seen[key]; dup {
			return nil, invalidField(path, fieldPrefix+".name",
				fmt.Sprintf("duplicate of ingredients[%d]", prev))
		}
		seen[key] = i

		category, err := domain.ParseCategory(y.Category)
		if err != nil {
			return nil, invalidField(path, fieldPrefix+".category", fmt.Sprintf("unsupported category %q", y.Category))
		}

		ing, err := domain.NewIngredient(y.Name, category, *y.Density)
		if err != nil {
			return nil, fieldError(path, fieldPrefix+".density", err)
		}
		out = append(out, ing)
	}

	return out, nil
}

// MapRecipe maps a recipe DTO, resolving ingredient names through cat.
func MapRecipe(path string, yr YAMLRecipe, cat ports.IngredientCatalog) (domain.Recipe, error) {
	if strings.TrimSpace(yr.Name) == "" {
		return domain.Recipe{}, invalidField(path, "name", "recipe name is required")
	}

	r := domain.Recipe{
		Name:  yr.Name,
		Items: make([]domain.RecipeItem, 0, len(yr.Items)),
	}

	for i, it := range yr.Items {
		fieldPrefix := fmt.Sprintf("items[%d]", i)
		if strings.TrimSpace(it.Ingredient) == "" {
			return domain.Recipe{}, invalidField(path, fieldPrefix+".ingredient", "ingredient is required")
		}
		if it.Amount == nil {
			return domain.Recipe{}, invalidField(path, fieldPrefix+".amount", "amount is required")
		}
		if *it.Amount < 0 {
			return domain.Recipe{}, invalidField(path, fieldPrefix+".amount", "amount must not be negative")
		}
		if strings.TrimSpace(it.Unit) == "" {
			return domain.Recipe{}, invalidField(path, fieldPrefix+".unit", "unit is required")
		}

		unit, err := domain.ParseUnit(it.Unit)
		if err != nil {
			return domain.Recipe{}, fieldError(path, fieldPrefix+".unit", err)
		}

		ing, err := cat.Lookup(it.Ingredient)
		if err != nil {
			return domain.Recipe{}, fieldError(path, fieldPrefix+".ingredient", err)
		}

		r.Add(domain.RecipeItem{
			Ingredient: ing,
			Amount:     *it.Amount,
			Unit:       unit,
		})
	}

	return r, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

// fieldError keeps the kind of a domain error while adding file and field context.
func fieldError(path, field string, err error) error {
	kind := domain.KindOf(err)
	if kind == "" {
		kind = domain.KindInvalidConfig
	}
	return &domain.OpError{
		Op:   "config.map",
		Kind: kind,
		Path: path,
		Err:  fmt.Errorf("field %s: %w", field, err),
	}
}
