package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/aalvaropc/cookiecalc/internal/domain"
	"github.com/aalvaropc/cookiecalc/internal/ports"
	"github.com/aalvaropc/cookiecalc/internal/usecase/aggregate"
)

type ValidateRecipe struct {
	recipes ports.RecipeLoader
}

func NewValidateRecipe(rl ports.RecipeLoader) *ValidateRecipe {
	return &ValidateRecipe{recipes: rl}
}

// Execute loads a recipe and checks that every item converts to grams.
// All failing items are reported, not just the first.
func (uc *ValidateRecipe) Execute(ctx context.Context, recipePath string) error {
	r, err := uc.recipes.LoadRecipe(recipePath)
	if err != nil {
		return err
	}

	var errs []error
	for i, it := range r.Items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := aggregate.Grams(it); err != nil {
			errs = append(errs, &domain.OpError{
				Op:   "usecase.validate_recipe",
				Kind: domain.KindOf(err),
				Path: recipePath,
				Err:  itemLabel(i, it, err),
			})
		}
	}
	return errors.Join(errs...)
}

func itemLabel(i int, it domain.RecipeItem, err error) error {
	name := "<none>"
	if !it.Ingredient.IsZero() {
		name = it.Ingredient.DisplayName()
	}
	return fmt.Errorf("items[%d] %s: %w", i, name, err)
}
