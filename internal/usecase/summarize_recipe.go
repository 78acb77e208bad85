package usecase

import (
	"context"

	"github.com/aalvaropc/cookiecalc/internal/domain"
	"github.com/aalvaropc/cookiecalc/internal/ports"
	"github.com/aalvaropc/cookiecalc/internal/usecase/aggregate"
)

type SummarizeRecipe struct {
	recipes ports.RecipeLoader
}

func NewSummarizeRecipe(rl ports.RecipeLoader) *SummarizeRecipe {
	return &SummarizeRecipe{recipes: rl}
}

// Execute loads the recipe at recipePath and breaks its weight down by category.
func (uc *SummarizeRecipe) Execute(ctx context.Context, recipePath string) (domain.RecipeSummary, error) {
	r, err := uc.recipes.LoadRecipe(recipePath)
	if err != nil {
		return domain.RecipeSummary{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.RecipeSummary{}, err
	}
	return aggregate.Summarize(r)
}
