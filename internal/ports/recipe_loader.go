package ports

import "github.com/aalvaropc/cookiecalc/internal/domain"

// RecipeLoader loads recipes from a source (e.g., filesystem).
type RecipeLoader interface {
	LoadRecipe(path string) (domain.Recipe, error)
	ListRecipes(root string) ([]domain.RecipeRef, error)
}
