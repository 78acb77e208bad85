package ports

import "github.com/aalvaropc/cookiecalc/internal/domain"

// IngredientLoader loads ingredient descriptors from a source (e.g., filesystem).
type IngredientLoader interface {
	LoadIngredients(path string) ([]domain.Ingredient, error)
}
