package ports

import "github.com/aalvaropc/cookiecalc/internal/domain"

// IngredientCatalog resolves ingredient descriptors by name.
type IngredientCatalog interface {
	Lookup(name string) (domain.Ingredient, error)
	List() []domain.Ingredient
}
