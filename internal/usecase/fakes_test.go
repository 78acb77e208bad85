package usecase

import (
	"strings"

	"github.com/aalvaropc/cookiecalc/internal/domain"
)

type fakeCatalog map[string]domain.Ingredient

func (f fakeCatalog) Lookup(name string) (domain.Ingredient, error) {
	if ing, ok := f[strings.ToLower(name)]; ok {
		return ing, nil
	}
	return domain.Ingredient{}, &domain.OpError{Op: "fake.lookup", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
}

func (f fakeCatalog) List() []domain.Ingredient {
	out := make([]domain.Ingredient, 0, len(f))
	for _, ing := range f {
		out = append(out, ing)
	}
	return out
}

type fakeRecipeLoader struct {
	recipe   domain.Recipe
	err      error
	lastPath string
}

func (f *fakeRecipeLoader) LoadRecipe(path string) (domain.Recipe, error) {
	f.lastPath = path
	return f.recipe, f.err
}

func (f *fakeRecipeLoader) ListRecipes(_ string) ([]domain.RecipeRef, error) {
	return []domain.RecipeRef{{Name: f.recipe.Name, Path: f.lastPath}}, nil
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return f.err
}

var testCatalog = fakeCatalog{
	"all purpose flour": domain.MustIngredient("All Purpose Flour", domain.CategoryFlour, 0.530),
	"granulated sugar":  domain.MustIngredient("Granulated Sugar", domain.CategorySugar, 0.800),
	"butter":            domain.MustIngredient("Butter", domain.CategoryFat, 0.911),
}
