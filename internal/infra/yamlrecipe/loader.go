package yamlrecipe

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/cookiecalc/internal/domain"
	"github.com/aalvaropc/cookiecalc/internal/infra/config"
	"github.com/aalvaropc/cookiecalc/internal/ports"
)

type Loader struct {
	recipesDir string
	catalog    ports.IngredientCatalog
}

func NewLoader(cat ports.IngredientCatalog, opts ...Option) *Loader {
	l := &Loader{recipesDir: "recipes", catalog: cat}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithRecipesDir(dir string) Option {
	return func(l *Loader) { l.recipesDir = dir }
}

var _ ports.RecipeLoader = (*Loader)(nil)

// LoadRecipe reads a recipe file and resolves its ingredients through the catalog.
func (l *Loader) LoadRecipe(path string) (domain.Recipe, error) {
	return config.LoadRecipe(path, l.catalog)
}

func (l *Loader) ListRecipes(root string) ([]domain.RecipeRef, error) {
	dir := filepath.Join(root, l.recipesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlrecipe.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.RecipeRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readRecipeName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.RecipeRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readRecipeName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}
