package yamlcatalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/cookiecalc/internal/domain"
	"github.com/aalvaropc/cookiecalc/internal/infra/catalog"
	"github.com/aalvaropc/cookiecalc/internal/infra/config"
	"github.com/aalvaropc/cookiecalc/internal/ports"
)

type Loader struct {
	rootDir         string
	ingredientsFile string
	builtins        bool
}

type Option func(*Loader)

func WithIngredientsFile(name string) Option {
	return func(l *Loader) { l.ingredientsFile = name }
}

// WithBuiltins controls whether the stock ingredients are seeded before the
// workspace file is applied. Enabled by default.
func WithBuiltins(enabled bool) Option {
	return func(l *Loader) { l.builtins = enabled }
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		rootDir:         root,
		ingredientsFile: "ingredients.yaml",
		builtins:        true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.IngredientLoader = (*Loader)(nil)

func (l *Loader) LoadIngredients(path string) ([]domain.Ingredient, error) {
	return config.LoadIngredients(path)
}

// Path is the resolved location of the workspace ingredients file.
func (l *Loader) Path() string {
	if filepath.IsAbs(l.ingredientsFile) {
		return l.ingredientsFile
	}
	return filepath.Join(l.rootDir, l.ingredientsFile)
}

// Load builds a registry from the builtins overlaid with the workspace file.
// The workspace file is optional; its entries override builtins by name.
func (l *Loader) Load() (*catalog.Registry, error) {
	var opts []catalog.Option
	if l.builtins {
		opts = append(opts, catalog.WithBuiltins())
	}

	custom, err := l.readOptional(l.Path())
	if err != nil {
		return nil, err
	}
	opts = append(opts, catalog.WithIngredients(custom))

	return catalog.NewRegistry(opts...), nil
}

func (l *Loader) readOptional(path string) ([]domain.Ingredient, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &domain.OpError{
			Op:   "yamlcatalog.stat",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	list, err := l.LoadIngredients(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}
	return list, nil
}
