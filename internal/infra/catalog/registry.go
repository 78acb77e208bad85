// Package catalog keeps the in-memory ingredient registry the conversion
// use cases resolve names against.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/aalvaropc/cookiecalc/internal/domain"
	"github.com/aalvaropc/cookiecalc/internal/ports"
)

// Registry is a name-keyed set of ingredients. Keys ignore case and
// whitespace, so "All Purpose Flour" and "allpurposeflour" collide.
//
// Entries are immutable values; updates replace the whole entry under the
// write lock.
type Registry struct {
	mu    sync.RWMutex
	items map[string]domain.Ingredient
}

type Option func(*Registry)

// WithBuiltins seeds the registry with domain.BuiltinIngredients.
func WithBuiltins() Option {
	return func(r *Registry) {
		for _, ing := range domain.BuiltinIngredients() {
			r.items[Key(ing.Name())] = ing
		}
	}
}

// WithIngredients seeds the registry, later entries overriding earlier ones.
func WithIngredients(list []domain.Ingredient) Option {
	return func(r *Registry) {
		for _, ing := range list {
			r.items[Key(ing.Name())] = ing
		}
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{items: map[string]domain.Ingredient{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.IngredientCatalog = (*Registry)(nil)

// Key normalizes an ingredient name for lookups.
func Key(name string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
	return cases.Fold().String(stripped)
}

// Add inserts ing and fails with KindConflict when the name is taken.
func (r *Registry) Add(ing domain.Ingredient) error {
	k, err := keyFor("catalog.add", ing)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[k]; ok {
		return &domain.OpError{
			Op:   "catalog.add",
			Kind: domain.KindConflict,
			Err:  fmt.Errorf("ingredient %q already registered as %q: %w", ing.Name(), existing.Name(), domain.ErrConflict),
		}
	}
	r.items[k] = ing
	return nil
}

// Set inserts or replaces ing. It reports whether the entry is new.
func (r *Registry) Set(ing domain.Ingredient) (bool, error) {
	k, err := keyFor("catalog.set", ing)
	if err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.items[k]
	r.items[k] = ing
	return !existed, nil
}

// Remove deletes the named ingredient. It reports whether anything was removed.
func (r *Registry) Remove(name string) bool {
	k := Key(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[k]; !ok {
		return false
	}
	delete(r.items, k)
	return true
}

func (r *Registry) Lookup(name string) (domain.Ingredient, error) {
	r.mu.RLock()
	ing, ok := r.items[Key(name)]
	r.mu.RUnlock()

	if !ok {
		return domain.Ingredient{}, &domain.OpError{
			Op:   "catalog.lookup",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("ingredient %q: %w", name, domain.ErrNotFound),
		}
	}
	return ing, nil
}

// List returns a snapshot sorted by name.
func (r *Registry) List() []domain.Ingredient {
	r.mu.RLock()
	out := make([]domain.Ingredient, 0, len(r.items))
	for _, ing := range r.items {
		out = append(out, ing)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func keyFor(op string, ing domain.Ingredient) (string, error) {
	k := Key(ing.Name())
	if k == "" || ing.Density() <= 0 {
		return "", &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("ingredient must be built with domain.NewIngredient: %w", domain.ErrInvalidConfig),
		}
	}
	return k, nil
}
