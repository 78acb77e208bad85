package domain

import (
	"fmt"
	"math"
	"strings"
)

// Category groups ingredients so a recipe can be balanced per group.
type Category string

const (
	CategoryFlour     Category = "flour"
	CategorySugar     Category = "sugar"
	CategoryFat       Category = "fat"
	CategoryLiquid    Category = "liquid"
	CategoryLeavening Category = "leavening"
	CategoryOther     Category = "other"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryFlour,
		CategorySugar,
		CategoryFat,
		CategoryLiquid,
		CategoryLeavening,
		CategoryOther,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryFlour, CategorySugar, CategoryFat, CategoryLiquid, CategoryLeavening, CategoryOther:
		return true
	}
	return false
}

// DisplayName is the capitalized label ("Flour", "Leavening").
func (c Category) DisplayName() string {
	if !c.Valid() {
		return "Unknown"
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseCategory accepts a category label in any case. An empty string maps to
// CategoryOther.
func ParseCategory(s string) (Category, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return CategoryOther, nil
	}
	c := Category(in)
	if !c.Valid() {
		return "", &OpError{
			Op:   "ingredient.category",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("unsupported category %q: %w", s, ErrInvalidConfig),
		}
	}
	return c, nil
}

// Ingredient is an immutable descriptor. Density is grams per milliliter.
// Build it with NewIngredient; the zero value has no density and cannot bridge
// volume and weight.
type Ingredient struct {
	name     string
	category Category
	density  float64
}

// NewIngredient validates and builds a descriptor. Density must be finite and
// strictly positive.
func NewIngredient(name string, category Category, density float64) (Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Ingredient{}, &OpError{
			Op:   "ingredient.new",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("ingredient name is required: %w", ErrInvalidConfig),
		}
	}
	if math.IsNaN(density) || math.IsInf(density, 0) || density <= 0 {
		return Ingredient{}, conversionError("ingredient.new", KindInvalidDensity, ErrInvalidDensity,
			"ingredient %q: density must be > 0 g/ml, got %v", name, density)
	}
	if category == "" {
		category = CategoryOther
	}
	if !category.Valid() {
		return Ingredient{}, &OpError{
			Op:   "ingredient.new",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("ingredient %q: unsupported category %q: %w", name, category, ErrInvalidConfig),
		}
	}
	return Ingredient{name: name, category: category, density: density}, nil
}

// MustIngredient is NewIngredient for package-level tables; it panics on error.
func MustIngredient(name string, category Category, density float64) Ingredient {
	ing, err := NewIngredient(name, category, density)
	if err != nil {
		panic(err)
	}
	return ing
}

func (i Ingredient) Name() string       { return i.name }
func (i Ingredient) Category() Category { return i.category }
func (i Ingredient) Density() float64   { return i.density }

// IsZero reports whether i was not built by NewIngredient.
func (i Ingredient) IsZero() bool { return i == Ingredient{} }

// DisplayName is the lowercased name ("all purpose flour").
func (i Ingredient) DisplayName() string {
	return strings.ToLower(i.name)
}

func (i Ingredient) String() string {
	return fmt.Sprintf("%s (%s, %.3f g/ml)", i.name, i.category, i.density)
}

// BuiltinIngredients returns the stock baking ingredients with their densities.
// Each call returns a fresh slice.
func BuiltinIngredients() []Ingredient {
	return []Ingredient{
		MustIngredient("All Purpose Flour", CategoryFlour, 0.530),
		MustIngredient("Cake Flour", CategoryFlour, 0.510),
		MustIngredient("Whole Wheat Flour", CategoryFlour, 0.520),

		MustIngredient("Granulated Sugar", CategorySugar, 0.800),
		MustIngredient("Caster Sugar", CategorySugar, 0.800),
		MustIngredient("Brown Sugar", CategorySugar, 0.850),
		MustIngredient("Powdered Sugar", CategorySugar, 0.560),

		MustIngredient("Butter", CategoryFat, 0.911),
		MustIngredient("Oil", CategoryFat, 0.920),
		MustIngredient("Shortening", CategoryFat, 0.885),

		MustIngredient("Water", CategoryLiquid, 1.000),
		MustIngredient("Milk", CategoryLiquid, 1.032),
		MustIngredient("Eggs", CategoryLiquid, 1.050),
		MustIngredient("Honey", CategoryLiquid, 1.420),
		MustIngredient("Maple Syrup", CategoryLiquid, 1.380),

		MustIngredient("Baking Powder", CategoryLeavening, 1.600),
		MustIngredient("Baking Soda", CategoryLeavening, 2.200),
		MustIngredient("Yeast", CategoryLeavening, 1.050),

		MustIngredient("Salt", CategoryOther, 2.160),
		MustIngredient("Vanilla Extract", CategoryOther, 0.880),
		MustIngredient("Cocoa Powder", CategoryOther, 0.600),
	}
}
