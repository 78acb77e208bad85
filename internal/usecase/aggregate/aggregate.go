// Package aggregate computes per-category weight totals for recipes. Every
// quantity is normalized to grams through Measurement.ConvertTo before it is
// summed.
package aggregate

import (
	"fmt"

	"github.com/aalvaropc/cookiecalc/internal/domain"
)

// ByCategory groups recipe items by ingredient category. Every known category
// is a key; unused ones map to an empty slice. Items keep recipe order.
func ByCategory(r domain.Recipe) map[domain.Category][]domain.RecipeItem {
	out := make(map[domain.Category][]domain.RecipeItem, len(domain.Categories()))
	for _, c := range domain.Categories() {
		out[c] = []domain.RecipeItem{}
	}
	for _, it := range r.Items {
		c := it.Ingredient.Category()
		out[c] = append(out[c], it)
	}
	return out
}

// Grams converts one item to grams.
func Grams(it domain.RecipeItem) (float64, error) {
	g, err := it.Measurement().ConvertTo(domain.Gram)
	if err != nil {
		return 0, err
	}
	return g.Amount(), nil
}

// CategoryTotal sums the grams of every item in category c.
func CategoryTotal(r domain.Recipe, c domain.Category) (float64, error) {
	var total float64
	for i, it := range r.Items {
		if it.Ingredient.Category() != c {
			continue
		}
		g, err := Grams(it)
		if err != nil {
			return 0, itemError(r, i, err)
		}
		total += g
	}
	return total, nil
}

// TotalWeight sums the grams of every item in the recipe.
func TotalWeight(r domain.Recipe) (float64, error) {
	var total float64
	for i, it := range r.Items {
		g, err := Grams(it)
		if err != nil {
			return 0, itemError(r, i, err)
		}
		total += g
	}
	return total, nil
}

// CategoryPercentage is CategoryTotal as a percentage of TotalWeight.
// It is 0 when the recipe weighs nothing.
func CategoryPercentage(r domain.Recipe, c domain.Category) (float64, error) {
	total, err := TotalWeight(r)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	part, err := CategoryTotal(r, c)
	if err != nil {
		return 0, err
	}
	return part / total * 100, nil
}

// Summarize converts each item once and reports the used categories in
// canonical order.
func Summarize(r domain.Recipe) (domain.RecipeSummary, error) {
	grams := map[domain.Category]float64{}
	counts := map[domain.Category]int{}
	var total float64

	for i, it := range r.Items {
		g, err := Grams(it)
		if err != nil {
			return domain.RecipeSummary{}, itemError(r, i, err)
		}
		c := it.Ingredient.Category()
		grams[c] += g
		counts[c]++
		total += g
	}

	s := domain.RecipeSummary{Name: r.Name, TotalGrams: total}
	for _, c := range domain.Categories() {
		n, ok := counts[c]
		if !ok {
			continue
		}
		share := domain.CategoryShare{Category: c, Grams: grams[c], Items: n}
		if total > 0 {
			share.Percent = grams[c] / total * 100
		}
		s.Categories = append(s.Categories, share)
	}
	return s, nil
}

func itemError(r domain.Recipe, i int, err error) error {
	return &domain.OpError{
		Op:   "aggregate.item",
		Kind: domain.KindOf(err),
		Err:  fmt.Errorf("%s: items[%d] %s: %w", r.Name, i, r.Items[i].Ingredient.DisplayName(), err),
	}
}
