package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/cookiecalc/internal/domain"
)

var (
	flour  = domain.MustIngredient("All Purpose Flour", domain.CategoryFlour, 0.530)
	sugar  = domain.MustIngredient("Granulated Sugar", domain.CategorySugar, 0.800)
	butter = domain.MustIngredient("Butter", domain.CategoryFat, 0.911)
	oil    = domain.MustIngredient("Oil", domain.CategoryFat, 0.920)
)

func cookies() domain.Recipe {
	return domain.Recipe{
		Name: "Cookies",
		Items: []domain.RecipeItem{
			{Ingredient: flour, Amount: 1, Unit: domain.Cup},
			{Ingredient: sugar, Amount: 100, Unit: domain.Gram},
			{Ingredient: butter, Amount: 50, Unit: domain.Gram},
			{Ingredient: oil, Amount: 0.1, Unit: domain.Kilogram},
		},
	}
}

func TestByCategory(t *testing.T) {
	groups := ByCategory(cookies())

	require.Len(t, groups, len(domain.Categories()))
	for _, c := range domain.Categories() {
		items, ok := groups[c]
		require.True(t, ok, "category %q missing", c)
		assert.NotNil(t, items, "category %q", c)
	}

	assert.Len(t, groups[domain.CategoryFlour], 1)
	assert.Len(t, groups[domain.CategorySugar], 1)
	require.Len(t, groups[domain.CategoryFat], 2)
	assert.Equal(t, "Butter", groups[domain.CategoryFat][0].Ingredient.Name())
	assert.Empty(t, groups[domain.CategoryLiquid])
	assert.Empty(t, groups[domain.CategoryLeavening])
	assert.Empty(t, groups[domain.CategoryOther])
}

func TestByCategory_EmptyRecipe(t *testing.T) {
	groups := ByCategory(domain.Recipe{Name: "Nothing"})

	require.Len(t, groups, len(domain.Categories()))
	for c, items := range groups {
		assert.Empty(t, items, "category %q", c)
	}
}

func TestCategoryTotal(t *testing.T) {
	r := cookies()

	got, err := CategoryTotal(r, domain.CategoryFlour)
	require.NoError(t, err)
	assert.InDelta(t, 125.39164, got, 1e-9)

	got, err = CategoryTotal(r, domain.CategoryFat)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, got, 1e-9)

	got, err = CategoryTotal(r, domain.CategoryLeavening)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestTotalWeightAndPercentage(t *testing.T) {
	r := cookies()

	total, err := TotalWeight(r)
	require.NoError(t, err)
	assert.InDelta(t, 375.39164, total, 1e-9)

	pct, err := CategoryPercentage(r, domain.CategorySugar)
	require.NoError(t, err)
	assert.InDelta(t, 100/375.39164*100, pct, 1e-9)
}

func TestCategoryPercentage_EmptyRecipe(t *testing.T) {
	pct, err := CategoryPercentage(domain.Recipe{Name: "Nothing"}, domain.CategoryFlour)
	require.NoError(t, err)
	assert.Zero(t, pct)

	zero := domain.Recipe{Items: []domain.RecipeItem{{Ingredient: flour, Amount: 0, Unit: domain.Cup}}}
	pct, err = CategoryPercentage(zero, domain.CategoryFlour)
	require.NoError(t, err)
	assert.Zero(t, pct)
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(cookies())
	require.NoError(t, err)

	assert.Equal(t, "Cookies", s.Name)
	assert.InDelta(t, 375.39164, s.TotalGrams, 1e-9)
	require.Len(t, s.Categories, 3)

	// canonical order: flour, sugar, fat
	assert.Equal(t, domain.CategoryFlour, s.Categories[0].Category)
	assert.Equal(t, domain.CategorySugar, s.Categories[1].Category)
	assert.Equal(t, domain.CategoryFat, s.Categories[2].Category)
	assert.Equal(t, 2, s.Categories[2].Items)

	var sum float64
	for _, c := range s.Categories {
		sum += c.Percent
	}
	assert.InDelta(t, 100, sum, 1e-9)
}

func TestSummarize_ItemErrorCarriesKind(t *testing.T) {
	r := domain.Recipe{
		Name: "Broken",
		Items: []domain.RecipeItem{
			{Ingredient: flour, Amount: 1, Unit: domain.Cup},
			{Amount: 1, Unit: domain.Tablespoon},
		},
	}

	_, err := Summarize(r)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindMissingIngredient))
	assert.ErrorIs(t, err, domain.ErrMissingIngredient)
	assert.Contains(t, err.Error(), "items[1]")

	_, err = TotalWeight(r)
	assert.ErrorIs(t, err, domain.ErrMissingIngredient)
}
