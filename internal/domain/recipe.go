package domain

// RecipeItem is a single ingredient quantity in a recipe.
type RecipeItem struct {
	Ingredient Ingredient
	Amount     float64
	Unit       Unit
}

// Measurement returns the item as a Measurement with its ingredient attached.
// A zero Ingredient is left off.
func (it RecipeItem) Measurement() Measurement {
	if it.Ingredient.IsZero() {
		return NewMeasurement(it.Amount, it.Unit)
	}
	return NewMeasurement(it.Amount, it.Unit, WithIngredient(it.Ingredient))
}

// Recipe groups ingredient quantities under a name.
type Recipe struct {
	Name  string
	Items []RecipeItem
}

func (r *Recipe) Add(item RecipeItem) {
	r.Items = append(r.Items, item)
}

// Remove drops the item at index i. It reports false when i is out of range.
func (r *Recipe) Remove(i int) bool {
	if i < 0 || i >= len(r.Items) {
		return false
	}
	r.Items = append(r.Items[:i:i], r.Items[i+1:]...)
	return true
}

// Categories returns the distinct categories used by the recipe, in first-seen order.
func (r Recipe) Categories() []Category {
	seen := map[Category]bool{}
	var out []Category
	for _, it := range r.Items {
		c := it.Ingredient.Category()
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// RecipeRef is a lightweight reference to a recipe file on disk.
type RecipeRef struct {
	Name string
	Path string
}

// CategoryShare is the weight of one category within a recipe.
type CategoryShare struct {
	Category Category `json:"category"`
	Grams    float64  `json:"grams"`
	Percent  float64  `json:"percent"`
	Items    int      `json:"items"`
}

// RecipeSummary is the per-category weight breakdown of a recipe.
type RecipeSummary struct {
	Name       string          `json:"name"`
	TotalGrams float64         `json:"total_grams"`
	Categories []CategoryShare `json:"categories"`
}
