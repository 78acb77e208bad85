package config

type YAMLIngredients struct {
	Ingredients []YAMLIngredient `yaml:"ingredients"`
}

type YAMLIngredient struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Density  *float64 `yaml:"density"`
}

type YAMLRecipe struct {
	Name  string           `yaml:"name"`
	Items []YAMLRecipeItem `yaml:"items"`
}

type YAMLRecipeItem struct {
	Ingredient string   `yaml:"ingredient"`
	Amount     *float64 `yaml:"amount"`
	Unit       string   `yaml:"unit"`
}
