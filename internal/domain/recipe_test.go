package domain

import "testing"

func TestRecipe_AddRemove(t *testing.T) {
	flour := MustIngredient("Cake Flour", CategoryFlour, 0.51)
	sugar := MustIngredient("Caster Sugar", CategorySugar, 0.8)

	var r Recipe
	r.Add(RecipeItem{Ingredient: flour, Amount: 2, Unit: Cup})
	r.Add(RecipeItem{Ingredient: sugar, Amount: 100, Unit: Gram})
	r.Add(RecipeItem{Ingredient: flour, Amount: 1, Unit: Tablespoon})

	if len(r.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(r.Items))
	}
	if r.Remove(3) || r.Remove(-1) {
		t.Fatalf("expected out-of-range Remove to report false")
	}
	if !r.Remove(1) {
		t.Fatalf("expected Remove(1) to succeed")
	}
	if len(r.Items) != 2 || r.Items[1].Unit != Tablespoon {
		t.Fatalf("unexpected items after remove: %+v", r.Items)
	}
}

func TestRecipe_RemoveDoesNotAliasOriginal(t *testing.T) {
	flour := MustIngredient("Cake Flour", CategoryFlour, 0.51)
	r := Recipe{Items: []RecipeItem{
		{Ingredient: flour, Amount: 1, Unit: Cup},
		{Ingredient: flour, Amount: 2, Unit: Cup},
		{Ingredient: flour, Amount: 3, Unit: Cup},
	}}
	orig := r.Items

	r.Remove(0)

	if orig[0].Amount != 1 {
		t.Fatalf("expected original backing array untouched, got %+v", orig)
	}
}

func TestRecipe_Categories(t *testing.T) {
	r := Recipe{Items: []RecipeItem{
		{Ingredient: MustIngredient("Butter", CategoryFat, 0.911), Amount: 1, Unit: Cup},
		{Ingredient: MustIngredient("Cake Flour", CategoryFlour, 0.51), Amount: 1, Unit: Cup},
		{Ingredient: MustIngredient("Oil", CategoryFat, 0.92), Amount: 1, Unit: Tablespoon},
	}}

	got := r.Categories()
	if len(got) != 2 || got[0] != CategoryFat || got[1] != CategoryFlour {
		t.Fatalf("unexpected categories: %v", got)
	}
}

func TestRecipeItem_Measurement(t *testing.T) {
	butter := MustIngredient("Butter", CategoryFat, 0.911)
	m := RecipeItem{Ingredient: butter, Amount: 0.5, Unit: Cup}.Measurement()

	ing, ok := m.Ingredient()
	if !ok || ing.Name() != "Butter" {
		t.Fatalf("expected butter attached, got %v %v", ing, ok)
	}
	if m.Amount() != 0.5 || m.Unit() != Cup {
		t.Fatalf("unexpected measurement: %s", m)
	}

	bare := RecipeItem{Amount: 1, Unit: Cup}.Measurement()
	if _, ok := bare.Ingredient(); ok {
		t.Fatalf("expected zero ingredient to be left off")
	}
	if _, err := bare.ConvertTo(Gram); !IsKind(err, KindMissingIngredient) {
		t.Fatalf("expected KindMissingIngredient, got %v", err)
	}
}
