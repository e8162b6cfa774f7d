// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/chefbyte/v1/internal/domain/recipe"
)

// pantryIngredients is a pool of realistic ingredient names for generated recipes
var pantryIngredients = []string{
	"tomato", "onion", "garlic", "rice", "pasta", "chicken", "beef",
	"olive oil", "basil", "cheese", "egg", "spinach", "mushroom",
	"bell pepper", "carrot", "potato", "lentils", "chickpeas", "tofu",
}

// RecipeFactory generates random but coherent test recipes
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a new recipe factory with seeded faker
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{
		faker: gofakeit.New(seed),
	}
}

// CreateRecipe builds a recipe with a random name and ingredient set
func (f *RecipeFactory) CreateRecipe() *recipe.Recipe {
	count := f.faker.Number(2, 6)
	ingredients := make([]string, 0, count)
	seen := make(map[string]bool)
	for len(ingredients) < count {
		ing := f.faker.RandomString(pantryIngredients)
		if seen[ing] {
			continue
		}
		seen[ing] = true
		ingredients = append(ingredients, ing)
	}

	name := fmt.Sprintf("%s %s", capitalize(ingredients[0]), f.faker.RandomString([]string{
		"Bowl", "Stir Fry", "Soup", "Salad", "Bake", "Curry",
	}))

	r, err := recipe.NewRecipe(name, ingredients)
	if err != nil {
		panic(fmt.Sprintf("factory produced invalid recipe: %v", err))
	}
	return r
}

// CreateRecipes builds count random recipes
func (f *RecipeFactory) CreateRecipes(count int) []*recipe.Recipe {
	recipes := make([]*recipe.Recipe, count)
	for i := range recipes {
		recipes[i] = f.CreateRecipe()
	}
	return recipes
}

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	name        string
	ingredients []string
	diet        string
	cuisine     string
	meals       []string
	macros      *recipe.Macros
}

// NewRecipeBuilder creates a new recipe builder with default values
func NewRecipeBuilder() *RecipeBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	return &RecipeBuilder{
		name:        faker.Sentence(3),
		ingredients: []string{"rice", "tomato"},
	}
}

// WithName sets the recipe name
func (rb *RecipeBuilder) WithName(name string) *RecipeBuilder {
	rb.name = name
	return rb
}

// WithIngredients sets the recipe ingredients
func (rb *RecipeBuilder) WithIngredients(ingredients ...string) *RecipeBuilder {
	rb.ingredients = ingredients
	return rb
}

// WithDiet sets the dietary tags text, e.g. "vegan, gluten_free"
func (rb *RecipeBuilder) WithDiet(diet string) *RecipeBuilder {
	rb.diet = diet
	return rb
}

// WithCuisine sets the cuisine label
func (rb *RecipeBuilder) WithCuisine(cuisine string) *RecipeBuilder {
	rb.cuisine = cuisine
	return rb
}

// WithMeals sets the meal slots
func (rb *RecipeBuilder) WithMeals(meals ...string) *RecipeBuilder {
	rb.meals = meals
	return rb
}

// WithMacros attaches embedded nutrition data
func (rb *RecipeBuilder) WithMacros(calories, protein, carbs, fat, fiber float64) *RecipeBuilder {
	rb.macros = &recipe.Macros{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Fiber:    fiber,
	}
	return rb
}

// Build creates the recipe entity
func (rb *RecipeBuilder) Build() (*recipe.Recipe, error) {
	r, err := recipe.NewRecipe(rb.name, rb.ingredients)
	if err != nil {
		return nil, err
	}
	r.Classify(rb.diet, rb.cuisine)
	if len(rb.meals) > 0 {
		r.SetMeals(rb.meals)
	}
	if rb.macros != nil {
		if err := r.AttachMacros(*rb.macros); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustBuild creates the recipe entity and panics on error
func (rb *RecipeBuilder) MustBuild() *recipe.Recipe {
	r, err := rb.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build test recipe: %v", err))
	}
	return r
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
