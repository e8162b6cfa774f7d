// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/chefbyte/v1/internal/domain/nutrition"
)

// PlannerService defines the meal planning use cases
// This is the primary port that HTTP handlers and other driving adapters will use
type PlannerService interface {
	// SearchRecipes scores the catalog against the available ingredients
	// and returns viable recipes ordered best-first
	SearchRecipes(ctx context.Context, query SearchRecipesQuery) (*SearchResult, error)

	// PlanMeals selects a set of meals from the scored catalog, resolves
	// their nutrition and attaches daily advice
	PlanMeals(ctx context.Context, cmd PlanMealsCommand) (*MealPlan, error)
}

// SearchRecipesQuery defines recipe search parameters. Diets holds
// dietary constraints that must all be satisfied.
type SearchRecipesQuery struct {
	Available  []string
	Diets      []string
	Cuisine    string
	MaxMissing *int
	Limit      int
}

// PlanMealsCommand contains data for building a meal plan
type PlanMealsCommand struct {
	Available     []string
	MealCount     int
	CalorieTarget float64
	ProteinTarget float64
	Diets         []string
	Cuisine       string
	MaxMissing    *int
}

// FiltersApplied echoes back the effective filters of a search
type FiltersApplied struct {
	Diets      []string `json:"dietary_constraints,omitempty"`
	Cuisine    string   `json:"cuisine,omitempty"`
	MaxMissing int      `json:"max_missing"`
}

// RecipeMacros carries the embedded per-serving macros of a recipe
type RecipeMacros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// ScoredRecipe is the data transfer object for a scored recipe
type ScoredRecipe struct {
	Name             string        `json:"name"`
	Score            float64       `json:"score"`
	Ingredients      []string      `json:"ingredients"`
	Matched          []string      `json:"matched_ingredients"`
	Missing          []string      `json:"missing_ingredients"`
	MatchedCount     int           `json:"match_count"`
	MissingCount     int           `json:"missing_count"`
	TotalIngredients int           `json:"total_ingredients"`
	DietTags         []string      `json:"dietary_tags,omitempty"`
	Cuisine          string        `json:"cuisine,omitempty"`
	Meals            []string      `json:"meals,omitempty"`
	PrepTime         int           `json:"prep_time,omitempty"`
	Difficulty       string        `json:"difficulty,omitempty"`
	Macros           *RecipeMacros `json:"macros,omitempty"`
}

// SearchResult is the search response envelope
type SearchResult struct {
	Success        bool           `json:"success"`
	Recipes        []ScoredRecipe `json:"recipes"`
	TotalFound     int            `json:"total_found"`
	FiltersApplied FiltersApplied `json:"filters_applied"`
}

// ResolvedMeal is a selected meal with its resolved nutrition
type ResolvedMeal struct {
	Name       string          `json:"name"`
	Score      float64         `json:"score"`
	Nutrition  nutrition.Facts `json:"nutrition"`
	Source     string          `json:"source"`
	Confidence float64         `json:"confidence"`
}

// MealPlan is the meal plan response envelope
type MealPlan struct {
	Success   bool            `json:"success"`
	Meals     []ResolvedMeal  `json:"selected_meals"`
	Totals    nutrition.Facts `json:"total_nutrition"`
	Advice    []string        `json:"recommendations"`
	MealCount int             `json:"meal_count"`
}
