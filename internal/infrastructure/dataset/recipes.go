package dataset

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/chefbyte/v1/internal/domain/recipe"
	"github.com/chefbyte/v1/internal/ports/outbound"
)

// Column aliases accepted for recipe datasets
var (
	recipeNameAliases        = []string{"name", "recipe_name", "recipe", "title"}
	recipeIngredientsAliases = []string{"ingredients", "ingredient_list", "ingredients_list"}
	recipeDietAliases        = []string{"dietary_tags", "diet", "diet_type", "dietary", "tags"}
	recipeCuisineAliases     = []string{"cuisine", "cuisine_type"}
	recipeMealsAliases       = []string{"meal", "meal_type", "meals"}
	recipePrepTimeAliases    = []string{"prep_time", "prep_time_minutes", "preparation_time"}
	recipeDifficultyAliases  = []string{"difficulty", "difficulty_level"}

	caloriesAliases = []string{"calories", "kcal", "energy"}
	proteinAliases  = []string{"protein", "protein_g", "proteins"}
	carbsAliases    = []string{"carbs", "carbs_g", "carbohydrates"}
	fatAliases      = []string{"fat", "fat_g", "fats"}
	fiberAliases    = []string{"fiber", "fiber_g", "fibre"}
)

// RecipeCatalog loads recipes from a CSV file once and serves them from
// memory. It implements outbound.RecipeCatalog.
type RecipeCatalog struct {
	path   string
	logger *zap.Logger

	once    sync.Once
	recipes []*recipe.Recipe
}

// NewRecipeCatalog creates a catalog backed by the CSV at path
func NewRecipeCatalog(path string, logger *zap.Logger) outbound.RecipeCatalog {
	return &RecipeCatalog{
		path:   path,
		logger: logger.Named("recipe-catalog"),
	}
}

// All returns every recipe in the catalog, loading lazily on first use
func (c *RecipeCatalog) All(ctx context.Context) ([]*recipe.Recipe, error) {
	c.once.Do(c.load)
	return c.recipes, nil
}

// Len returns the number of loaded recipes
func (c *RecipeCatalog) Len() int {
	c.once.Do(c.load)
	return len(c.recipes)
}

func (c *RecipeCatalog) load() {
	head, rows, err := readCSV(c.path)
	if err != nil {
		c.logger.Warn("Recipe dataset unavailable, serving empty catalog",
			zap.String("path", c.path),
			zap.Error(err),
		)
		return
	}

	recipes := make([]*recipe.Recipe, 0, len(rows))
	for _, row := range rows {
		name, ok := head.field(row, recipeNameAliases...)
		if !ok {
			continue
		}
		rawIngredients, _ := head.field(row, recipeIngredientsAliases...)

		// A missing ingredients cell defaults to an empty list, such a
		// recipe loads but scores zero against any pantry.
		r, err := recipe.NewRecipe(name, splitList(rawIngredients))
		if err != nil {
			c.logger.Debug("Skipping malformed recipe row",
				zap.String("name", name),
				zap.Error(err),
			)
			continue
		}

		diet, _ := head.field(row, recipeDietAliases...)
		cuisine, _ := head.field(row, recipeCuisineAliases...)
		r.Classify(diet, cuisine)

		if meals, ok := head.field(row, recipeMealsAliases...); ok {
			r.SetMeals(splitList(meals))
		}
		if prep, ok := head.floatField(row, recipePrepTimeAliases...); ok {
			r.SetPrepTime(int(prep))
		}
		if difficulty, ok := head.field(row, recipeDifficultyAliases...); ok {
			r.SetDifficulty(difficulty)
		}

		// Embedded macros need all four core fields on the row
		calories, hasCal := head.floatField(row, caloriesAliases...)
		protein, hasProt := head.floatField(row, proteinAliases...)
		carbs, hasCarbs := head.floatField(row, carbsAliases...)
		fat, hasFat := head.floatField(row, fatAliases...)
		if hasCal && hasProt && hasCarbs && hasFat {
			fiber, _ := head.floatField(row, fiberAliases...)
			if err := r.AttachMacros(recipe.Macros{
				Calories: calories,
				Protein:  protein,
				Carbs:    carbs,
				Fat:      fat,
				Fiber:    fiber,
			}); err != nil {
				c.logger.Debug("Skipping malformed macros",
					zap.String("name", name),
					zap.Error(err),
				)
			}
		}

		recipes = append(recipes, r)
	}

	c.recipes = recipes
	c.logger.Info("Recipe dataset loaded",
		zap.String("path", c.path),
		zap.Int("recipes", len(recipes)),
	)
}
