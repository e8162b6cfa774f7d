package planner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefbyte/v1/internal/domain/nutrition"
	"github.com/chefbyte/v1/internal/domain/recipe"
	"github.com/chefbyte/v1/internal/ports/inbound"
	"github.com/chefbyte/v1/pkg/logger"
)

type fakeCatalog struct {
	recipes []*recipe.Recipe
}

func (f *fakeCatalog) All(ctx context.Context) ([]*recipe.Recipe, error) {
	return f.recipes, nil
}

func (f *fakeCatalog) Len() int {
	return len(f.recipes)
}

type fakeNutrition struct {
	table *nutrition.Table
}

func (f *fakeNutrition) Table(ctx context.Context) (*nutrition.Table, error) {
	return f.table, nil
}

type fakeCache struct {
	store map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	return f.store[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.store[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.store[key]
	return ok, nil
}

func testCatalog(t *testing.T) *fakeCatalog {
	t.Helper()

	pasta := mustRecipe(t, "Tomato Pasta", "pasta", "tomato", "garlic", "olive oil")
	pasta.Classify("vegetarian", "italian")

	stirfry := mustRecipe(t, "Chicken Stir Fry", "chicken", "rice", "soy sauce", "ginger")
	stirfry.Classify("", "chinese")

	salad := mustRecipe(t, "Garden Salad", "tomato", "cucumber", "lettuce")
	salad.Classify("vegan, gluten_free", "")
	salad.SetMeals([]string{"lunch"})
	require.NoError(t, salad.AttachMacros(recipe.Macros{Calories: 120, Protein: 4, Carbs: 18, Fat: 3, Fiber: 6}))

	return &fakeCatalog{recipes: []*recipe.Recipe{pasta, stirfry, salad}}
}

func newTestService(t *testing.T, catalog *fakeCatalog) inbound.PlannerService {
	t.Helper()
	return NewService(catalog, &fakeNutrition{table: referenceTable()}, newFakeCache(), logger.NewNop())
}

func TestSearchRecipes(t *testing.T) {
	svc := newTestService(t, testCatalog(t))
	ctx := context.Background()

	t.Run("ReturnsEnvelope", func(t *testing.T) {
		result, err := svc.SearchRecipes(ctx, inbound.SearchRecipesQuery{
			Available: []string{"tomato", "pasta", "garlic"},
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.NotEmpty(t, result.Recipes)
		assert.Equal(t, len(result.Recipes), result.TotalFound)
		// Small pantries relax the missing-ingredient cutoff
		assert.Equal(t, 8, result.FiltersApplied.MaxMissing)
	})

	t.Run("BestMatchFirst", func(t *testing.T) {
		result, err := svc.SearchRecipes(ctx, inbound.SearchRecipesQuery{
			Available: []string{"tomato", "pasta", "garlic", "olive oil"},
		})

		require.NoError(t, err)
		require.NotEmpty(t, result.Recipes)
		assert.Equal(t, "Tomato Pasta", result.Recipes[0].Name)
		assert.Equal(t, 100.0, result.Recipes[0].Score)
	})

	t.Run("DietConstraintsApply", func(t *testing.T) {
		result, err := svc.SearchRecipes(ctx, inbound.SearchRecipesQuery{
			Available: []string{"tomato"},
			Diets:     []string{"vegan", "gluten free"},
		})

		require.NoError(t, err)
		require.Len(t, result.Recipes, 1)
		assert.Equal(t, "Garden Salad", result.Recipes[0].Name)
		assert.Equal(t, []string{"vegan", "gluten-free"}, result.FiltersApplied.Diets)
	})

	t.Run("ScoredRecipeCarriesDetails", func(t *testing.T) {
		result, err := svc.SearchRecipes(ctx, inbound.SearchRecipesQuery{
			Available: []string{"tomato", "cucumber"},
			Diets:     []string{"vegan"},
		})

		require.NoError(t, err)
		require.Len(t, result.Recipes, 1)
		found := result.Recipes[0]
		assert.Equal(t, []string{"tomato", "cucumber", "lettuce"}, found.Ingredients)
		assert.Equal(t, 2, found.MatchedCount)
		assert.Equal(t, 1, found.MissingCount)
		assert.Equal(t, []string{"vegan", "gluten-free"}, found.DietTags)
		assert.Equal(t, []string{"lunch"}, found.Meals)
		require.NotNil(t, found.Macros)
		assert.Equal(t, 120.0, found.Macros.Calories)
	})

	t.Run("LimitTruncatesButKeepsTotal", func(t *testing.T) {
		result, err := svc.SearchRecipes(ctx, inbound.SearchRecipesQuery{
			Available: []string{"tomato"},
			Limit:     1,
		})

		require.NoError(t, err)
		assert.Len(t, result.Recipes, 1)
		assert.Greater(t, result.TotalFound, 1)
	})

	t.Run("NormalizesFreeFormIngredients", func(t *testing.T) {
		result, err := svc.SearchRecipes(ctx, inbound.SearchRecipesQuery{
			Available: []string{"2 Fresh Tomatoes", "500g pasta", "3 cloves garlic"},
		})

		require.NoError(t, err)
		require.NotEmpty(t, result.Recipes)
		assert.Equal(t, "Tomato Pasta", result.Recipes[0].Name)
	})

	t.Run("EmptyCatalogYieldsEmptySuccess", func(t *testing.T) {
		empty := newTestService(t, &fakeCatalog{})

		result, err := empty.SearchRecipes(ctx, inbound.SearchRecipesQuery{
			Available: []string{"tomato"},
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Empty(t, result.Recipes)
		assert.Zero(t, result.TotalFound)
	})
}

func TestPlanMeals(t *testing.T) {
	svc := newTestService(t, testCatalog(t))
	ctx := context.Background()

	t.Run("BuildsPlanWithTotalsAndAdvice", func(t *testing.T) {
		plan, err := svc.PlanMeals(ctx, inbound.PlanMealsCommand{
			Available:     []string{"tomato", "pasta", "garlic", "chicken", "rice"},
			MealCount:     2,
			CalorieTarget: 2000,
		})

		require.NoError(t, err)
		assert.True(t, plan.Success)
		assert.LessOrEqual(t, len(plan.Meals), 2)
		assert.NotEmpty(t, plan.Advice)

		var sum float64
		for _, meal := range plan.Meals {
			sum += meal.Nutrition.Calories
		}
		assert.InDelta(t, sum, plan.Totals.Calories, 0.1)
	})

	t.Run("EmbeddedMacrosCarryRecipeDataSource", func(t *testing.T) {
		plan, err := svc.PlanMeals(ctx, inbound.PlanMealsCommand{
			Available: []string{"tomato", "cucumber", "lettuce"},
			MealCount: 1,
			Diets:     []string{"vegan"},
		})

		require.NoError(t, err)
		require.Len(t, plan.Meals, 1)
		assert.Equal(t, SourceRecipeData, plan.Meals[0].Source)
		assert.Equal(t, 120.0, plan.Meals[0].Nutrition.Calories)
	})

	t.Run("EmptyCatalogStillAdvises", func(t *testing.T) {
		empty := newTestService(t, &fakeCatalog{})

		plan, err := empty.PlanMeals(ctx, inbound.PlanMealsCommand{
			Available:     []string{"tomato"},
			CalorieTarget: 2000,
		})

		require.NoError(t, err)
		assert.True(t, plan.Success)
		assert.Empty(t, plan.Meals)
		assert.True(t, plan.Totals.IsZero())
		assert.Contains(t, plan.Advice, "Plan is below your calorie target, consider adding a snack")
	})

	t.Run("DefaultsToThreeMeals", func(t *testing.T) {
		plan, err := svc.PlanMeals(ctx, inbound.PlanMealsCommand{
			Available: []string{"tomato", "pasta", "garlic", "chicken", "rice", "cucumber", "lettuce"},
		})

		require.NoError(t, err)
		assert.LessOrEqual(t, len(plan.Meals), DefaultMealCount)
	})
}
