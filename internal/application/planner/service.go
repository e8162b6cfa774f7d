package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chefbyte/v1/internal/domain/nutrition"
	"github.com/chefbyte/v1/internal/domain/recipe"
	"github.com/chefbyte/v1/internal/ports/inbound"
	"github.com/chefbyte/v1/internal/ports/outbound"
	"github.com/chefbyte/v1/pkg/errors"
	"github.com/chefbyte/v1/pkg/normalize"
)

// DefaultMealCount is used when the caller does not request a count
const DefaultMealCount = 3

const searchCacheTTL = 5 * time.Minute

// Service implements the meal planning use cases
type Service struct {
	catalog   outbound.RecipeCatalog
	nutrition outbound.NutritionCatalog
	cache     outbound.CacheRepository
	logger    *zap.Logger
}

// NewService creates a new planner service
func NewService(
	catalog outbound.RecipeCatalog,
	nutritionCatalog outbound.NutritionCatalog,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) inbound.PlannerService {
	return &Service{
		catalog:   catalog,
		nutrition: nutritionCatalog,
		cache:     cache,
		logger:    logger.Named("planner-service"),
	}
}

// SearchRecipes scores the catalog against the available ingredients
func (s *Service) SearchRecipes(ctx context.Context, query inbound.SearchRecipesQuery) (*inbound.SearchResult, error) {
	available := normalize.Ingredients(query.Available)
	maxMissing := s.effectiveMaxMissing(query.MaxMissing, len(available))

	diets := normalizeConstraints(query.Diets)

	cacheKey := searchCacheKey(available, diets, query.Cuisine, maxMissing, query.Limit)
	if cached := s.cachedSearch(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	candidates, err := s.scoreCatalog(ctx, available, diets, query.Cuisine, maxMissing)
	if err != nil {
		return nil, err
	}

	recipes := make([]inbound.ScoredRecipe, 0, len(candidates))
	for _, cand := range candidates {
		recipes = append(recipes, toScoredRecipe(cand))
	}
	if query.Limit > 0 && len(recipes) > query.Limit {
		recipes = recipes[:query.Limit]
	}

	result := &inbound.SearchResult{
		Success:    true,
		Recipes:    recipes,
		TotalFound: len(candidates),
		FiltersApplied: inbound.FiltersApplied{
			Diets:      diets,
			Cuisine:    strings.ToLower(strings.TrimSpace(query.Cuisine)),
			MaxMissing: maxMissing,
		},
	}

	s.logger.Info("Recipe search completed",
		zap.Int("available_ingredients", len(available)),
		zap.Int("total_found", result.TotalFound),
		zap.Int("max_missing", maxMissing),
	)

	s.storeSearch(ctx, cacheKey, result)
	return result, nil
}

// PlanMeals builds a meal plan from the scored catalog
func (s *Service) PlanMeals(ctx context.Context, cmd inbound.PlanMealsCommand) (*inbound.MealPlan, error) {
	available := normalize.Ingredients(cmd.Available)
	maxMissing := s.effectiveMaxMissing(cmd.MaxMissing, len(available))

	mealCount := cmd.MealCount
	if mealCount <= 0 {
		mealCount = DefaultMealCount
	}

	candidates, err := s.scoreCatalog(ctx, available, normalizeConstraints(cmd.Diets), cmd.Cuisine, maxMissing)
	if err != nil {
		return nil, err
	}

	resolver, err := s.buildResolver(ctx)
	if err != nil {
		return nil, err
	}

	selected := SelectMeals(candidates, resolver, mealCount, cmd.CalorieTarget)

	meals := make([]inbound.ResolvedMeal, 0, len(selected))
	var totals nutrition.Facts
	for _, sel := range selected {
		meals = append(meals, inbound.ResolvedMeal{
			Name:       sel.Candidate.Recipe.Name(),
			Score:      sel.Candidate.Score,
			Nutrition:  sel.Resolution.Facts,
			Source:     sel.Resolution.Source,
			Confidence: sel.Resolution.Confidence,
		})
		totals = totals.Add(sel.Resolution.Facts)
	}
	totals = totals.Round()

	advice := Advise(totals, Targets{Calories: cmd.CalorieTarget, Protein: cmd.ProteinTarget})

	s.logger.Info("Meal plan built",
		zap.Int("requested_meals", mealCount),
		zap.Int("selected_meals", len(meals)),
		zap.Float64("total_calories", totals.Calories),
	)

	return &inbound.MealPlan{
		Success:   true,
		Meals:     meals,
		Totals:    totals,
		Advice:    advice,
		MealCount: len(meals),
	}, nil
}

func (s *Service) scoreCatalog(ctx context.Context, available, diets []string, cuisine string, maxMissing int) ([]Candidate, error) {
	recipes, err := s.catalog.All(ctx)
	if err != nil {
		return nil, errors.NewEngineFailureError("catalog", err)
	}

	filtered := Filter{Diets: diets, Cuisine: cuisine}.Apply(recipes)
	return ScoreCatalog(filtered, available, maxMissing), nil
}

func (s *Service) buildResolver(ctx context.Context) (*Resolver, error) {
	table, err := s.nutrition.Table(ctx)
	if err != nil {
		return nil, errors.NewEngineFailureError("nutrition", err)
	}
	return NewResolver(table), nil
}

func (s *Service) effectiveMaxMissing(requested *int, availableCount int) int {
	base := DefaultMaxMissing
	if requested != nil && *requested >= 0 {
		base = *requested
	}
	return EffectiveMaxMissing(base, availableCount)
}

func (s *Service) cachedSearch(ctx context.Context, key string) *inbound.SearchResult {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}
	var result inbound.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		s.logger.Warn("Discarding corrupt cached search result", zap.Error(err))
		return nil
	}
	return &result
}

func (s *Service) storeSearch(ctx context.Context, key string, result *inbound.SearchResult) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, searchCacheTTL); err != nil {
		s.logger.Warn("Failed to cache search result", zap.Error(err))
	}
}

func searchCacheKey(available, diets []string, cuisine string, maxMissing, limit int) string {
	return fmt.Sprintf("search:%s|%s|%s|%d|%d",
		strings.Join(available, ","),
		strings.Join(diets, ","),
		strings.ToLower(cuisine),
		maxMissing,
		limit,
	)
}

// normalizeConstraints folds each dietary constraint to the stored tag
// form and drops empties
func normalizeConstraints(diets []string) []string {
	out := make([]string, 0, len(diets))
	for _, d := range diets {
		if c := recipe.NormalizeTag(d); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func toScoredRecipe(cand Candidate) inbound.ScoredRecipe {
	r := cand.Recipe

	cuisine := string(r.Cuisine())
	if cuisine == "any" {
		cuisine = ""
	}

	sr := inbound.ScoredRecipe{
		Name:             r.Name(),
		Score:            cand.Score,
		Ingredients:      r.Ingredients(),
		Matched:          cand.Match.Matched,
		Missing:          cand.Match.Missing,
		MatchedCount:     cand.Match.MatchedCount(),
		MissingCount:     cand.Match.MissingCount(),
		TotalIngredients: len(r.Ingredients()),
		DietTags:         r.DietTags(),
		Cuisine:          cuisine,
		Meals:            r.Meals(),
		PrepTime:         r.PrepTime(),
		Difficulty:       r.Difficulty(),
	}
	if m := r.Macros(); m != nil {
		sr.Macros = &inbound.RecipeMacros{
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
			Fiber:    m.Fiber,
		}
	}
	return sr
}
