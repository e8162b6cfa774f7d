package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefbyte/v1/internal/domain/recipe"
)

func mustRecipe(t *testing.T, name string, ingredients ...string) *recipe.Recipe {
	t.Helper()
	r, err := recipe.NewRecipe(name, ingredients)
	require.NoError(t, err)
	return r
}

func TestScoreRecipe(t *testing.T) {
	t.Run("ThreeOfFourMatched", func(t *testing.T) {
		r := mustRecipe(t, "Chicken Rice Bowl", "tomato", "onion", "rice", "chicken")

		match := r.MatchIngredients([]string{"tomato", "onion", "rice"})
		score := ScoreRecipe(match, 4)

		// 75% coverage plus 3 matches at 5 points each
		assert.Equal(t, 90.0, score)
	})

	t.Run("FullMatchCapsAtHundred", func(t *testing.T) {
		r := mustRecipe(t, "Salad", "tomato", "cucumber", "onion")

		match := r.MatchIngredients([]string{"tomato", "cucumber", "onion"})
		score := ScoreRecipe(match, 3)

		assert.Equal(t, 100.0, score)
	})

	t.Run("NoIngredientsScoresZero", func(t *testing.T) {
		score := ScoreRecipe(recipe.MatchResult{}, 0)
		assert.Zero(t, score)
	})

	t.Run("RoundsToOneDecimal", func(t *testing.T) {
		r := mustRecipe(t, "Trio", "rice", "egg", "scallion")

		match := r.MatchIngredients([]string{"rice"})
		score := ScoreRecipe(match, 3)

		// 33.33...% coverage plus one 5 point match
		assert.Equal(t, 38.3, score)
	})

	t.Run("ScoreAlwaysWithinRange", func(t *testing.T) {
		r := mustRecipe(t, "Big Dish",
			"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10")

		match := r.MatchIngredients([]string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10"})
		score := ScoreRecipe(match, 10)

		assert.LessOrEqual(t, score, 100.0)
		assert.GreaterOrEqual(t, score, 0.0)
	})
}

func TestEffectiveMaxMissing(t *testing.T) {
	cases := []struct {
		name      string
		requested int
		available int
		expected  int
	}{
		{"ZeroAvailable", 2, 0, 8},
		{"ThreeAvailable", 2, 3, 8},
		{"FourAvailable", 2, 4, 6},
		{"FiveAvailable", 2, 5, 6},
		{"SixAvailable", 2, 6, 2},
		{"CallerValueStandsForLargePantry", 4, 10, 4},
		{"TwoAvailableOverridesCallerValue", 2, 2, 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EffectiveMaxMissing(tc.requested, tc.available))
		})
	}
}

func TestScoreCatalog(t *testing.T) {
	t.Run("ExcludesRecipesOverMissingCutoff", func(t *testing.T) {
		close := mustRecipe(t, "Close Match", "rice", "egg")
		far := mustRecipe(t, "Far Match", "lamb", "saffron", "apricot", "almond")

		candidates := ScoreCatalog([]*recipe.Recipe{close, far},
			[]string{"rice", "egg", "milk", "bread", "butter", "jam", "cheese"}, 1)

		require.Len(t, candidates, 1)
		assert.Equal(t, "Close Match", candidates[0].Recipe.Name())
	})

	t.Run("ExactlyAtCutoffIsKept", func(t *testing.T) {
		r := mustRecipe(t, "Two Missing", "rice", "egg", "saffron", "truffle")

		candidates := ScoreCatalog([]*recipe.Recipe{r},
			[]string{"rice", "egg", "milk", "bread", "butter", "cheese"}, 2)

		require.Len(t, candidates, 1)
		assert.Equal(t, 2, candidates[0].Match.MissingCount())
	})

	t.Run("SortedByScoreDescending", func(t *testing.T) {
		full := mustRecipe(t, "Full", "rice", "egg")
		partial := mustRecipe(t, "Partial", "rice", "egg", "pork", "ginger", "scallion", "sesame")

		candidates := ScoreCatalog([]*recipe.Recipe{partial, full},
			[]string{"rice", "egg", "milk", "bread", "butter", "cheese"}, 8)

		require.Len(t, candidates, 2)
		assert.Equal(t, "Full", candidates[0].Recipe.Name())
		assert.Greater(t, candidates[0].Score, candidates[1].Score)
	})

	t.Run("TiesKeepCatalogOrder", func(t *testing.T) {
		first := mustRecipe(t, "First", "rice", "egg")
		second := mustRecipe(t, "Second", "rice", "egg")

		candidates := ScoreCatalog([]*recipe.Recipe{first, second},
			[]string{"rice", "egg", "milk", "bread", "butter", "cheese"}, 2)

		require.Len(t, candidates, 2)
		assert.Equal(t, "First", candidates[0].Recipe.Name())
		assert.Equal(t, "Second", candidates[1].Recipe.Name())
	})

	t.Run("MatchedAndMissingPartitionIngredients", func(t *testing.T) {
		r := mustRecipe(t, "Stew", "beef", "carrot", "potato", "thyme")

		candidates := ScoreCatalog([]*recipe.Recipe{r},
			[]string{"beef", "carrot", "milk", "bread", "butter", "cheese"}, 8)

		require.Len(t, candidates, 1)
		match := candidates[0].Match
		assert.ElementsMatch(t,
			append(match.Matched, match.Missing...),
			r.Ingredients(),
		)
	})

	t.Run("EmptyCatalogYieldsNoCandidates", func(t *testing.T) {
		candidates := ScoreCatalog(nil, []string{"rice"}, 2)
		assert.Empty(t, candidates)
	})
}
