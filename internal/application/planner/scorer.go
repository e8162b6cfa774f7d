package planner

import (
	"math"
	"sort"

	"github.com/chefbyte/v1/internal/domain/recipe"
)

// DefaultMaxMissing is the cutoff applied when the caller does not
// override it and the pantry is large enough not to trigger relaxation
const DefaultMaxMissing = 2

// Match bonus per covered ingredient, on top of the coverage ratio
const matchBonus = 5.0

// Candidate pairs a recipe with its match outcome and score
type Candidate struct {
	Recipe *recipe.Recipe
	Match  recipe.MatchResult
	Score  float64
}

// EffectiveMaxMissing relaxes the missing-ingredient cutoff when few
// ingredients are available, so a nearly empty pantry still yields
// suggestions. With three or fewer available the cutoff becomes 8,
// with four or five it becomes 6, otherwise the requested value stands.
func EffectiveMaxMissing(requested, availableCount int) int {
	switch {
	case availableCount <= 3:
		return 8
	case availableCount <= 5:
		return 6
	default:
		return requested
	}
}

// ScoreRecipe computes the match score for a single recipe. The score is
// the coverage percentage plus a bonus per matched ingredient, capped at
// 100 and rounded to one decimal. A recipe with no ingredients scores
// zero.
func ScoreRecipe(match recipe.MatchResult, totalIngredients int) float64 {
	if totalIngredients == 0 {
		return 0
	}
	score := float64(match.MatchedCount())/float64(totalIngredients)*100 +
		float64(match.MatchedCount())*matchBonus
	if score > 100 {
		score = 100
	}
	return math.Round(score*10) / 10
}

// ScoreCatalog matches and scores every recipe against the available
// ingredients, drops those missing more than maxMissing ingredients,
// and returns the survivors ordered by score descending. Ties keep
// catalog order.
func ScoreCatalog(recipes []*recipe.Recipe, available []string, maxMissing int) []Candidate {
	candidates := make([]Candidate, 0, len(recipes))
	for _, r := range recipes {
		match := r.MatchIngredients(available)
		if match.MissingCount() > maxMissing {
			continue
		}
		candidates = append(candidates, Candidate{
			Recipe: r,
			Match:  match,
			Score:  ScoreRecipe(match, len(r.Ingredients())),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}
