package planner

import (
	"github.com/chefbyte/v1/internal/domain/nutrition"
	"github.com/chefbyte/v1/internal/domain/recipe"
)

// Nutrition provenance labels
const (
	SourceRecipeData      = "recipe_data"
	SourcePreciseDatabase = "precise_database"
	SourceEstimated       = "estimated"
)

// Resolution is the outcome of resolving a recipe's nutrition
type Resolution struct {
	Facts      nutrition.Facts
	Source     string
	Confidence float64
}

// Resolver turns a recipe into nutrition facts. Recipes that embed
// their own macros are used as-is; everything else is summed from
// per-ingredient reference values.
type Resolver struct {
	table *nutrition.Table
}

// NewResolver creates a resolver backed by the given reference table.
// A nil or empty table is allowed and yields estimated zero results.
func NewResolver(table *nutrition.Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve computes nutrition facts for a recipe. Embedded macros win
// outright with full confidence. Otherwise each recipe ingredient is
// looked up in the reference table and contributes a flat 100g portion;
// confidence is the share of ingredients that were found. All values
// are rounded to one decimal place.
func (r *Resolver) Resolve(rec *recipe.Recipe) Resolution {
	if m := rec.Macros(); m != nil {
		return Resolution{
			Facts: nutrition.Facts{
				Calories: m.Calories,
				Protein:  m.Protein,
				Carbs:    m.Carbs,
				Fat:      m.Fat,
				Fiber:    m.Fiber,
			}.Round(),
			Source:     SourceRecipeData,
			Confidence: 100,
		}
	}

	ingredients := rec.Ingredients()
	var (
		total   nutrition.Facts
		matched int
	)
	for _, ing := range ingredients {
		if facts, ok := r.table.Lookup(ing); ok {
			total = total.Add(facts)
			matched++
		}
	}

	confidence := 0.0
	if len(ingredients) > 0 {
		confidence = float64(matched) / float64(len(ingredients)) * 100
	}

	source := SourceEstimated
	if r.table.Loaded() {
		source = SourcePreciseDatabase
	}

	return Resolution{
		Facts:      total.Round(),
		Source:     source,
		Confidence: confidence,
	}
}
