// Package planner provides the application layer for meal planning.
// This implements the use cases defined in the inbound ports.
package planner

import (
	"strings"

	"github.com/chefbyte/v1/internal/domain/recipe"
)

// Filter narrows a catalog by dietary constraints and cuisine label.
// Each dietary constraint must be satisfied for a recipe to pass.
type Filter struct {
	Diets   []string
	Cuisine string
}

// IsZero reports whether the filter imposes no restriction
func (f Filter) IsZero() bool {
	return len(f.Diets) == 0 && f.Cuisine == ""
}

// Apply returns the recipes whose labels satisfy the filter. An empty
// constraint list or cuisine means no restriction on that axis.
// Matching is case-insensitive and substring-based, so a "south indian"
// recipe passes an "indian" cuisine filter and a recipe tagged
// "gluten-free" passes a "gluten free" constraint.
func (f Filter) Apply(recipes []*recipe.Recipe) []*recipe.Recipe {
	if f.IsZero() {
		return recipes
	}

	constraints := make([]string, 0, len(f.Diets))
	for _, d := range f.Diets {
		if c := recipe.NormalizeTag(d); c != "" {
			constraints = append(constraints, c)
		}
	}
	cuisine := strings.ToLower(strings.TrimSpace(f.Cuisine))

	kept := make([]*recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if !satisfiesDiet(r, constraints) {
			continue
		}
		if cuisine != "" && !strings.Contains(string(r.Cuisine()), cuisine) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// satisfiesDiet reports whether every constraint appears as a substring
// of at least one of the recipe's dietary tags. An unlabelled recipe
// fails any active constraint.
func satisfiesDiet(r *recipe.Recipe, constraints []string) bool {
	if len(constraints) == 0 {
		return true
	}

	tags := r.DietTags()
	for _, c := range constraints {
		matched := false
		for _, tag := range tags {
			if strings.Contains(tag, c) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
