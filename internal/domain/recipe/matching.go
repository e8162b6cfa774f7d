package recipe

import "strings"

// MatchResult describes how a recipe's ingredient list lines up against
// what the user has available.
type MatchResult struct {
	Matched []string
	Missing []string
}

// MatchedCount returns the number of recipe ingredients covered
func (m MatchResult) MatchedCount() int {
	return len(m.Matched)
}

// MissingCount returns the number of recipe ingredients not covered
func (m MatchResult) MissingCount() int {
	return len(m.Missing)
}

// MatchIngredients compares the recipe's ingredients against the
// available ones. A recipe ingredient counts as matched when any
// available ingredient contains it or is contained by it, so "chicken"
// covers "chicken breast" and the other way around. Comparison is
// case-insensitive.
func (r *Recipe) MatchIngredients(available []string) MatchResult {
	lowered := make([]string, 0, len(available))
	for _, a := range available {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			lowered = append(lowered, a)
		}
	}

	result := MatchResult{
		Matched: make([]string, 0, len(r.ingredients)),
		Missing: make([]string, 0),
	}

	for _, ing := range r.ingredients {
		if covers(lowered, ing) {
			result.Matched = append(result.Matched, ing)
		} else {
			result.Missing = append(result.Missing, ing)
		}
	}

	return result
}

func covers(available []string, ingredient string) bool {
	for _, a := range available {
		if strings.Contains(ingredient, a) || strings.Contains(a, ingredient) {
			return true
		}
	}
	return false
}
