package planner

import "strings"

// Calorie headroom allowed above the target when adding a meal
const calorieTolerance = 1.1

// SelectedMeal is a candidate chosen for the plan together with its
// resolved nutrition
type SelectedMeal struct {
	Candidate  Candidate
	Resolution Resolution
}

// SelectMeals walks the scored candidates best-first and greedily picks
// meals until mealCount is reached. Recipes with a name already in the
// plan are skipped, as are meals that would push running calories past
// the target with a small tolerance. A zero calorieTarget disables the
// calorie check.
func SelectMeals(candidates []Candidate, resolver *Resolver, mealCount int, calorieTarget float64) []SelectedMeal {
	if mealCount <= 0 {
		return nil
	}

	selected := make([]SelectedMeal, 0, mealCount)
	seen := make(map[string]struct{}, mealCount)
	var runningCalories float64

	for _, cand := range candidates {
		if len(selected) >= mealCount {
			break
		}

		key := strings.ToLower(cand.Recipe.Name())
		if _, dup := seen[key]; dup {
			continue
		}

		res := resolver.Resolve(cand.Recipe)
		if calorieTarget > 0 && runningCalories+res.Facts.Calories > calorieTarget*calorieTolerance {
			continue
		}

		selected = append(selected, SelectedMeal{Candidate: cand, Resolution: res})
		seen[key] = struct{}{}
		runningCalories += res.Facts.Calories
	}

	return selected
}
