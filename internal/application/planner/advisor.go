package planner

import (
	"fmt"
	"math"

	"github.com/chefbyte/v1/internal/domain/nutrition"
)

// Advisor thresholds
const (
	calorieSlack      = 100.0
	proteinSlack      = 10.0
	minProteinPercent = 15.0
	maxProteinPercent = 35.0
	minFiberGrams     = 10.0
)

// Targets are the daily goals advice is measured against. Zero values
// mean the caller set no goal on that axis.
type Targets struct {
	Calories float64
	Protein  float64
}

// Advise compares a day's aggregated nutrition against the targets and
// returns human-readable suggestions. When everything is on track a
// single affirmation is returned.
func Advise(totals nutrition.Facts, targets Targets) []string {
	advice := make([]string, 0, 4)

	if targets.Calories > 0 {
		diff := totals.Calories - targets.Calories
		switch {
		case math.Abs(diff) < calorieSlack:
			advice = append(advice, "Calorie target met perfectly")
		case diff > calorieSlack:
			advice = append(advice, "Plan exceeds your calorie target, consider smaller portions")
		default:
			advice = append(advice, "Plan is below your calorie target, consider adding a snack")
		}
	}

	if targets.Protein > 0 {
		diff := totals.Protein - targets.Protein
		switch {
		case math.Abs(diff) < proteinSlack:
			advice = append(advice, "Protein target met")
		case diff < -proteinSlack:
			advice = append(advice, fmt.Sprintf("You need %.0fg more protein to hit your goal", -diff))
		}
	}

	if totals.Calories > 0 {
		switch pct := totals.ProteinPercent(); {
		case pct < minProteinPercent:
			advice = append(advice, "Consider adding more protein-rich foods")
		case pct > maxProteinPercent:
			advice = append(advice, "Consider balancing with more carbohydrates")
		}
	}

	if totals.Fiber < minFiberGrams {
		advice = append(advice, "Add more fiber with vegetables, fruits or whole grains")
	}

	if len(advice) == 0 {
		advice = append(advice, "Your meal plan looks well-balanced")
	}

	return advice
}
