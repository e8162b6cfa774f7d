// Package nutrition contains domain logic for nutrient lookup and
// aggregation. Reference values are stored per 100 grams of ingredient.
package nutrition

import "math"

// Facts holds nutrient values. Depending on context they describe a 100g
// reference portion, a single recipe, or a whole day of meals.
type Facts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Add returns the sum of two facts
func (f Facts) Add(other Facts) Facts {
	return Facts{
		Calories: f.Calories + other.Calories,
		Protein:  f.Protein + other.Protein,
		Carbs:    f.Carbs + other.Carbs,
		Fat:      f.Fat + other.Fat,
		Fiber:    f.Fiber + other.Fiber,
	}
}

// Round returns the facts with every value rounded to one decimal place
func (f Facts) Round() Facts {
	return Facts{
		Calories: round1(f.Calories),
		Protein:  round1(f.Protein),
		Carbs:    round1(f.Carbs),
		Fat:      round1(f.Fat),
		Fiber:    round1(f.Fiber),
	}
}

// IsZero reports whether every nutrient value is zero
func (f Facts) IsZero() bool {
	return f.Calories == 0 && f.Protein == 0 && f.Carbs == 0 && f.Fat == 0 && f.Fiber == 0
}

// ProteinPercent returns the share of calories coming from protein,
// using 4 kcal per gram. Returns 0 when there are no calories.
func (f Facts) ProteinPercent() float64 {
	if f.Calories <= 0 {
		return 0
	}
	return f.Protein * 4 / f.Calories * 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
