package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chefbyte/v1/internal/domain/nutrition"
)

func TestAdvise(t *testing.T) {
	t.Run("CalorieTargetMet", func(t *testing.T) {
		advice := Advise(
			nutrition.Facts{Calories: 1950, Protein: 120, Carbs: 200, Fat: 60, Fiber: 25},
			Targets{Calories: 2000},
		)
		assert.Contains(t, advice, "Calorie target met perfectly")
	})

	t.Run("CaloriesOverTarget", func(t *testing.T) {
		advice := Advise(
			nutrition.Facts{Calories: 2400, Protein: 150, Carbs: 250, Fat: 70, Fiber: 30},
			Targets{Calories: 2000},
		)
		assert.Contains(t, advice, "Plan exceeds your calorie target, consider smaller portions")
	})

	t.Run("CaloriesUnderTarget", func(t *testing.T) {
		advice := Advise(
			nutrition.Facts{Calories: 1500, Protein: 90, Carbs: 160, Fat: 45, Fiber: 20},
			Targets{Calories: 2000},
		)
		assert.Contains(t, advice, "Plan is below your calorie target, consider adding a snack")
	})

	t.Run("ProteinShortfallNamesGrams", func(t *testing.T) {
		advice := Advise(
			nutrition.Facts{Calories: 2000, Protein: 100, Carbs: 220, Fat: 60, Fiber: 25},
			Targets{Protein: 150},
		)
		assert.Contains(t, advice, "You need 50g more protein to hit your goal")
	})

	t.Run("ProteinExactlyAtSlackEmitsNothing", func(t *testing.T) {
		// 140g against a 150g goal sits on the threshold, neither the
		// met nor the shortfall message applies
		advice := Advise(
			nutrition.Facts{Calories: 2000, Protein: 140, Carbs: 220, Fat: 60, Fiber: 25},
			Targets{Protein: 150},
		)
		assert.Equal(t, []string{"Your meal plan looks well-balanced"}, advice)
	})

	t.Run("LowProteinShare", func(t *testing.T) {
		advice := Advise(
			nutrition.Facts{Calories: 2000, Protein: 40, Carbs: 300, Fat: 60, Fiber: 25},
			Targets{},
		)
		assert.Contains(t, advice, "Consider adding more protein-rich foods")
	})

	t.Run("HighProteinShare", func(t *testing.T) {
		advice := Advise(
			nutrition.Facts{Calories: 1000, Protein: 100, Carbs: 50, Fat: 30, Fiber: 15},
			Targets{},
		)
		assert.Contains(t, advice, "Consider balancing with more carbohydrates")
	})

	t.Run("LowFiber", func(t *testing.T) {
		advice := Advise(
			nutrition.Facts{Calories: 2000, Protein: 120, Carbs: 200, Fat: 60, Fiber: 5},
			Targets{},
		)
		assert.Contains(t, advice, "Add more fiber with vegetables, fruits or whole grains")
	})

	t.Run("WellBalancedFallback", func(t *testing.T) {
		advice := Advise(
			nutrition.Facts{Calories: 2000, Protein: 120, Carbs: 220, Fat: 60, Fiber: 25},
			Targets{},
		)
		assert.Equal(t, []string{"Your meal plan looks well-balanced"}, advice)
	})

	t.Run("MultipleAdvisoriesCanFire", func(t *testing.T) {
		advice := Advise(
			nutrition.Facts{Calories: 1200, Protein: 30, Carbs: 180, Fat: 35, Fiber: 4},
			Targets{Calories: 2000, Protein: 100},
		)
		assert.Contains(t, advice, "Plan is below your calorie target, consider adding a snack")
		assert.Contains(t, advice, "You need 70g more protein to hit your goal")
		assert.Contains(t, advice, "Consider adding more protein-rich foods")
		assert.Contains(t, advice, "Add more fiber with vegetables, fruits or whole grains")
	})

	t.Run("ZeroActualAgainstTargetsStillAdvises", func(t *testing.T) {
		advice := Advise(nutrition.Facts{}, Targets{Calories: 2000, Protein: 100})
		assert.Contains(t, advice, "Plan is below your calorie target, consider adding a snack")
		assert.Contains(t, advice, "You need 100g more protein to hit your goal")
	})
}
