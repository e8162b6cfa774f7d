package recipe

import "errors"

// Value Objects - Immutable objects that describe aspects of the domain

// Macros holds per-serving macronutrients embedded on a recipe record.
// Fiber is optional in source data and defaults to zero.
type Macros struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

// Validate validates the macros
func (m Macros) Validate() error {
	if m.Calories < 0 || m.Protein < 0 || m.Carbs < 0 || m.Fat < 0 || m.Fiber < 0 {
		return errors.New("macro values cannot be negative")
	}
	return nil
}

// CuisineType represents different cuisine types
type CuisineType string

const (
	// CuisineTypeAny marks a recipe with no cuisine label
	CuisineTypeAny CuisineType = "any"

	CuisineTypeItalian       CuisineType = "italian"
	CuisineTypeFrench        CuisineType = "french"
	CuisineTypeChinese       CuisineType = "chinese"
	CuisineTypeJapanese      CuisineType = "japanese"
	CuisineTypeIndian        CuisineType = "indian"
	CuisineTypeMexican       CuisineType = "mexican"
	CuisineTypeAmerican      CuisineType = "american"
	CuisineTypeMediterranean CuisineType = "mediterranean"
	CuisineTypeThai          CuisineType = "thai"
)
