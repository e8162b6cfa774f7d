package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chefbyte/v1/pkg/normalize"
)

func TestIngredient(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Chicken Breast", "chicken breast"},
		{"strips quantity and unit", "2 cups rice", "rice"},
		{"strips descriptor", "fresh basil", "basil"},
		{"strips compound descriptors", "1 tbsp extra virgin olive oil", "olive oil"},
		{"singularizes regular plural", "eggs", "egg"},
		{"singularizes irregular plural", "tomatoes", "tomato"},
		{"singularizes ies plural", "strawberries", "strawberry"},
		{"keeps double s words", "hummus", "hummus"},
		{"drops parenthetical note", "spinach (about 200g)", "spinach"},
		{"handles clove unit", "3 cloves garlic", "garlic"},
		{"empty input", "   ", ""},
		{"only units", "2 cups", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalize.Ingredient(tc.input))
		})
	}
}

func TestIngredients(t *testing.T) {
	input := []string{"2 Eggs", "1 cup", "fresh Spinach"}
	assert.Equal(t, []string{"egg", "spinach"}, normalize.Ingredients(input))
}
