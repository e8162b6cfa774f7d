package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleRecipesCSV is a small recipe dataset covering labelled and
// unlabelled rows plus one row with embedded macros.
const SampleRecipesCSV = `name,ingredients,dietary_tags,cuisine,meals,prep_time,difficulty,calories,protein,carbs,fat,fiber
Tomato Pasta,"tomato,pasta,olive oil,garlic",vegetarian,italian,"lunch,dinner",25,easy,,,,,
Chicken Stir Fry,"chicken,rice,soy sauce,bell pepper",,chinese,dinner,20,medium,,,,,
Garden Salad,"lettuce,tomato,cucumber,olive oil","vegan, gluten_free",,lunch,10,easy,120,4,18,3,6
Lentil Curry,"lentils,onion,garlic,coconut milk",vegan,south indian,dinner,40,medium,,,,,
`

// SampleNutritionCSV is a small per-100g nutrition dataset.
const SampleNutritionCSV = `name,calories,protein,carbs,fat,fiber
tomato,18,0.9,3.9,0.2,1.2
pasta,131,5,25,1.1,1.8
olive oil,884,0,0,100,0
garlic,149,6.4,33,0.5,2.1
chicken,165,31,0,3.6,0
rice,130,2.7,28,0.3,0.4
lentils,116,9,20,0.4,7.9
onion,40,1.1,9.3,0.1,1.7
`

// WriteDataset writes content to a temp file and returns its path
func WriteDataset(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
