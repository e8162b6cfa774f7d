// Package normalize cleans free-form ingredient text into canonical names
// suitable for matching against recipe ingredient lists.
package normalize

import (
	"strings"
	"unicode"
)

// Descriptor words that carry no matching signal. Quantities and units are
// stripped separately.
var descriptors = map[string]struct{}{
	"fresh":     {},
	"frozen":    {},
	"dried":     {},
	"canned":    {},
	"chopped":   {},
	"diced":     {},
	"minced":    {},
	"sliced":    {},
	"grated":    {},
	"shredded":  {},
	"ground":    {},
	"whole":     {},
	"large":     {},
	"small":     {},
	"medium":    {},
	"ripe":      {},
	"raw":       {},
	"cooked":    {},
	"boneless":  {},
	"skinless":  {},
	"organic":   {},
	"extra":     {},
	"virgin":    {},
	"of":        {},
	"a":         {},
	"an":        {},
	"the":       {},
}

var units = map[string]struct{}{
	"cup":         {},
	"cups":        {},
	"tablespoon":  {},
	"tablespoons": {},
	"tbsp":        {},
	"teaspoon":    {},
	"teaspoons":   {},
	"tsp":         {},
	"gram":        {},
	"grams":       {},
	"g":           {},
	"kg":          {},
	"kilogram":    {},
	"kilograms":   {},
	"ounce":       {},
	"ounces":      {},
	"oz":          {},
	"pound":       {},
	"pounds":      {},
	"lb":          {},
	"lbs":         {},
	"ml":          {},
	"milliliter":  {},
	"milliliters": {},
	"liter":       {},
	"liters":      {},
	"l":           {},
	"pinch":       {},
	"dash":        {},
	"clove":       {},
	"cloves":      {},
	"slice":       {},
	"slices":      {},
	"piece":       {},
	"pieces":      {},
	"can":         {},
	"cans":        {},
	"bunch":       {},
	"handful":     {},
}

// Irregular plurals that the -s and -es rules would mangle.
var irregularPlurals = map[string]string{
	"tomatoes": "tomato",
	"potatoes": "potato",
	"leaves":   "leaf",
	"loaves":   "loaf",
	"berries":  "berry",
	"cherries": "cherry",
	"anchovies": "anchovy",
}

// Words that look plural but are not.
var notPlural = map[string]struct{}{
	"hummus":    {},
	"couscous":  {},
	"asparagus": {},
	"molasses":  {},
	"swiss":     {},
	"citrus":    {},
}

// Ingredient normalizes free-form ingredient text: lowercases, strips
// quantities, units and descriptor words, and singularizes plurals.
// Returns an empty string when nothing usable remains.
func Ingredient(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return ""
	}

	// Drop parenthetical notes like "(about 200g)".
	if open := strings.IndexByte(lowered, '('); open >= 0 {
		if close := strings.IndexByte(lowered[open:], ')'); close >= 0 {
			lowered = lowered[:open] + lowered[open+close+1:]
		}
	}

	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})

	kept := make([]string, 0, len(fields))
	for _, word := range fields {
		if _, ok := units[word]; ok {
			continue
		}
		if _, ok := descriptors[word]; ok {
			continue
		}
		kept = append(kept, singularize(word))
	}

	return strings.Join(kept, " ")
}

// Ingredients normalizes a list, dropping entries that normalize to nothing.
func Ingredients(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if cleaned := Ingredient(item); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func singularize(word string) string {
	if len(word) < 4 {
		return word
	}
	if _, ok := notPlural[word]; ok {
		return word
	}
	if singular, ok := irregularPlurals[word]; ok {
		return singular
	}
	switch {
	case strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ches"), strings.HasSuffix(word, "shes"), strings.HasSuffix(word, "sses"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss"):
		return word
	case strings.HasSuffix(word, "s"):
		return word[:len(word)-1]
	}
	return word
}
