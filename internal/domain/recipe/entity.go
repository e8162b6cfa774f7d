// Package recipe contains the core domain logic for the recipe catalog.
// This follows Domain-Driven Design principles with rich domain models.
package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recipe represents a catalog recipe in our domain.
// Ingredient names are stored normalized (lowercase, trimmed) so that
// matching never has to re-clean them. Dietary tags are a free-form set
// drawn from the source data, normalized the same way.
type Recipe struct {
	id          uuid.UUID
	name        string
	ingredients []string
	dietTags    []string
	cuisine     CuisineType
	meals       []string
	prepTime    int
	difficulty  string
	macros      *Macros
	createdAt   time.Time
}

// NewRecipe creates a new Recipe with validation. An empty ingredient
// list is allowed, such a recipe always scores zero but stays visible
// in the catalog.
func NewRecipe(name string, ingredients []string) (*Recipe, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	cleaned := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		ing = strings.ToLower(strings.TrimSpace(ing))
		if ing != "" {
			cleaned = append(cleaned, ing)
		}
	}

	return &Recipe{
		id:          uuid.New(),
		name:        name,
		ingredients: cleaned,
		cuisine:     CuisineTypeAny,
		createdAt:   time.Now(),
	}, nil
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Name returns the recipe's name
func (r *Recipe) Name() string {
	return r.name
}

// Ingredients returns the normalized ingredient names
func (r *Recipe) Ingredients() []string {
	out := make([]string, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}

// DietTags returns the normalized dietary tags, empty when unlabelled
func (r *Recipe) DietTags() []string {
	out := make([]string, len(r.dietTags))
	copy(out, r.dietTags)
	return out
}

// Cuisine returns the recipe's cuisine classification
func (r *Recipe) Cuisine() CuisineType {
	return r.cuisine
}

// Meals returns the meal slots this recipe suits, e.g. "breakfast"
func (r *Recipe) Meals() []string {
	out := make([]string, len(r.meals))
	copy(out, r.meals)
	return out
}

// PrepTime returns the preparation time in minutes, zero when unknown
func (r *Recipe) PrepTime() int {
	return r.prepTime
}

// Difficulty returns the difficulty label, empty when unknown
func (r *Recipe) Difficulty() string {
	return r.difficulty
}

// Macros returns the embedded per-serving macros, or nil when the
// recipe record carries none
func (r *Recipe) Macros() *Macros {
	return r.macros
}

// CreatedAt returns when the recipe entered the catalog
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// Classify sets the dietary tags and cuisine label from free-form
// source text. Tags are split on list separators and normalized to
// lowercase hyphenated form; an empty cuisine falls back to the
// unrestricted sentinel.
func (r *Recipe) Classify(dietTags, cuisine string) {
	r.dietTags = splitTags(dietTags)

	cuisine = strings.ToLower(strings.TrimSpace(cuisine))
	if cuisine == "" {
		cuisine = string(CuisineTypeAny)
	}
	r.cuisine = CuisineType(cuisine)
}

// SetMeals records which meal slots the recipe suits
func (r *Recipe) SetMeals(meals []string) {
	cleaned := make([]string, 0, len(meals))
	for _, m := range meals {
		m = strings.ToLower(strings.TrimSpace(m))
		if m != "" {
			cleaned = append(cleaned, m)
		}
	}
	r.meals = cleaned
}

// SetPrepTime records the preparation time in minutes. Negative values
// are treated as unknown.
func (r *Recipe) SetPrepTime(minutes int) {
	if minutes < 0 {
		minutes = 0
	}
	r.prepTime = minutes
}

// SetDifficulty records the difficulty label, e.g. "easy"
func (r *Recipe) SetDifficulty(difficulty string) {
	r.difficulty = strings.ToLower(strings.TrimSpace(difficulty))
}

// AttachMacros embeds per-serving macros on the recipe record
func (r *Recipe) AttachMacros(m Macros) error {
	if err := m.Validate(); err != nil {
		return err
	}
	r.macros = &m
	return nil
}

// HasEmbeddedMacros reports whether calories, protein, carbs and fat are
// all present on the record. Fiber alone is not required.
func (r *Recipe) HasEmbeddedMacros() bool {
	return r.macros != nil
}

// NormalizeTag folds case and separator style on a dietary label, so
// "Gluten Free" and "gluten_free" both become "gluten-free".
func NormalizeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	tag = strings.ReplaceAll(tag, " ", "-")
	return strings.ReplaceAll(tag, "_", "-")
}

func splitTags(raw string) []string {
	fields := strings.FieldsFunc(raw, func(c rune) bool {
		return c == ',' || c == ';' || c == '|'
	})

	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		if tag := NormalizeTag(f); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	if len(trimmed) > 200 {
		return ErrNameTooLong
	}
	return nil
}
