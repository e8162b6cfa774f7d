// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/chefbyte/v1/internal/domain/nutrition"
	"github.com/chefbyte/v1/internal/domain/recipe"
)

// RecipeCatalog defines read access to the recipe reference dataset.
// Adapters degrade to an empty catalog when the dataset is missing.
type RecipeCatalog interface {
	All(ctx context.Context) ([]*recipe.Recipe, error)
	Len() int
}

// NutritionCatalog defines read access to the per-100g nutrient dataset
type NutritionCatalog interface {
	Table(ctx context.Context) (*nutrition.Table, error)
}

// PantryRepository defines the interface for pantry persistence
type PantryRepository interface {
	FindBySession(ctx context.Context, sessionID string) ([]PantryRecord, error)
	ReplaceSession(ctx context.Context, sessionID string, records []PantryRecord) error
	Add(ctx context.Context, record PantryRecord) error
	Remove(ctx context.Context, sessionID, name string) error
}

// PantryRecord is a stored pantry item
type PantryRecord struct {
	SessionID string
	Name      string
	Quantity  string
	AddedAt   time.Time
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
