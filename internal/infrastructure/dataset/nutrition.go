package dataset

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/chefbyte/v1/internal/domain/nutrition"
	"github.com/chefbyte/v1/internal/ports/outbound"
)

var nutritionNameAliases = []string{"name", "ingredient", "ingredient_name", "food"}

// NutritionCatalog loads per-100g nutrient rows from a CSV file once
// and serves them as an in-memory table. It implements
// outbound.NutritionCatalog.
type NutritionCatalog struct {
	path   string
	logger *zap.Logger

	once  sync.Once
	table *nutrition.Table
}

// NewNutritionCatalog creates a catalog backed by the CSV at path
func NewNutritionCatalog(path string, logger *zap.Logger) outbound.NutritionCatalog {
	return &NutritionCatalog{
		path:   path,
		logger: logger.Named("nutrition-catalog"),
	}
}

// Table returns the lookup table, loading lazily on first use
func (c *NutritionCatalog) Table(ctx context.Context) (*nutrition.Table, error) {
	c.once.Do(c.load)
	return c.table, nil
}

func (c *NutritionCatalog) load() {
	head, rows, err := readCSV(c.path)
	if err != nil {
		c.logger.Warn("Nutrition dataset unavailable, lookups will miss",
			zap.String("path", c.path),
			zap.Error(err),
		)
		c.table = nutrition.NewTable(nil)
		return
	}

	entries := make(map[string]nutrition.Facts, len(rows))
	for _, row := range rows {
		name, ok := head.field(row, nutritionNameAliases...)
		if !ok {
			continue
		}

		// Malformed numeric cells default to zero
		calories, _ := head.floatField(row, caloriesAliases...)
		protein, _ := head.floatField(row, proteinAliases...)
		carbs, _ := head.floatField(row, carbsAliases...)
		fat, _ := head.floatField(row, fatAliases...)
		fiber, _ := head.floatField(row, fiberAliases...)

		entries[name] = nutrition.Facts{
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
			Fiber:    fiber,
		}
	}

	c.table = nutrition.NewTable(entries)
	c.logger.Info("Nutrition dataset loaded",
		zap.String("path", c.path),
		zap.Int("entries", c.table.Len()),
	)
}
