package gorm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chefbyte/v1/internal/ports/outbound"
	apperrors "github.com/chefbyte/v1/pkg/errors"
)

// PantryRepository implements outbound.PantryRepository using GORM
type PantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository creates a new pantry repository
func NewPantryRepository(db *gorm.DB) outbound.PantryRepository {
	return &PantryRepository{db: db}
}

// FindBySession returns all pantry items for a session, oldest first
func (r *PantryRepository) FindBySession(ctx context.Context, sessionID string) ([]outbound.PantryRecord, error) {
	var models []PantryItemModel
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("added_at ASC, name ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query pantry items: %w", err)
	}

	records := make([]outbound.PantryRecord, 0, len(models))
	for _, m := range models {
		records = append(records, toRecord(m))
	}
	return records, nil
}

// ReplaceSession swaps a session's pantry contents inside one transaction
func (r *PantryRepository) ReplaceSession(ctx context.Context, sessionID string, records []outbound.PantryRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&PantryItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear pantry: %w", err)
		}
		for _, record := range records {
			model := toModel(record)
			model.SessionID = sessionID
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to store pantry item: %w", err)
			}
		}
		return nil
	})
}

// Add upserts one pantry item, refreshing quantity and timestamp on
// duplicate names
func (r *PantryRepository) Add(ctx context.Context, record outbound.PantryRecord) error {
	model := toModel(record)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "added_at", "updated_at"}),
		}).
		Create(&model).Error
	if err != nil {
		return fmt.Errorf("failed to store pantry item: %w", err)
	}
	return nil
}

// Remove deletes one pantry item by name
func (r *PantryRepository) Remove(ctx context.Context, sessionID, name string) error {
	result := r.db.WithContext(ctx).
		Where("session_id = ? AND name = ?", sessionID, name).
		Delete(&PantryItemModel{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return apperrors.NewPantryItemNotFoundError(name)
		}
		return fmt.Errorf("failed to delete pantry item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewPantryItemNotFoundError(name)
	}
	return nil
}

func toRecord(m PantryItemModel) outbound.PantryRecord {
	return outbound.PantryRecord{
		SessionID: m.SessionID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		AddedAt:   m.AddedAt,
	}
}

func toModel(record outbound.PantryRecord) PantryItemModel {
	return PantryItemModel{
		SessionID: record.SessionID,
		Name:      record.Name,
		Quantity:  record.Quantity,
		AddedAt:   record.AddedAt,
	}
}
