// Package pantry provides the application layer for pantry management.
// Pantry contents are keyed by a caller-supplied session identifier.
package pantry

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chefbyte/v1/internal/ports/inbound"
	"github.com/chefbyte/v1/internal/ports/outbound"
	"github.com/chefbyte/v1/pkg/errors"
	"github.com/chefbyte/v1/pkg/normalize"
)

// Service implements the pantry use cases
type Service struct {
	repo   outbound.PantryRepository
	logger *zap.Logger
}

// NewService creates a new pantry service
func NewService(repo outbound.PantryRepository, logger *zap.Logger) inbound.PantryService {
	return &Service{
		repo:   repo,
		logger: logger.Named("pantry-service"),
	}
}

// ListItems returns the pantry contents for a session
func (s *Service) ListItems(ctx context.Context, sessionID string) ([]inbound.PantryItem, error) {
	records, err := s.repo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, errors.NewDatabaseError("list pantry items", err)
	}
	return toItems(records), nil
}

// ReplaceItems swaps the whole pantry for a session with the given names
func (s *Service) ReplaceItems(ctx context.Context, sessionID string, names []string) ([]inbound.PantryItem, error) {
	now := time.Now()
	records := make([]outbound.PantryRecord, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		cleaned := normalize.Ingredient(name)
		if cleaned == "" {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		records = append(records, outbound.PantryRecord{
			SessionID: sessionID,
			Name:      cleaned,
			AddedAt:   now,
		})
	}

	if err := s.repo.ReplaceSession(ctx, sessionID, records); err != nil {
		return nil, errors.NewDatabaseError("replace pantry items", err)
	}

	s.logger.Info("Pantry replaced",
		zap.String("session_id", sessionID),
		zap.Int("items", len(records)),
	)
	return toItems(records), nil
}

// AddItem adds one item to a session's pantry
func (s *Service) AddItem(ctx context.Context, sessionID string, cmd inbound.AddPantryItemCommand) (*inbound.PantryItem, error) {
	cleaned := normalize.Ingredient(cmd.Name)
	if cleaned == "" {
		return nil, errors.NewValidationError("pantry item name is required")
	}

	record := outbound.PantryRecord{
		SessionID: sessionID,
		Name:      cleaned,
		Quantity:  strings.TrimSpace(cmd.Quantity),
		AddedAt:   time.Now(),
	}
	if err := s.repo.Add(ctx, record); err != nil {
		return nil, errors.NewDatabaseError("add pantry item", err)
	}

	item := toItem(record)
	return &item, nil
}

// RemoveItem deletes one item from a session's pantry
func (s *Service) RemoveItem(ctx context.Context, sessionID, name string) error {
	cleaned := normalize.Ingredient(name)
	if cleaned == "" {
		return errors.NewValidationError("pantry item name is required")
	}

	if err := s.repo.Remove(ctx, sessionID, cleaned); err != nil {
		if errors.Is(err, errors.CodePantryItemNotFound) {
			return err
		}
		return errors.NewDatabaseError("remove pantry item", err)
	}
	return nil
}

func toItems(records []outbound.PantryRecord) []inbound.PantryItem {
	items := make([]inbound.PantryItem, 0, len(records))
	for _, record := range records {
		items = append(items, toItem(record))
	}
	return items
}

func toItem(record outbound.PantryRecord) inbound.PantryItem {
	return inbound.PantryItem{
		Name:     record.Name,
		Quantity: record.Quantity,
		AddedAt:  record.AddedAt.Format(time.RFC3339),
	}
}
