package inbound

import "context"

// PantryService manages per-session pantry contents so callers can plan
// against what they already have at home
type PantryService interface {
	ListItems(ctx context.Context, sessionID string) ([]PantryItem, error)
	ReplaceItems(ctx context.Context, sessionID string, names []string) ([]PantryItem, error)
	AddItem(ctx context.Context, sessionID string, cmd AddPantryItemCommand) (*PantryItem, error)
	RemoveItem(ctx context.Context, sessionID, name string) error
}

// AddPantryItemCommand contains data for adding a pantry item
type AddPantryItemCommand struct {
	Name     string
	Quantity string
}

// PantryItem is the data transfer object for a pantry item
type PantryItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	AddedAt  string `json:"added_at"`
}
