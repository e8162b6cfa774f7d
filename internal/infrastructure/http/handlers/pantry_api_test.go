package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefbyte/v1/internal/ports/inbound"
	"github.com/chefbyte/v1/pkg/errors"
	"github.com/chefbyte/v1/pkg/logger"
)

type fakePantryService struct {
	items []inbound.PantryItem
	err   error

	lastSession string
	lastNames   []string
	lastCommand inbound.AddPantryItemCommand
	lastRemoved string
}

func (f *fakePantryService) ListItems(ctx context.Context, sessionID string) ([]inbound.PantryItem, error) {
	f.lastSession = sessionID
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakePantryService) ReplaceItems(ctx context.Context, sessionID string, names []string) ([]inbound.PantryItem, error) {
	f.lastSession = sessionID
	f.lastNames = names
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakePantryService) AddItem(ctx context.Context, sessionID string, cmd inbound.AddPantryItemCommand) (*inbound.PantryItem, error) {
	f.lastSession = sessionID
	f.lastCommand = cmd
	if f.err != nil {
		return nil, f.err
	}
	item := inbound.PantryItem{Name: cmd.Name, Quantity: cmd.Quantity}
	return &item, nil
}

func (f *fakePantryService) RemoveItem(ctx context.Context, sessionID, name string) error {
	f.lastSession = sessionID
	f.lastRemoved = name
	return f.err
}

func pantryRouter(service inbound.PantryService) http.Handler {
	h := NewPantryAPIHandlers(service, logger.NewNop())

	r := chi.NewRouter()
	r.Route("/pantry/{session}", func(r chi.Router) {
		r.Get("/", h.ListItems)
		r.Put("/", h.ReplaceItems)
		r.Post("/items", h.AddItem)
		r.Delete("/items/{name}", h.RemoveItem)
	})
	return r
}

func TestListItems_ReturnsSessionItems(t *testing.T) {
	service := &fakePantryService{
		items: []inbound.PantryItem{
			{Name: "rice", Quantity: "2 cups"},
			{Name: "tomato"},
		},
	}
	router := pantryRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/pantry/abc123/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123", service.lastSession)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestReplaceItems_PassesIngredients(t *testing.T) {
	service := &fakePantryService{}
	router := pantryRouter(service)

	body, _ := json.Marshal(ReplacePantryRequest{Ingredients: []string{"rice", "chicken"}})
	req := httptest.NewRequest(http.MethodPut, "/pantry/abc123/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"rice", "chicken"}, service.lastNames)
}

func TestAddItem_Returns201(t *testing.T) {
	service := &fakePantryService{}
	router := pantryRouter(service)

	body, _ := json.Marshal(AddPantryItemRequest{Name: "olive oil", Quantity: "1 bottle"})
	req := httptest.NewRequest(http.MethodPost, "/pantry/abc123/items", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "olive oil", service.lastCommand.Name)
	assert.Equal(t, "1 bottle", service.lastCommand.Quantity)
}

func TestAddItem_RejectsMissingName(t *testing.T) {
	router := pantryRouter(&fakePantryService{})

	body, _ := json.Marshal(AddPantryItemRequest{Quantity: "1 bag"})
	req := httptest.NewRequest(http.MethodPost, "/pantry/abc123/items", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveItem_NotFound(t *testing.T) {
	service := &fakePantryService{
		err: errors.NewPantryItemNotFoundError("truffle"),
	}
	router := pantryRouter(service)

	req := httptest.NewRequest(http.MethodDelete, "/pantry/abc123/items/truffle", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "truffle", service.lastRemoved)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestRemoveItem_Succeeds(t *testing.T) {
	service := &fakePantryService{}
	router := pantryRouter(service)

	req := httptest.NewRequest(http.MethodDelete, "/pantry/abc123/items/rice", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
