package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/chefbyte/v1/internal/ports/inbound"
	"github.com/chefbyte/v1/pkg/errors"
)

// PantryAPIHandlers handles REST API requests for pantry management
type PantryAPIHandlers struct {
	pantryService inbound.PantryService
	validate      *validator.Validate
	logger        *zap.Logger
}

// NewPantryAPIHandlers creates a new pantry handlers instance
func NewPantryAPIHandlers(pantryService inbound.PantryService, logger *zap.Logger) *PantryAPIHandlers {
	return &PantryAPIHandlers{
		pantryService: pantryService,
		validate:      validator.New(),
		logger:        logger,
	}
}

// ReplacePantryRequest is the body for PUT /api/v1/pantry/{session}
type ReplacePantryRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,dive,max=200"`
}

// AddPantryItemRequest is the body for POST /api/v1/pantry/{session}/items
type AddPantryItemRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Quantity string `json:"quantity" validate:"max=50"`
}

// ListItems handles GET /api/v1/pantry/{session}
func (h *PantryAPIHandlers) ListItems(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session")

	items, err := h.pantryService.ListItems(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: items})
}

// ReplaceItems handles PUT /api/v1/pantry/{session}
func (h *PantryAPIHandlers) ReplaceItems(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session")

	var req ReplacePantryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, errors.NewBadRequestError("invalid JSON body"))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.writeError(w, errors.NewValidationError(err.Error()))
		return
	}

	items, err := h.pantryService.ReplaceItems(r.Context(), sessionID, req.Ingredients)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: items, Message: "Pantry replaced"})
}

// AddItem handles POST /api/v1/pantry/{session}/items
func (h *PantryAPIHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session")

	var req AddPantryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, errors.NewBadRequestError("invalid JSON body"))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.writeError(w, errors.NewValidationError(err.Error()))
		return
	}

	item, err := h.pantryService.AddItem(r.Context(), sessionID, inbound.AddPantryItemCommand{
		Name:     req.Name,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, APIResponse{Success: true, Data: item, Message: "Pantry item added"})
}

// RemoveItem handles DELETE /api/v1/pantry/{session}/items/{name}
func (h *PantryAPIHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session")
	name := chi.URLParam(r, "name")

	if err := h.pantryService.RemoveItem(r.Context(), sessionID, name); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Pantry item removed"})
}

func (h *PantryAPIHandlers) writeError(w http.ResponseWriter, err error) {
	appErr := errors.Wrap(err, "request failed")
	h.logger.Warn("Pantry request failed",
		zap.String("code", string(appErr.Code)),
		zap.Error(appErr),
	)

	h.writeJSON(w, appErr.StatusCode(), APIResponse{
		Success: false,
		Error:   appErr.Message,
	})
}

func (h *PantryAPIHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}
