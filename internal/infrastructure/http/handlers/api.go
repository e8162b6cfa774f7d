// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/chefbyte/v1/internal/ports/inbound"
	"github.com/chefbyte/v1/pkg/errors"
)

// APIHandlers handles REST API requests for recipe search and meal plans
type APIHandlers struct {
	plannerService inbound.PlannerService
	pantryService  inbound.PantryService
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewAPIHandlers creates a new API handlers instance
func NewAPIHandlers(plannerService inbound.PlannerService, pantryService inbound.PantryService, logger *zap.Logger) *APIHandlers {
	return &APIHandlers{
		plannerService: plannerService,
		pantryService:  pantryService,
		validate:       validator.New(),
		logger:         logger,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// SearchRecipesRequest is the body for POST /api/v1/recipes/search.
// Dietary constraints may be given as a list, the singular diet field
// is a convenience for single-constraint callers.
type SearchRecipesRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,max=200"`
	Diets       []string `json:"dietary_constraints" validate:"omitempty,max=10,dive,max=50"`
	Diet        string   `json:"diet" validate:"max=50"`
	Cuisine     string   `json:"cuisine" validate:"max=50"`
	MaxMissing  *int     `json:"max_missing" validate:"omitempty,min=0,max=20"`
	Limit       int      `json:"limit" validate:"min=0,max=100"`
}

// PlanMealsRequest is the body for POST /api/v1/mealplans. Ingredients
// may be omitted when a session ID is given, the stored pantry contents
// are used instead.
type PlanMealsRequest struct {
	Ingredients   []string `json:"ingredients" validate:"omitempty,dive,max=200"`
	SessionID     string   `json:"session_id" validate:"max=64"`
	MealCount     int      `json:"meal_count" validate:"min=0,max=10"`
	CalorieTarget float64  `json:"calorie_target" validate:"min=0"`
	ProteinTarget float64  `json:"protein_target" validate:"min=0"`
	Diets         []string `json:"dietary_constraints" validate:"omitempty,max=10,dive,max=50"`
	Diet          string   `json:"diet" validate:"max=50"`
	Cuisine       string   `json:"cuisine" validate:"max=50"`
	MaxMissing    *int     `json:"max_missing" validate:"omitempty,min=0,max=20"`
}

// dietConstraints merges the list and singular diet fields
func dietConstraints(diets []string, diet string) []string {
	if diet == "" {
		return diets
	}
	return append(append([]string{}, diets...), diet)
}

// SearchRecipes handles POST /api/v1/recipes/search
func (h *APIHandlers) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	var req SearchRecipesRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = 10
	}

	result, err := h.plannerService.SearchRecipes(r.Context(), inbound.SearchRecipesQuery{
		Available:  req.Ingredients,
		Diets:      dietConstraints(req.Diets, req.Diet),
		Cuisine:    req.Cuisine,
		MaxMissing: req.MaxMissing,
		Limit:      limit,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// PlanMeals handles POST /api/v1/mealplans
func (h *APIHandlers) PlanMeals(w http.ResponseWriter, r *http.Request) {
	var req PlanMealsRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	available := req.Ingredients
	if len(available) == 0 {
		if req.SessionID == "" {
			h.writeError(w, errors.NewValidationError("ingredients or session_id is required"))
			return
		}

		items, err := h.pantryService.ListItems(r.Context(), req.SessionID)
		if err != nil {
			h.writeError(w, err)
			return
		}
		for _, item := range items {
			available = append(available, item.Name)
		}
	}

	plan, err := h.plannerService.PlanMeals(r.Context(), inbound.PlanMealsCommand{
		Available:     available,
		MealCount:     req.MealCount,
		CalorieTarget: req.CalorieTarget,
		ProteinTarget: req.ProteinTarget,
		Diets:         dietConstraints(req.Diets, req.Diet),
		Cuisine:       req.Cuisine,
		MaxMissing:    req.MaxMissing,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, plan)
}

// HealthCheck handles GET /api/v1/health
func (h *APIHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		},
		Message: "Service is healthy",
	}

	h.writeJSON(w, http.StatusOK, response)
}

// decodeAndValidate parses and validates a JSON request body. It writes
// the error response itself and reports whether the caller may proceed.
func (h *APIHandlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, errors.NewBadRequestError("invalid JSON body"))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeError(w, errors.NewValidationError(err.Error()))
		return false
	}
	return true
}

// writeError writes a structured error response
func (h *APIHandlers) writeError(w http.ResponseWriter, err error) {
	appErr := errors.Wrap(err, "request failed")
	h.logger.Warn("API request failed",
		zap.String("code", string(appErr.Code)),
		zap.Error(appErr),
	)

	h.writeJSON(w, appErr.StatusCode(), APIResponse{
		Success: false,
		Error:   appErr.Message,
	})
}

// writeJSON writes a JSON response
func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}
