package settings

import (
	"encoding/json"
	"net/http"

	"github.com/chandra2117/expense/internal/rest"
	log "github.com/sirupsen/logrus"
)

type BudgetDTO struct {
	Budget float64 `json:"budget"`
}

type CategoryLimitDTO struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
}

type UnwantedDTO struct {
	Category string `json:"category"`
	Unwanted bool   `json:"unwanted"`
}

type BlockModeDTO struct {
	Enabled bool `json:"enabled"`
}

type Handler struct {
	service Service
}

func NewSettingsHandler(service Service) *Handler {
	return &Handler{service}
}

// GetAll godoc
// @Summary Read all settings
// @Description Get the raw key/value settings mapping (budget, limits, unwanted flags, block mode)
// @Tags Settings
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/settings [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	raw, err := handler.service.Raw(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(raw); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// SetBudget godoc
// @Summary Set the monthly budget
// @Tags Settings
// @Accept json
// @Param budget body BudgetDTO true "Monthly budget"
// @Success 204 "No Content"
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/settings/budget [put]
func (handler *Handler) SetBudget(w http.ResponseWriter, r *http.Request) {
	log.Debug("Setting monthly budget")
	var dto BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeInvalidInput(w, "budget must be a number")
		return
	}
	if err := handler.service.SetMonthlyBudget(r.Context(), dto.Budget); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetCategoryLimit godoc
// @Summary Set a per-category spending limit
// @Tags Settings
// @Accept json
// @Param limit body CategoryLimitDTO true "Category limit"
// @Success 204 "No Content"
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/settings/limit [put]
func (handler *Handler) SetCategoryLimit(w http.ResponseWriter, r *http.Request) {
	log.Debug("Setting category limit")
	var dto CategoryLimitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeInvalidInput(w, "limit must be a number")
		return
	}
	if dto.Category == "" {
		writeInvalidInput(w, "category is required")
		return
	}
	if err := handler.service.SetCategoryLimit(r.Context(), dto.Category, dto.Limit); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkUnwanted godoc
// @Summary Flag or unflag a category as unwanted
// @Tags Settings
// @Accept json
// @Param unwanted body UnwantedDTO true "Unwanted flag"
// @Success 204 "No Content"
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/settings/unwanted [put]
func (handler *Handler) MarkUnwanted(w http.ResponseWriter, r *http.Request) {
	log.Debug("Marking category unwanted")
	var dto UnwantedDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeInvalidInput(w, err.Error())
		return
	}
	if dto.Category == "" {
		writeInvalidInput(w, "category is required")
		return
	}
	if err := handler.service.MarkUnwanted(r.Context(), dto.Category, dto.Unwanted); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetBlockMode godoc
// @Summary Toggle block mode
// @Description When enabled, unwanted categories hard-reject submissions instead of merely warning
// @Tags Settings
// @Accept json
// @Param blockmode body BlockModeDTO true "Block mode switch"
// @Success 204 "No Content"
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/settings/blockmode [put]
func (handler *Handler) SetBlockMode(w http.ResponseWriter, r *http.Request) {
	log.Debug("Toggling block mode")
	var dto BlockModeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeInvalidInput(w, err.Error())
		return
	}
	if err := handler.service.SetBlockMode(r.Context(), dto.Enabled); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeInvalidInput(w http.ResponseWriter, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   "invalid_input",
		Details: details,
	})
}
